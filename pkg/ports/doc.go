/*
Package ports defines the driven ports (interfaces) for cruxcat.

These interfaces decouple the sequence engine and maintenance flows
from external implementations, allowing the same logic to run against
the real host system or against in-memory fakes in tests.

# Key Interfaces

  - CommandRunner: Executes external processes (the only way cruxcat touches the system).
  - ReportStore: Persists and loads maintenance run history.
  - LinkProber: Inspects network interface state for diagnostics.
*/
package ports
