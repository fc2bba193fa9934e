/*
Package domain contains the core domain models for cruxcat.

It defines the fundamental entities of the bring-up and maintenance
flows: sequence Steps, external Commands, and the port update records
persisted between runs. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Step: One external command invocation plus its immediate status check.
  - Command: A single external process invocation (name, args, workdir).
  - Port: An installed CRUX port with a newer version in the ports tree.
  - RunRecord: The persisted outcome of one maintenance run.
*/
package domain
