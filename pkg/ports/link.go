package ports

// LinkState is a snapshot of a network interface's administrative and
// operational state.
type LinkState struct {
	Name    string
	Exists  bool
	Up      bool // administratively up (IFF_UP)
	Running bool // carrier / operationally running
}

// LinkProber inspects network interface state. Read-only: probing
// never changes link configuration.
type LinkProber interface {
	Probe(name string) (LinkState, error)
}
