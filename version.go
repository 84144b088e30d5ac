package nfa

// Version is the release of the module, reported by the CLI and servers.
var Version = "0.1.0"
