package pandata

var (
	// Version of the pandata library and CLI. Set by build flags.
	Version = "v0.1.0"
	// Build timestamp. Set by build flags.
	Build = "n/a"
)
