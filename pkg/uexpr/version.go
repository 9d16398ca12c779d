package uexpr

// Version information for the uexpr module.
const (
	// Version is the current version of the uexpr module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
