package daytime

// Version information for the daytime module.
const (
	// Version is the current version of the daytime module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
