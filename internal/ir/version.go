package ir

// Version constants for exported documents and the tool.
const (
	// DocVersion is the catalog document schema version.
	DocVersion = "1"

	// ToolVersion is the gatecat release.
	ToolVersion = "0.1.0"
)
