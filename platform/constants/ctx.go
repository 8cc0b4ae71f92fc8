// Description: This file contains constants used for accessing launch parameters from context objects.
package constants

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// LaunchParams is the key used to store runtime launch extents in the context
	LaunchParams ContextKey = "launch_params" // map[string]any of extents such as "blockDim.x"
)
