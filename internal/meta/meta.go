// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming and layout conventions in one place.
package meta

const (
	// Project identity
	AppName   = "handsctl"
	EnvPrefix = "OH"

	// Default compose project managed by this CLI
	DefaultProject = "openhands"

	// Directory layout
	HomeDir = ".handsctl"

	// Repo-local files
	ProjectConfigFile = "handsctl.yaml"
	FrontendEnvFile   = "frontend/.env"
)
