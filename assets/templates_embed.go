// Where: assets/templates_embed.go
// What: Embed config templates and the project config schema.
// Why: Keep materialization assets owned by the CLI binary.
package assets

import "embed"

//go:embed templates/*.tmpl
var Templates embed.FS

//go:embed handsctl.schema.json
var ProjectConfigSchema []byte
