// Where: internal/compose/project_files.go
// What: Compose file resolution for the deployment.
// Why: Keep file layout rules in one place, validated before any command.
package compose

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveComposeFiles returns the ordered list of compose files to pass via
// -f. The base file is required; the frontend overlay is appended only when
// the frontend is enabled and must exist in that case.
func ResolveComposeFiles(rootDir string, frontend bool) ([]string, error) {
	base := filepath.Join(rootDir, "docker-compose.yml")
	if _, err := os.Stat(base); err != nil {
		return nil, fmt.Errorf("compose file not found: %s", base)
	}
	files := []string{base}

	if frontend {
		overlay := filepath.Join(rootDir, "docker-compose.frontend.yml")
		if _, err := os.Stat(overlay); err != nil {
			return nil, fmt.Errorf("frontend overlay not found: %s", overlay)
		}
		files = append(files, overlay)
	}

	return files, nil
}
