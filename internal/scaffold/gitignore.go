package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

const gitignore = `node_modules/
dist/
.env
.env.local
*.log
.DS_Store
coverage/
`

// WriteGitignore writes the standard ignore list for generated projects.
func WriteGitignore(dir string) error {
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
