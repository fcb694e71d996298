package commands

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed templates
var templateFS embed.FS

const templateRoot = "templates"

// copyTemplates writes the embedded templates into targetDir. Existing files
// are left alone unless force is set. It returns the files written and the
// ones skipped, relative to targetDir.
func copyTemplates(targetDir string, force bool) (written, skipped []string, err error) {
	err = fs.WalkDir(templateFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Embedded paths always use forward slashes
		relPath, err := filepath.Rel(templateRoot, filepath.FromSlash(path))
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		targetPath := filepath.Join(targetDir, relPath)
		if d.IsDir() {
			return os.MkdirAll(targetPath, 0750)
		}

		if !force {
			if _, err := os.Stat(targetPath); err == nil {
				skipped = append(skipped, relPath)
				return nil
			}
		}

		content, err := templateFS.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(targetPath, content, 0600); err != nil {
			return err
		}
		written = append(written, relPath)
		return nil
	})
	return written, skipped, err
}
