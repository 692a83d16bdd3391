package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/deckgen/internal/ux"
)

var configTemplate = `name: my-course

# Lesson markdown root. Every .md/.mdx file under it is a lesson, except
# module.yaml.
content-dir: content/lessons

# Viewer source file declaring the SLIDE_COMPONENTS map.
registry-file: src/components/SlideViewer.tsx

# Publish locations (defaults shown).
output-dir: public/presentations
static-dir: static/presentations

# Generator settings. timeout-minutes: 0 disables the timeout.
model: sonnet
timeout-minutes: 15
min-content-chars: 100
`

// Init creates a new .deckgen/ directory with an example config.
func Init(targetDir string) error {
	dir := filepath.Join(targetDir, ".deckgen")
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf(".deckgen directory already exists in %s", targetDir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating .deckgen: %w", err)
	}

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}

	fmt.Printf("\n%s%s✓ Initialized .deckgen/ directory%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Point %scontent-dir%s at your lesson markdown\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Point %sregistry-file%s at the viewer component map\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %sdeckgen generate --dry-run --all%s to preview\n\n", ux.Cyan, ux.Reset)

	return nil
}
