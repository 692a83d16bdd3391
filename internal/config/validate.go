package config

import (
	"fmt"
	"os"
	"path/filepath"
)

var validModels = map[string]bool{
	"":       true,
	"opus":   true,
	"sonnet": true,
	"haiku":  true,
}

// Validate checks the config for errors, sets defaults, and resolves
// relative paths against projectRoot.
func Validate(cfg *Config, projectRoot string) error {
	if cfg.Name == "" {
		return fmt.Errorf("config: 'name' is required")
	}
	if cfg.ContentDir == "" {
		return fmt.Errorf("config: 'content-dir' is required")
	}
	if cfg.RegistryFile == "" {
		return fmt.Errorf("config: 'registry-file' is required")
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "public/presentations"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static/presentations"
	}
	if cfg.Model == "" {
		cfg.Model = "sonnet"
	}
	if !validModels[cfg.Model] {
		return fmt.Errorf("config: unknown model %q (must be opus, sonnet, or haiku)", cfg.Model)
	}
	if cfg.TimeoutMinutes == nil {
		minutes := 15
		cfg.TimeoutMinutes = &minutes
	}
	if *cfg.TimeoutMinutes < 0 {
		return fmt.Errorf("config: timeout-minutes must be >= 0 (0 disables the timeout)")
	}
	if cfg.MinContentChars < 0 {
		return fmt.Errorf("config: min-content-chars must be >= 0")
	}
	if cfg.MinContentChars == 0 {
		cfg.MinContentChars = 100
	}

	cfg.ContentDir = resolve(projectRoot, cfg.ContentDir)
	cfg.OutputDir = resolve(projectRoot, cfg.OutputDir)
	cfg.StaticDir = resolve(projectRoot, cfg.StaticDir)
	cfg.RegistryFile = resolve(projectRoot, cfg.RegistryFile)

	if info, err := os.Stat(cfg.ContentDir); err != nil || !info.IsDir() {
		return fmt.Errorf("config: content-dir %q is not a directory", cfg.ContentDir)
	}
	if _, err := os.Stat(cfg.RegistryFile); err != nil {
		return fmt.Errorf("config: registry-file %q not found", cfg.RegistryFile)
	}

	return nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
