package config

import (
	"os"
	"path/filepath"
)

// Config is the process-wide configuration. It is constructed once at
// startup (defaults merged with editor-provided options or CLI flags) and
// read-only afterwards; the core never mutates it.
type Config struct {
	// OrganizeOnSave runs the organize pass whenever a document is saved.
	OrganizeOnSave bool
	// OrganizeOnNew runs the organize pass right after a new footnote is
	// created.
	OrganizeOnNew bool
	// DebugPrint enables verbose logging of engine decisions.
	DebugPrint bool
	// IndexPath is the location of the sqlite footnote index.
	IndexPath string
}

// Default returns the configuration used when the host provides nothing.
func Default() *Config {
	return &Config{
		OrganizeOnNew: true,
		IndexPath:     filepath.Join(os.TempDir(), "footman", "index.db"),
	}
}

// FromMap merges editor-provided options (e.g. LSP initializationOptions)
// into a copy of the defaults. Unknown keys are ignored.
func FromMap(opts map[string]any) *Config {
	cfg := Default()
	if opts == nil {
		return cfg
	}

	if v, ok := opts["organize_on_save"].(bool); ok {
		cfg.OrganizeOnSave = v
	}
	if v, ok := opts["organize_on_new"].(bool); ok {
		cfg.OrganizeOnNew = v
	}
	if v, ok := opts["debug_print"].(bool); ok {
		cfg.DebugPrint = v
	}
	if v, ok := opts["index_path"].(string); ok && v != "" {
		cfg.IndexPath = v
	}

	return cfg
}
