package decl

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads declarations from path: a directory or .cue file is loaded as
// CUE, a .yaml or .yml file as YAML.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("declarations not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing declarations: %w", err)
	}

	if info.IsDir() {
		return LoadCUE(path)
	}
	switch filepath.Ext(path) {
	case ".cue":
		return LoadCUE(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported declaration file %s: want .cue, .yaml or .yml", path)
	}
}
