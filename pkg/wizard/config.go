package wizard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads options from a YAML (.yaml, .yml) or JSON with comments
// (.json, .jsonc) file. Unset fields keep their DefaultOptions value.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config: %w", err)
	}

	opts := DefaultOptions()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".json", ".jsonc":
		// Comments and trailing commas are stripped before parsing.
		if err := json.Unmarshal(jsonc.ToJSON(data), &opts); err != nil {
			return Options{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return Options{}, fmt.Errorf("unsupported config format %q: %s", ext, path)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
