package cli

import (
	"os"
	"sort"

	"github.com/PSFC-ep-team/MERGS-electron-optics/internal/params"
)

// loadParameters parses the embedded design block, overlays the optional
// YAML file, and returns the merged map. The map is returned alongside any
// overlay error so commands can report which stage failed.
func loadParameters(overlayPath string) (map[string]float64, error) {
	parameters := params.Parse(params.DefaultParameters)
	if overlayPath == "" {
		return parameters, nil
	}

	f, err := os.Open(overlayPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := params.MergeYAML(parameters, f); err != nil {
		return nil, err
	}
	return parameters, nil
}

// sortedKeys returns the map's keys in lexical order for deterministic
// output.
func sortedKeys(parameters map[string]float64) []string {
	keys := make([]string, 0, len(parameters))
	for key := range parameters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
