package assets

import (
	"embed"

	"golang.org/x/xerrors"
)

//go:embed defaults.yaml
var projectAssets embed.FS

// DefaultsFile is the name of the built-in settings document.
const DefaultsFile = "defaults.yaml"

// LoadDefaults returns the built-in YAML settings shipped with the binary.
func LoadDefaults() ([]byte, error) {
	data, err := projectAssets.ReadFile(DefaultsFile)
	if err != nil {
		return nil, xerrors.Errorf("read embedded %q: %w", DefaultsFile, err)
	}
	return data, nil
}
