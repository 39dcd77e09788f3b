package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/carimus/metrolink/pkg/errors"
)

// DefaultFileName is the file written by WriteDefault
const DefaultFileName = "metrolink.toml"

const generatedHeader = `# metrolink configuration
#
# Values here override the built-in defaults and are in turn overridden by
# the "metrolink" key of package.json, .env and METROLINK_* variables.

`

// GetDefaultsContent returns the embedded defaults with their comments
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// Generate renders cfg as a TOML configuration file
func Generate(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode configuration")
	}
	return append([]byte(generatedHeader), data...), nil
}

// WriteDefault writes the default configuration to dir/metrolink.toml and
// returns its path. An existing file is only replaced when force is set.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", errors.Newf(errors.ErrInvalidInput, "%s already exists", path).
			WithDetail("path", path)
	} else if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrap(err, errors.ErrConfigLoad, "cannot inspect existing configuration").
			WithDetail("path", path)
	}

	cfg, err := Default()
	if err != nil {
		return "", err
	}
	data, err := Generate(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to write configuration").
			WithDetail("path", path)
	}
	return path, nil
}
