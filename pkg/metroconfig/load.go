package metroconfig

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"

	"github.com/carimus/metrolink/pkg/errors"
	"github.com/carimus/metrolink/pkg/types"
)

// keyDelim never occurs in Metro keys, so dotted or slashed keys such as
// extraNodeModules entries survive koanf's flattening untouched.
const keyDelim = "\x00"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// parserFor picks the koanf parser for a document format or file extension
func parserFor(format string) (koanf.Parser, error) {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "json":
		return json.Parser(), nil
	case "yaml", "yml":
		return yaml.Parser(), nil
	case "toml":
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported configuration format %q", format)
	}
}

// Parse decodes a configuration document in the given format (json, yaml
// or toml). Empty input is an empty configuration.
func Parse(data []byte, format string) (Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, nil
	}

	k := koanf.New(keyDelim)
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse Metro configuration").
			WithDetail("format", format)
	}
	return Config(k.Raw()), nil
}

// Load reads and parses the configuration at path, choosing the format from
// the file extension. A missing file is an error.
func Load(fsys types.FS, path string) (Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		code := errors.ErrConfigLoad
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrInvalidInput
		}
		return nil, errors.Wrap(err, code, "cannot read Metro configuration").WithDetail("path", path)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		if linkErr, ok := err.(*errors.LinkError); ok {
			linkErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}
