package metroconfig

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/carimus/metrolink/pkg/errors"
)

// Format is an output document format
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCommonJS Format = "js"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "js", "cjs", "commonjs":
		return FormatCommonJS, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s)
	}
}

var commonJSTemplate = template.Must(template.New("commonjs").Parse(`// Generated by metrolink. Regenerate instead of editing.
const config = {{.}};

if (config.resolver && typeof config.resolver.blacklistRE === 'string') {
  config.resolver.blacklistRE = new RegExp(config.resolver.blacklistRE);
}

module.exports = config;
`))

// Render writes cfg to w in the given format. In CommonJS output the
// blacklistRE source string is turned back into a RegExp at load time.
func Render(w io.Writer, cfg Config, format Format) error {
	if cfg == nil {
		cfg = Config{}
	}

	var out []byte
	switch format {
	case FormatJSON, FormatCommonJS:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]interface{}(cfg)); err != nil {
			return errors.Wrap(err, errors.ErrRender, "cannot encode configuration as JSON")
		}
		out = buf.Bytes()
		if format == FormatCommonJS {
			var module bytes.Buffer
			if err := commonJSTemplate.Execute(&module, string(bytes.TrimRight(out, "\n"))); err != nil {
				return errors.Wrap(err, errors.ErrRender, "cannot render CommonJS module")
			}
			out = module.Bytes()
		}
	case FormatYAML:
		data, err := yaml.Marshal(map[string]interface{}(cfg))
		if err != nil {
			return errors.Wrap(err, errors.ErrRender, "cannot encode configuration as YAML")
		}
		out = data
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
	}

	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot write configuration")
	}
	return nil
}
