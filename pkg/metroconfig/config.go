package metroconfig

import "fmt"

// Field names metrolink reads or writes
const (
	KeyResolver     = "resolver"
	KeyBlacklistRE  = "blacklistRE"
	KeyWatchFolders = "watchFolders"
	KeySymbolicator = "symbolicator"
)

// Config is a Metro configuration document. The zero value (nil) is a
// valid, empty configuration.
type Config map[string]interface{}

// Section returns the named top-level object, or nil when it is absent or
// not an object.
func (c Config) Section(name string) map[string]interface{} {
	if c == nil {
		return nil
	}
	section, _ := asMap(c[name])
	return section
}

// BlacklistRE returns resolver.blacklistRE and whether it is set to
// something other than an empty value.
func (c Config) BlacklistRE() (interface{}, bool) {
	resolver := c.Section(KeyResolver)
	if resolver == nil {
		return nil, false
	}
	value, ok := resolver[KeyBlacklistRE]
	if !ok || value == nil {
		return nil, false
	}
	if s, isString := value.(string); isString && s == "" {
		return nil, false
	}
	return value, true
}

// WatchFolders returns the declared watch folders. Non-string entries are
// formatted with %v so nothing the caller declared is dropped.
func (c Config) WatchFolders() []string {
	if c == nil {
		return nil
	}
	switch folders := c[KeyWatchFolders].(type) {
	case []string:
		return append([]string(nil), folders...)
	case []interface{}:
		out := make([]string, 0, len(folders))
		for _, f := range folders {
			if s, ok := f.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(f))
			}
		}
		return out
	default:
		return nil
	}
}

// Clone returns a deep copy of c. Maps and slices are copied; other values
// are shared.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	return Config(cloneMap(c))
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Config:
		return map[string]interface{}(m), true
	default:
		return nil, false
	}
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return cloneMap(val)
	case Config:
		return cloneMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}
