package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/carimus/metrolink/pkg/errors"
	"github.com/carimus/metrolink/pkg/logging"
)

const (
	// EnvPrefix prefixes every environment variable metrolink reads
	EnvPrefix = "METROLINK_"
	// PackageKey is the package.json key holding metrolink settings
	PackageKey = "metrolink"
	// DotenvFile is read from the project root when present
	DotenvFile = ".env"
)

// ProjectFiles are the configuration file names looked up in the project
// root. The first one found is used.
var ProjectFiles = []string{"metrolink.toml", ".metrolink.toml", "metrolink.yaml", "metrolink.yml"}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Default returns the embedded defaults
func Default() (*Config, error) {
	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = []string{"defaults"}
	return cfg, nil
}

// Load reads the settings for the project at root, layering every source
// over the embedded defaults. Missing sources are skipped.
func Load(root string) (*Config, error) {
	logger := logging.GetLogger("config")

	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	sources := []string{"defaults"}
	envKeys := envKeyMap(k.Keys())

	// 1. Project configuration file
	for _, name := range ProjectFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		sources = append(sources, path)
		break
	}

	// 2. package.json "metrolink" key
	pkgPath := filepath.Join(root, "package.json")
	if _, err := os.Stat(pkgPath); err == nil {
		pk := koanf.New(".")
		if err := pk.Load(file.Provider(pkgPath), json.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", pkgPath).
				WithDetail("path", pkgPath)
		}
		if pk.Exists(PackageKey) {
			if err := k.Merge(pk.Cut(PackageKey)); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge package.json settings")
			}
			sources = append(sources, pkgPath+"#"+PackageKey)
		}
	}

	// 3. .env file
	dotenvPath := filepath.Join(root, DotenvFile)
	vars, err := godotenv.Read(dotenvPath)
	switch {
	case err == nil:
		values := map[string]interface{}{}
		for name, value := range vars {
			if key, ok := envKeys[name]; ok {
				values[key] = value
			}
		}
		if len(values) > 0 {
			if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load .env settings")
			}
			sources = append(sources, dotenvPath)
		}
	case !stderrors.Is(err, fs.ErrNotExist):
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", dotenvPath).
			WithDetail("path", dotenvPath)
	}

	// 4. Process environment
	envK := koanf.New(".")
	if err := envK.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if len(envK.Keys()) > 0 {
		if err := k.Merge(envK); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge env vars")
		}
		sources = append(sources, "env")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if cfg.ProjectRoot != "" && !filepath.IsAbs(cfg.ProjectRoot) {
		cfg.ProjectRoot = filepath.Join(root, cfg.ProjectRoot)
	}
	cfg.Sources = sources

	logger.Debug().Strs("sources", sources).Msg("Configuration loaded")
	return cfg, nil
}

func loadDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	return k, nil
}

// envKeyMap maps METROLINK_SECTION_KEY names to the dotted keys they set.
// Only keys present in the defaults are reachable, which keeps keys that
// contain underscores unambiguous.
func envKeyMap(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		m[name] = key
	}
	return m
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
