package metroconfig

import (
	"dario.cat/mergo"

	"github.com/carimus/metrolink/pkg/errors"
)

// sections are the objects metro-config merges key by key instead of
// replacing. They are always present in a merged configuration.
var sections = []string{"resolver", "serializer", "server", KeySymbolicator, "transformer"}

// MergeConfig reproduces metro-config's mergeConfig: later configurations
// win key by key at the top level, and the well-known sections are merged
// into each other rather than replaced. Like metro-config, it materializes
// every section, including an empty symbolicator that Metro later rejects.
// Inputs are not modified.
func MergeConfig(base Config, configs ...Config) (Config, error) {
	result := base.Clone()
	if result == nil {
		result = Config{}
	}

	for _, next := range configs {
		next = next.Clone()

		merged := Config{}
		for k, v := range result {
			merged[k] = v
		}
		for k, v := range next {
			merged[k] = v
		}

		for _, name := range sections {
			section := map[string]interface{}{}
			if err := mergeSection(section, result.Section(name)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInternal, "cannot merge %s", name)
			}
			if err := mergeSection(section, next.Section(name)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInternal, "cannot merge %s", name)
			}
			merged[name] = section
		}
		result = merged
	}
	return result, nil
}

func mergeSection(dst, src map[string]interface{}) error {
	if len(src) == 0 {
		return nil
	}
	return mergo.Merge(&dst, src, mergo.WithOverride)
}

// Merge is MergeConfig followed by removal of the symbolicator section when
// it came out empty. A non-empty symbolicator is kept.
func Merge(base Config, configs ...Config) (Config, error) {
	merged, err := MergeConfig(base, configs...)
	if err != nil {
		return nil, err
	}

	if symbolicator, ok := merged[KeySymbolicator]; ok {
		if m, isMap := asMap(symbolicator); isMap && len(m) == 0 {
			delete(merged, KeySymbolicator)
		}
	}
	return merged, nil
}
