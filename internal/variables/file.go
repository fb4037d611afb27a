package variables

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// KeyDelimiter separates levels of variable names
const KeyDelimiter = ":"

const (
	valueField = "value"
	unitsField = "units"
)

// NewViper returns a viper instance that splits keys on KeyDelimiter
func NewViper() *viper.Viper {
	return viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
}

// Load reads a variable file (YAML, JSON or TOML, from the extension).
//
// A variable is either a bare number or a map holding a value and units:
//
//	data:
//	  geometry:
//	    wing:
//	      area: {value: 124.843, units: "m**2"}
//	      aspect_ratio: 9.48
func Load(path string) (*Set, error) {
	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading variables from %s: %w", path, err)
	}
	return FromViper(v)
}

// FromViper builds a variable set from all keys of a viper instance
func FromViper(v *viper.Viper) (*Set, error) {
	set := NewSet()
	for _, key := range v.AllKeys() {
		name, field := splitField(key)
		if field == unitsField {
			continue
		}
		if field != valueField {
			name = key
		}

		value, err := cast.ToFloat64E(v.Get(key))
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		set.Add(name, value, v.GetString(name+KeyDelimiter+unitsField))
	}
	return set, nil
}

// Write stores the set in a variable file, format from the extension
// (yaml, yml, json or toml). Every variable is written as a value/units map
// so that a name may also be the parent of other names. Names keep their
// case, which viper would fold.
func (s *Set) Write(path string) error {
	tree := make(map[string]any)
	for _, vr := range s.Variables() {
		node := tree
		for _, part := range strings.Split(vr.Name, KeyDelimiter) {
			node = child(node, part)
		}
		node[valueField] = vr.Value
		if vr.Units != "" {
			node[unitsField] = vr.Units
		}
	}

	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(tree)
	case ".json":
		data, err = json.MarshalIndent(tree, "", "  ")
	case ".toml":
		data, err = toml.Marshal(tree)
	default:
		err = fmt.Errorf("unsupported variable file format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("writing variables to %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing variables to %s: %w", path, err)
	}
	return nil
}

// child returns the sub-map of node for a name segment, matched without
// regard to case, creating it if needed.
func child(node map[string]any, part string) map[string]any {
	for key, v := range node {
		if m, ok := v.(map[string]any); ok && strings.EqualFold(key, part) {
			return m
		}
	}
	m := make(map[string]any)
	node[part] = m
	return m
}

func splitField(key string) (name, field string) {
	i := strings.LastIndex(key, KeyDelimiter)
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+1:]
}
