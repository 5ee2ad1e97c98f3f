package utils

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ReadYAMLFile reads a YAML file and returns a pointer to the unmarshaled value.
func ReadYAMLFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteYAML marshals a value to YAML and writes it to a file.
func WriteYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
