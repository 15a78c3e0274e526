package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (File, error) {
	f := File{Difficulty: 1}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f, nil
}
