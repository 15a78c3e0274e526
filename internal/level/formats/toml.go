package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a TOML level file.
func ParseTOML(data []byte) (File, error) {
	f := File{Difficulty: 1}
	if _, err := toml.Decode(string(data), &f); err != nil {
		return File{}, fmt.Errorf("toml decode: %w", err)
	}
	return f, nil
}
