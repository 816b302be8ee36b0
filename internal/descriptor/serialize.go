package descriptor

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Marshal renders a descriptor in its native TOML encoding. For any valid
// descriptor d, Parse(Marshal(d), FormatTOML) reproduces d.
func Marshal(d *Descriptor) ([]byte, error) {
	out, err := toml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling descriptor: %w", err)
	}
	return out, nil
}
