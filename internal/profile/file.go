package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedProfileFile = errors.New("unsupported profile file format")

// LoadInput reads form data from a YAML or JSON file.
func LoadInput(path string) (Input, error) {
	var in Input

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("reading profile file: %w", err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return in, fmt.Errorf("%w: %s", ErrUnsupportedProfileFile, path)
	}
	if err != nil {
		return in, fmt.Errorf("parsing profile file %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &in,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return in, err
	}

	if err := decoder.Decode(raw); err != nil {
		return in, fmt.Errorf("decoding profile file %s: %w", path, err)
	}

	return in, nil
}
