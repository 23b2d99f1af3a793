package charex

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/charex/internal/common"
)

// DefaultOptions returns Latin-1 classification with the default bisection
// threshold and no logging.
func DefaultOptions() Options {
	return Options{
		ClassRange:      Latin1,
		BisectThreshold: common.DefaultBisectThreshold,
	}
}

// LoadOptions reads Options from a YAML file. Keys absent from the file keep
// their defaults, and a missing file yields DefaultOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return Options{}, fmt.Errorf("failed to read options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes YAML options over DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse options: %w", err)
	}
	return opts, nil
}
