package randseg

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/kiteco/randseg/kite-golib/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config holds the construction parameters of a Model.
type Config struct {
	VocabSize      int    `json:"vocab_size" yaml:"vocab_size"`
	Separator      string `json:"separator" yaml:"separator"`
	BoundaryMarker string `json:"boundary_marker" yaml:"boundary_marker"`

	// ExcludeOriginalSymbols is accepted and persisted but not consulted anywhere.
	ExcludeOriginalSymbols bool `json:"exclude_original_symbols" yaml:"exclude_original_symbols"`
}

// DefaultConfig returns a configuration with no merges, "+" as the separator and
// "▁" as the boundary marker.
func DefaultConfig() Config {
	return Config{
		Separator:      DefaultSeparator,
		BoundaryMarker: DefaultBoundaryMarker,
	}
}

// ReadConfig reads a YAML config; keys that are absent keep their DefaultConfig value.
func ReadConfig(r io.Reader) (Config, error) {
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "error parsing config")
	}
	return cfg, nil
}

// LoadConfig reads the YAML config at path, see ReadConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := ReadConfig(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}
