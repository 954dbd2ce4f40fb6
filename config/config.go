// Package config contains the configuration of the compressing tools, read
// from a git-config style file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/go-git/go-billy/v5"
	"github.com/mitchellh/go-homedir"

	"github.com/go-git/go-compressing/utils/ioutil"
)

const (
	// DefaultFileName is the name of the config file in the home directory.
	DefaultFileName = ".compressingconfig"
	// DefaultAlgorithm is used when no algorithm is configured.
	DefaultAlgorithm = "lzw"
)

var (
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config is the content of a config file.
type Config struct {
	Core struct {
		// Algorithm is the name of the algorithm used by default.
		Algorithm string
		// Stats prints the statistics of every run.
		Stats bool
		// Truncate truncates existing output files before writing.
		Truncate bool
		// Verify checks every output by running the inverse transform.
		Verify bool
	}

	Trace struct {
		// General enables the file and stream level trace.
		General bool
		// Codes enables the trace of every code and dictionary entry.
		Codes bool
	}
}

// NewConfig returns a new Config with the default values.
func NewConfig() *Config {
	c := &Config{}
	c.Core.Algorithm = DefaultAlgorithm
	return c
}

// Validate validates the fields and sets the default values.
func (c *Config) Validate() error {
	return mergo.Merge(c, NewConfig())
}

// Merge sets every unset field of c with the value from o.
func (c *Config) Merge(o *Config) error {
	return mergo.Merge(c, o)
}

// DefaultPath returns the path of the config file in the home directory of
// the current user.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, DefaultFileName), nil
}

// LoadConfig reads the config file at path from fs. A missing file gives the
// default config.
func LoadConfig(fs billy.Filesystem, path string) (c *Config, err error) {
	c = NewConfig()

	f, err := fs.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}

	if err != nil {
		return nil, err
	}

	defer ioutil.CheckClose(f, &err)

	if err := NewDecoder(f).Decode(c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
