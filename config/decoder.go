package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-git/gcfg"
)

const (
	coreSection  = "core"
	traceSection = "trace"

	algorithmKey = "algorithm"
	statsKey     = "stats"
	truncateKey  = "truncate"
	verifyKey    = "verify"
	generalKey   = "general"
	codesKey     = "codes"
)

// A Decoder reads and decodes config files from an input stream.
type Decoder struct {
	io.Reader
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r}
}

// Decode reads the whole config from its input and stores it in the value
// pointed to by config. Unknown sections and keys are ignored; section and
// key names are case insensitive.
func (d *Decoder) Decode(config *Config) error {
	var invalid error
	cb := func(s, ss, k, v string, blank bool) error {
		if k == "" || ss != "" {
			return nil
		}

		s, k = strings.ToLower(s), strings.ToLower(k)
		switch s {
		case coreSection:
			switch k {
			case algorithmKey:
				config.Core.Algorithm = v
			case statsKey:
				invalid = parseBool(&config.Core.Stats, s, k, v, blank)
			case truncateKey:
				invalid = parseBool(&config.Core.Truncate, s, k, v, blank)
			case verifyKey:
				invalid = parseBool(&config.Core.Verify, s, k, v, blank)
			}
		case traceSection:
			switch k {
			case generalKey:
				invalid = parseBool(&config.Trace.General, s, k, v, blank)
			case codesKey:
				invalid = parseBool(&config.Trace.Codes, s, k, v, blank)
			}
		}

		return invalid
	}

	// gcfg wraps callback errors in a warnings list
	if err := gcfg.ReadWithCallback(d, cb); err != nil {
		if invalid != nil {
			return invalid
		}

		return err
	}

	return nil
}

// parseBool follows git: a key with no value is true.
func parseBool(dst *bool, section, key, value string, blank bool) error {
	if blank {
		*dst = true
		return nil
	}

	switch strings.ToLower(value) {
	case "yes", "on":
		*dst = true
		return nil
	case "no", "off", "":
		*dst = false
		return nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%w %q for %s.%s", ErrInvalidValue, value, section, key)
	}

	*dst = b
	return nil
}
