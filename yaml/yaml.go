// Package yaml loads and writes extraction profiles as YAML documents.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/worldfacts"
	"gopkg.in/yaml.v3"
)

// profileFile is the on-disk form of a profile. Extends names a built-in
// profile whose settings are used for every key the file leaves out.
type profileFile struct {
	Extends            string `yaml:"extends,omitempty"`
	worldfacts.Profile `yaml:",inline"`
}

// LoadProfile reads a profile from the YAML file at path.
func LoadProfile(path string) (*worldfacts.Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided profile path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, worldfacts.Errorf(worldfacts.ENOTFOUND, "profile file %q not found", path)
		}
		return nil, err
	}
	return ParseProfile(data)
}

// ParseProfile decodes a profile document. Unknown keys are rejected so
// that a misspelled label rule does not silently fall back to a default.
// The result is validated.
func ParseProfile(data []byte) (*worldfacts.Profile, error) {
	var head struct {
		Extends string `yaml:"extends"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, worldfacts.Errorf(worldfacts.EINVALID, "invalid profile: %v", err)
	}

	var file profileFile
	if head.Extends != "" {
		base, ok := worldfacts.Profiles()[head.Extends]
		if !ok {
			return nil, worldfacts.Errorf(worldfacts.EINVALID, "unknown base profile %q", head.Extends)
		}
		file.Profile = *base
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, worldfacts.Errorf(worldfacts.EINVALID, "invalid profile: %v", err)
	}

	p := file.Profile
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// WriteProfile encodes p as a YAML document.
func WriteProfile(w io.Writer, p *worldfacts.Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
