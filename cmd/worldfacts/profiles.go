package main

import (
	"fmt"
	"slices"

	"github.com/fwojciec/worldfacts"
	"github.com/fwojciec/worldfacts/yaml"
)

// Run executes the profiles command.
func (c *ProfilesCmd) Run(deps *Dependencies) error {
	profiles := worldfacts.Profiles()

	if c.Name != "" {
		p, ok := profiles[c.Name]
		if !ok {
			err := worldfacts.Errorf(worldfacts.ENOTFOUND, "unknown profile %q", c.Name)
			fmt.Fprintf(deps.Stderr, "error: %s\n", worldfacts.ErrorMessage(err))
			return err
		}
		return yaml.WriteProfile(deps.Stdout, p)
	}

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		indexURL, err := profiles[name].IndexURL()
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", name, indexURL)
	}

	return nil
}
