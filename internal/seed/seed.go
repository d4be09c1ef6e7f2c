// Package seed loads the activity catalog definition the process starts
// with. Definitions come from a YAML file, or from the embedded default
// catalog when no file is configured.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/activities/internal/domain"
)

//go:embed default.yaml
var defaultCatalog []byte

type file struct {
	Activities []entry `yaml:"activities"`
}

type entry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// Load reads activity definitions from path. An empty path yields the
// embedded default catalog.
func Load(path string) ([]domain.Definition, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	defs, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return defs, nil
}

// Default returns the embedded catalog of school offerings.
func Default() ([]domain.Definition, error) {
	defs, err := parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded seed: %w", err)
	}
	return defs, nil
}

func parse(data []byte) ([]domain.Definition, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(f.Activities) == 0 {
		return nil, fmt.Errorf("no activities defined")
	}
	defs := make([]domain.Definition, 0, len(f.Activities))
	for _, e := range f.Activities {
		defs = append(defs, domain.Definition{
			Name:            e.Name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    e.Participants,
		})
	}
	return defs, nil
}
