package actions

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyPlan is returned when a plan holds no groups.
var ErrEmptyPlan = errors.New("plan contains no commit groups")

// Plan is a grouped commit request read from a file. Path, when set,
// names the repository.
type Plan struct {
	Path    string  `yaml:"path"`
	Commits []Group `yaml:"commits"`
}

// ParsePlan reads a plan from YAML or JSON. Both a bare list of groups and
// a mapping with a "commits" key are accepted.
func ParsePlan(data []byte) (*Plan, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, ErrEmptyPlan
	}

	plan := &Plan{}
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&plan.Commits); err != nil {
			return nil, fmt.Errorf("failed to parse plan: %w", err)
		}
	case yaml.MappingNode:
		if err := doc.Decode(plan); err != nil {
			return nil, fmt.Errorf("failed to parse plan: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to parse plan: expected a list of groups or a mapping with commits")
	}

	if len(plan.Commits) == 0 {
		return nil, ErrEmptyPlan
	}
	return plan, nil
}
