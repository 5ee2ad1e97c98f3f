// Package project loads the project description a descriptor is generated from.
package project

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Project is the in-memory project description.
type Project struct {
	Name         string       `yaml:"name"`
	Version      string       `yaml:"version"`
	Group        string       `yaml:"group,omitempty"`
	Description  string       `yaml:"description,omitempty"`
	Dependencies []Dependency `yaml:"dependencies,omitempty"`
	Repositories Repositories `yaml:"repositories,omitempty"`
	Root         string       `yaml:"root,omitempty"` // Defaults to the description file's directory
}

// Dependency is an (identifier, version) pair.
// The identifier may carry a group prefix: "org.clojure/clojure".
type Dependency struct {
	ID      string `yaml:"id"`
	Version string `yaml:"version"`
}

// UnmarshalYAML accepts either a two element sequence or a mapping:
//
//	- [org.clojure/clojure, "1.2.0"]
//	- {id: org.clojure/clojure, version: "1.2.0"}
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var pair []string
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: dependency must be [id, version], got %d elements", node.Line, len(pair))
		}
		d.ID, d.Version = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		type plain Dependency
		return node.Decode((*plain)(d))
	default:
		return fmt.Errorf("line %d: dependency must be a sequence or mapping", node.Line)
	}
}

// Repository is a named artifact repository.
type Repository struct {
	ID  string
	URL string
}

// Repositories keeps the declaration order of a YAML id -> url mapping.
type Repositories []Repository

// UnmarshalYAML decodes a mapping node pair by pair so order is preserved.
func (r *Repositories) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: repositories must be a mapping of id to url", node.Line)
	}
	repos := make(Repositories, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var repo Repository
		if err := node.Content[i].Decode(&repo.ID); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&repo.URL); err != nil {
			return err
		}
		repos = append(repos, repo)
	}
	*r = repos
	return nil
}

// MarshalYAML writes repositories back as an ordered mapping.
func (r Repositories) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, repo := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: repo.ID},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: repo.URL},
		)
	}
	return node, nil
}
