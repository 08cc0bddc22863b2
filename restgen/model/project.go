package model

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// ErrModelNotFound is returned by ReadProjectModel when the model file does not exist.
var ErrModelNotFound = errors.New("model file does not exist")

// ProjectModel is the project metadata exported by the studio.
// Only the parts the generators consume are decoded; everything else is ignored.
type ProjectModel struct {
	Project ProjectInfo `json:"project"`

	// Entities holds project entities keyed by entity name (e.g. "scr$Car").
	Entities map[string]Entity `json:"entities,omitempty" validate:"dive"`

	// BaseProjectEntities holds entities inherited from platform modules.
	BaseProjectEntities map[string]Entity `json:"baseProjectEntities,omitempty" validate:"dive"`

	Enums []Enum `json:"enums,omitempty" validate:"dive"`

	// RestServices contains the services exposed over REST, in model order.
	RestServices []ServiceDescriptor `json:"restServices" validate:"unique=Name,dive"`
}

// Entity describes a persistent entity class.
type Entity struct {
	Name        string `json:"name"`
	ClassName   string `json:"className" validate:"required"`
	FQN         string `json:"fqn" validate:"required"`
	PackageName string `json:"packageName,omitempty"`
}

// Enum describes an enum class.
type Enum struct {
	Name      string      `json:"name"`
	ClassName string      `json:"className" validate:"required"`
	FQN       string      `json:"fqn" validate:"required"`
	Values    []EnumValue `json:"values,omitempty"`
}

// EnumValue is a single enum constant.
type EnumValue struct {
	Name    string `json:"name"`
	ID      any    `json:"id,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// ReadProjectModel reads a project model from a JSON or YAML file.
func ReadProjectModel(path string) (*ProjectModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("read model: %w", err)
	}
	pm, err := ParseProjectModel(data)
	if err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	return pm, nil
}

// ParseProjectModel decodes a project model. JSON is accepted as a subset of YAML.
func ParseProjectModel(data []byte) (*ProjectModel, error) {
	var pm ProjectModel
	if err := yaml.Unmarshal(data, &pm); err != nil {
		return nil, err
	}
	return &pm, nil
}

// FindService looks up a service by name. Returns nil if not found.
func (pm *ProjectModel) FindService(name string) *ServiceDescriptor {
	for i := range pm.RestServices {
		if pm.RestServices[i].Name == name {
			return &pm.RestServices[i]
		}
	}
	return nil
}

// CountMethods returns the number of distinct method names across services.
func CountMethods(services []ServiceDescriptor) int {
	n := 0
	for _, svc := range services {
		seen := make(map[string]bool, len(svc.Methods))
		for _, m := range svc.Methods {
			if !seen[m.Name] {
				seen[m.Name] = true
				n++
			}
		}
	}
	return n
}
