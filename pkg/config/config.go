// Copyright 2025 Formstate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads YAML form definitions and builds the initial form
// state trees the reducers operate on. Definitions describe structure and
// initial values only; validation rules and update functions stay in code.
package config

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"gopkg.in/yaml.v3"

	"github.com/formstate-io/formstate/pkg/state"
)

// Field kinds accepted in a form definition.
const (
	FieldKindControl = "control"
	FieldKindGroup   = "group"
	FieldKindArray   = "array"
)

// FormDefinition describes one form: an ID and the root group's fields.
type FormDefinition struct {
	ID     string            `yaml:"id"`
	Fields []FieldDefinition `yaml:"fields"`
}

// FieldDefinition describes one node of the form. Kind defaults to
// "control" when empty. Group fields carry nested Fields; array fields
// carry Items, one per initial element.
type FieldDefinition struct {
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind,omitempty"`
	Initial    any               `yaml:"initial,omitempty"`
	Fields     []FieldDefinition `yaml:"fields,omitempty"`
	Items      []FieldDefinition `yaml:"items,omitempty"`
	Properties map[string]any    `yaml:"properties,omitempty"`
}

// ParseFormDefinition unmarshals a YAML form definition and validates its
// structure.
func ParseFormDefinition(data []byte) (FormDefinition, error) {
	var def FormDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return FormDefinition{}, fmt.Errorf("failed to parse form definition: %w", err)
	}

	if def.ID == "" {
		return FormDefinition{}, fmt.Errorf("form definition must have an id")
	}

	if len(def.Fields) == 0 {
		return FormDefinition{}, fmt.Errorf("form definition %q must have at least one field", def.ID)
	}

	for _, field := range def.Fields {
		if err := validateField(def.ID, field); err != nil {
			return FormDefinition{}, err
		}
	}

	return def, nil
}

func validateField(path string, field FieldDefinition) error {
	if field.Name == "" {
		return fmt.Errorf("field under %q must have a name", path)
	}

	fieldPath := path + "." + field.Name

	switch field.Kind {
	case "", FieldKindControl:
		if len(field.Fields) > 0 || len(field.Items) > 0 {
			return fmt.Errorf("control field %q cannot have children", fieldPath)
		}
	case FieldKindGroup:
		if len(field.Fields) == 0 {
			return fmt.Errorf("group field %q must have fields", fieldPath)
		}

		for _, child := range field.Fields {
			if err := validateField(fieldPath, child); err != nil {
				return err
			}
		}
	case FieldKindArray:
		for i, item := range field.Items {
			if err := validateArrayItem(fmt.Sprintf("%s.%d", fieldPath, i), item); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("field %q has unknown kind %q", fieldPath, field.Kind)
	}

	return nil
}

// validateArrayItem validates an array element definition; elements are
// addressed by index, so no name is required.
func validateArrayItem(path string, item FieldDefinition) error {
	switch item.Kind {
	case "", FieldKindControl:
		if len(item.Fields) > 0 || len(item.Items) > 0 {
			return fmt.Errorf("control item %q cannot have children", path)
		}
	case FieldKindGroup:
		if len(item.Fields) == 0 {
			return fmt.Errorf("group item %q must have fields", path)
		}

		for _, child := range item.Fields {
			if err := validateField(path, child); err != nil {
				return err
			}
		}
	case FieldKindArray:
		for i, child := range item.Items {
			if err := validateArrayItem(fmt.Sprintf("%s.%d", path, i), child); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("item %q has unknown kind %q", path, item.Kind)
	}

	return nil
}

// Clone creates a deep copy of the definition.
func (d FormDefinition) Clone() FormDefinition {
	var clone FormDefinition

	deepcopy.Copy(&clone, &d)

	return clone
}

// BuildInitialState constructs the pristine form state tree the definition
// describes. The root is always a group carrying the definition's ID.
func (d FormDefinition) BuildInitialState() (state.FormState, error) {
	controls := make(map[string]state.FormState, len(d.Fields))
	for _, field := range d.Fields {
		controls[field.Name] = buildField(state.ChildID(d.ID, field.Name), field)
	}

	root := state.NewGroupState(d.ID, controls)

	return root, nil
}

func buildField(id string, field FieldDefinition) state.FormState {
	switch field.Kind {
	case FieldKindGroup:
		controls := make(map[string]state.FormState, len(field.Fields))
		for _, child := range field.Fields {
			controls[child.Name] = buildField(state.ChildID(id, child.Name), child)
		}

		return state.NewGroupState(id, controls)
	case FieldKindArray:
		controls := make([]state.FormState, len(field.Items))
		for i, item := range field.Items {
			controls[i] = buildField(state.IndexID(id, i), item)
		}

		return state.NewArrayState(id, controls)
	default:
		control := state.NewControlState(id, state.CopyValue(field.Initial))
		if len(field.Properties) > 0 {
			var props map[string]any

			deepcopy.Copy(&props, &field.Properties)
			control.UserDefinedProperties = props
		}

		return control
	}
}
