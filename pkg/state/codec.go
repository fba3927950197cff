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

package state

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Kind discriminator values used in the wire representation.
const (
	KindControl = "control"
	KindGroup   = "group"
	KindArray   = "array"
)

type controlEncoded struct {
	Kind                  string           `json:"kind"`
	ID                    string           `json:"id"`
	Value                 any              `json:"value"`
	Errors                ValidationErrors `json:"errors,omitempty"`
	PendingValidations    []string         `json:"pendingValidations,omitempty"`
	Dirty                 bool             `json:"isDirty,omitempty"`
	Touched               bool             `json:"isTouched,omitempty"`
	Focused               bool             `json:"isFocused,omitempty"`
	Submitted             bool             `json:"isSubmitted,omitempty"`
	UserDefinedProperties map[string]any   `json:"userDefinedProperties,omitempty"`
}

type groupEncoded struct {
	Kind      string               `json:"kind"`
	ID        string               `json:"id"`
	Controls  map[string]FormState `json:"controls"`
	Errors    ValidationErrors     `json:"errors,omitempty"`
	Submitted bool                 `json:"isSubmitted,omitempty"`
}

type arrayEncoded struct {
	Kind      string           `json:"kind"`
	ID        string           `json:"id"`
	Controls  []FormState      `json:"controls"`
	Errors    ValidationErrors `json:"errors,omitempty"`
	Submitted bool             `json:"isSubmitted,omitempty"`
}

type groupDecoded struct {
	ID        string                     `json:"id"`
	Controls  map[string]json.RawMessage `json:"controls"`
	Errors    ValidationErrors           `json:"errors"`
	Submitted bool                       `json:"isSubmitted"`
}

type arrayDecoded struct {
	ID        string            `json:"id"`
	Controls  []json.RawMessage `json:"controls"`
	Errors    ValidationErrors  `json:"errors"`
	Submitted bool              `json:"isSubmitted"`
}

// MarshalJSON encodes the control with its kind discriminator.
func (c *ControlState) MarshalJSON() ([]byte, error) {
	return json.Marshal(controlEncoded{
		Kind:                  KindControl,
		ID:                    c.ID,
		Value:                 c.Value,
		Errors:                c.Errors,
		PendingValidations:    c.PendingValidations,
		Dirty:                 c.Dirty,
		Touched:               c.Touched,
		Focused:               c.Focused,
		Submitted:             c.Submitted,
		UserDefinedProperties: c.UserDefinedProperties,
	})
}

// MarshalJSON encodes the group with its kind discriminator; children are
// encoded recursively.
func (g *GroupState) MarshalJSON() ([]byte, error) {
	return json.Marshal(groupEncoded{
		Kind:      KindGroup,
		ID:        g.ID,
		Controls:  g.Controls,
		Errors:    g.Errors,
		Submitted: g.Submitted,
	})
}

// MarshalJSON encodes the array with its kind discriminator; children are
// encoded recursively.
func (a *ArrayState) MarshalJSON() ([]byte, error) {
	return json.Marshal(arrayEncoded{
		Kind:      KindArray,
		ID:        a.ID,
		Controls:  a.Controls,
		Errors:    a.Errors,
		Submitted: a.Submitted,
	})
}

// MarshalState encodes any form state tree to JSON.
func MarshalState(s FormState) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot marshal nil form state")
	}

	return json.Marshal(s)
}

// UnmarshalState decodes a form state tree produced by MarshalState. The
// variant is picked from the kind discriminator.
func UnmarshalState(data []byte) (FormState, error) {
	var probe struct {
		Kind string `json:"kind"`
	}

	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to probe form state kind: %w", err)
	}

	switch probe.Kind {
	case KindControl:
		var enc controlEncoded
		if err := json.Unmarshal(data, &enc); err != nil {
			return nil, fmt.Errorf("failed to decode control state: %w", err)
		}

		return &ControlState{
			ID:                    enc.ID,
			Value:                 enc.Value,
			Errors:                enc.Errors,
			PendingValidations:    enc.PendingValidations,
			Dirty:                 enc.Dirty,
			Touched:               enc.Touched,
			Focused:               enc.Focused,
			Submitted:             enc.Submitted,
			UserDefinedProperties: enc.UserDefinedProperties,
		}, nil
	case KindGroup:
		var enc groupDecoded
		if err := json.Unmarshal(data, &enc); err != nil {
			return nil, fmt.Errorf("failed to decode group state: %w", err)
		}

		controls := make(map[string]FormState, len(enc.Controls))

		for name, raw := range enc.Controls {
			child, err := UnmarshalState(raw)
			if err != nil {
				return nil, fmt.Errorf("failed to decode group child %q: %w", name, err)
			}

			controls[name] = child
		}

		return &GroupState{
			ID:        enc.ID,
			Controls:  controls,
			Errors:    enc.Errors,
			Submitted: enc.Submitted,
		}, nil
	case KindArray:
		var enc arrayDecoded
		if err := json.Unmarshal(data, &enc); err != nil {
			return nil, fmt.Errorf("failed to decode array state: %w", err)
		}

		controls := make([]FormState, len(enc.Controls))

		for i, raw := range enc.Controls {
			child, err := UnmarshalState(raw)
			if err != nil {
				return nil, fmt.Errorf("failed to decode array child %d: %w", i, err)
			}

			controls[i] = child
		}

		return &ArrayState{
			ID:        enc.ID,
			Controls:  controls,
			Errors:    enc.Errors,
			Submitted: enc.Submitted,
		}, nil
	default:
		return nil, fmt.Errorf("unknown form state kind %q", probe.Kind)
	}
}

// MarshalYAML renders the control as a plain mapping for tooling output.
func (c *ControlState) MarshalYAML() (any, error) {
	return statePlain(c), nil
}

// MarshalYAML renders the group as a plain mapping for tooling output.
func (g *GroupState) MarshalYAML() (any, error) {
	return statePlain(g), nil
}

// MarshalYAML renders the array as a plain mapping for tooling output.
func (a *ArrayState) MarshalYAML() (any, error) {
	return statePlain(a), nil
}

func statePlain(s FormState) map[string]any {
	switch node := s.(type) {
	case *ControlState:
		plain := map[string]any{
			"kind":  KindControl,
			"id":    node.ID,
			"value": node.Value,
		}
		addCommonPlain(plain, node.Errors, node.Dirty, node.Touched, node.Submitted)

		if node.Focused {
			plain["isFocused"] = true
		}

		if len(node.PendingValidations) > 0 {
			plain["pendingValidations"] = node.PendingValidations
		}

		if len(node.UserDefinedProperties) > 0 {
			plain["userDefinedProperties"] = node.UserDefinedProperties
		}

		return plain
	case *GroupState:
		controls := make(map[string]any, len(node.Controls))
		for name, child := range node.Controls {
			controls[name] = statePlain(child)
		}

		plain := map[string]any{
			"kind":     KindGroup,
			"id":       node.ID,
			"controls": controls,
		}
		addCommonPlain(plain, node.Errors, node.IsDirty(), node.IsTouched(), node.Submitted)

		return plain
	case *ArrayState:
		controls := make([]any, len(node.Controls))
		for i, child := range node.Controls {
			controls[i] = statePlain(child)
		}

		plain := map[string]any{
			"kind":     KindArray,
			"id":       node.ID,
			"controls": controls,
		}
		addCommonPlain(plain, node.Errors, node.IsDirty(), node.IsTouched(), node.Submitted)

		return plain
	default:
		return map[string]any{}
	}
}

func addCommonPlain(plain map[string]any, errors ValidationErrors, dirty, touched, submitted bool) {
	if len(errors) > 0 {
		plain["errors"] = errors
	}

	if dirty {
		plain["isDirty"] = true
	}

	if touched {
		plain["isTouched"] = true
	}

	if submitted {
		plain["isSubmitted"] = true
	}
}
