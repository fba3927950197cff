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
	"github.com/tiendc/go-deepcopy"
)

// CopyValue deep-copies an opaque control value so that state nodes never
// alias caller-owned data.
func CopyValue(v any) any {
	if v == nil {
		return nil
	}

	var out any

	deepcopy.Copy(&out, v)

	return out
}

// CopyErrors deep-copies a validation error map. Nil stays nil.
func CopyErrors(errors ValidationErrors) ValidationErrors {
	if errors == nil {
		return nil
	}

	var out ValidationErrors

	deepcopy.Copy(&out, &errors)

	return out
}

// Clone creates a deep copy of the control, including its value, errors and
// user-defined properties.
func (c *ControlState) Clone() *ControlState {
	clone := &ControlState{
		ID:        c.ID,
		Value:     CopyValue(c.Value),
		Errors:    CopyErrors(c.Errors),
		Dirty:     c.Dirty,
		Touched:   c.Touched,
		Focused:   c.Focused,
		Submitted: c.Submitted,
	}

	if c.PendingValidations != nil {
		clone.PendingValidations = append([]string{}, c.PendingValidations...)
	}

	if c.UserDefinedProperties != nil {
		var props map[string]any

		deepcopy.Copy(&props, &c.UserDefinedProperties)
		clone.UserDefinedProperties = props
	}

	return clone
}

// Clone creates a deep copy of the group and every descendant.
func (g *GroupState) Clone() *GroupState {
	controls := make(map[string]FormState, len(g.Controls))
	for name, child := range g.Controls {
		controls[name] = CloneState(child)
	}

	return &GroupState{
		ID:        g.ID,
		Controls:  controls,
		Errors:    CopyErrors(g.Errors),
		Submitted: g.Submitted,
	}
}

// Clone creates a deep copy of the array and every descendant.
func (a *ArrayState) Clone() *ArrayState {
	controls := make([]FormState, len(a.Controls))
	for i, child := range a.Controls {
		controls[i] = CloneState(child)
	}

	return &ArrayState{
		ID:        a.ID,
		Controls:  controls,
		Errors:    CopyErrors(a.Errors),
		Submitted: a.Submitted,
	}
}

// CloneState deep-copies any form state node.
func CloneState(s FormState) FormState {
	switch node := s.(type) {
	case *GroupState:
		return node.Clone()
	case *ArrayState:
		return node.Clone()
	case *ControlState:
		return node.Clone()
	default:
		return s
	}
}

// WithID returns a copy of s rooted at the given ID, with every
// descendant's ID rewritten accordingly. If s already carries the ID, s is
// returned unchanged. Array reducers use this to re-home children after
// insertions, removals and moves.
func WithID(s FormState, id string) FormState {
	if s.GetID() == id {
		return s
	}

	switch node := s.(type) {
	case *ControlState:
		clone := node.Clone()
		clone.ID = id

		return clone
	case *GroupState:
		controls := make(map[string]FormState, len(node.Controls))
		for name, child := range node.Controls {
			controls[name] = WithID(child, ChildID(id, name))
		}

		return &GroupState{
			ID:        id,
			Controls:  controls,
			Errors:    CopyErrors(node.Errors),
			Submitted: node.Submitted,
		}
	case *ArrayState:
		controls := make([]FormState, len(node.Controls))
		for i, child := range node.Controls {
			controls[i] = WithID(child, IndexID(id, i))
		}

		return &ArrayState{
			ID:        id,
			Controls:  controls,
			Errors:    CopyErrors(node.Errors),
			Submitted: node.Submitted,
		}
	default:
		return s
	}
}
