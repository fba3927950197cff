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
	"sort"
	"strconv"
	"strings"
)

// IDSeparator joins the segments of a control ID. A child of the group
// "login" named "username" has the ID "login.username"; the third element
// of the array "todos" has the ID "todos.2".
const IDSeparator = "."

// ValidationErrors maps error names (e.g. "required", "maxLength") to an
// arbitrary error payload. An empty or nil map means the node is valid.
type ValidationErrors map[string]any

// FormState is the closed union over the three node variants of a form
// state tree: *ControlState (leaf), *GroupState (named children) and
// *ArrayState (indexed children). All variants are pointer types; reducers
// signal "nothing changed" by returning the identical pointer, and every
// change produces a freshly allocated node. That identity contract is the
// only change signal the update pipeline and the host integrators rely on.
type FormState interface {
	// GetID returns the dot-separated ID of this node within its tree.
	GetID() string
	// GetValue returns the aggregated value of this node: the raw value
	// for controls, a map[string]any for groups, a []any for arrays.
	GetValue() any
	// GetErrors returns the node's own validation errors.
	GetErrors() ValidationErrors
	// IsValid reports whether this node and every descendant is free of
	// validation errors.
	IsValid() bool
	// IsDirty reports whether this node or any descendant has been
	// marked dirty.
	IsDirty() bool
	// IsTouched reports whether this node or any descendant has been
	// marked touched.
	IsTouched() bool
	// IsSubmitted reports whether this node or any descendant has been
	// marked submitted.
	IsSubmitted() bool
	// IsValidationPending reports whether an asynchronous validation is
	// in flight for this node or any descendant.
	IsValidationPending() bool

	// formState seals the union; the three variants in this package are
	// the only implementations.
	formState()
}

// ControlState is the leaf variant. It holds the control's current value
// together with the per-control flags the reducers maintain.
type ControlState struct {
	ID                    string
	Value                 any
	Errors                ValidationErrors
	PendingValidations    []string
	Dirty                 bool
	Touched               bool
	Focused               bool
	Submitted             bool
	UserDefinedProperties map[string]any
}

func (c *ControlState) GetID() string { return c.ID }

func (c *ControlState) GetValue() any { return c.Value }

func (c *ControlState) GetErrors() ValidationErrors { return c.Errors }

func (c *ControlState) IsValid() bool { return len(c.Errors) == 0 }

func (c *ControlState) IsDirty() bool { return c.Dirty }

func (c *ControlState) IsTouched() bool { return c.Touched }

func (c *ControlState) IsSubmitted() bool { return c.Submitted }

func (c *ControlState) IsValidationPending() bool { return len(c.PendingValidations) > 0 }

func (c *ControlState) IsFocused() bool { return c.Focused }

func (*ControlState) formState() {}

// GroupState is the named-composite variant. Children are addressed by
// field name; a child's ID is the group's ID plus the field name.
type GroupState struct {
	ID        string
	Controls  map[string]FormState
	Errors    ValidationErrors
	Submitted bool
}

func (g *GroupState) GetID() string { return g.ID }

// GetValue aggregates the children's values into a map keyed by field name.
func (g *GroupState) GetValue() any {
	value := make(map[string]any, len(g.Controls))
	for name, child := range g.Controls {
		value[name] = child.GetValue()
	}

	return value
}

func (g *GroupState) GetErrors() ValidationErrors { return g.Errors }

func (g *GroupState) IsValid() bool {
	if len(g.Errors) > 0 {
		return false
	}

	for _, child := range g.Controls {
		if !child.IsValid() {
			return false
		}
	}

	return true
}

func (g *GroupState) IsDirty() bool {
	for _, child := range g.Controls {
		if child.IsDirty() {
			return true
		}
	}

	return false
}

func (g *GroupState) IsTouched() bool {
	for _, child := range g.Controls {
		if child.IsTouched() {
			return true
		}
	}

	return false
}

func (g *GroupState) IsSubmitted() bool {
	if g.Submitted {
		return true
	}

	for _, child := range g.Controls {
		if child.IsSubmitted() {
			return true
		}
	}

	return false
}

func (g *GroupState) IsValidationPending() bool {
	for _, child := range g.Controls {
		if child.IsValidationPending() {
			return true
		}
	}

	return false
}

// FieldNames returns the group's field names in lexical order. Go maps are
// unordered, so every observable iteration over a group goes through this.
func (g *GroupState) FieldNames() []string {
	names := make([]string, 0, len(g.Controls))
	for name := range g.Controls {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (*GroupState) formState() {}

// ArrayState is the indexed-composite variant. A child's ID is the array's
// ID plus the child's index, so moving a child rewrites its whole subtree's
// IDs (see WithID).
type ArrayState struct {
	ID        string
	Controls  []FormState
	Errors    ValidationErrors
	Submitted bool
}

func (a *ArrayState) GetID() string { return a.ID }

// GetValue aggregates the children's values into a slice in index order.
func (a *ArrayState) GetValue() any {
	value := make([]any, len(a.Controls))
	for i, child := range a.Controls {
		value[i] = child.GetValue()
	}

	return value
}

func (a *ArrayState) GetErrors() ValidationErrors { return a.Errors }

func (a *ArrayState) IsValid() bool {
	if len(a.Errors) > 0 {
		return false
	}

	for _, child := range a.Controls {
		if !child.IsValid() {
			return false
		}
	}

	return true
}

func (a *ArrayState) IsDirty() bool {
	for _, child := range a.Controls {
		if child.IsDirty() {
			return true
		}
	}

	return false
}

func (a *ArrayState) IsTouched() bool {
	for _, child := range a.Controls {
		if child.IsTouched() {
			return true
		}
	}

	return false
}

func (a *ArrayState) IsSubmitted() bool {
	if a.Submitted {
		return true
	}

	for _, child := range a.Controls {
		if child.IsSubmitted() {
			return true
		}
	}

	return false
}

func (a *ArrayState) IsValidationPending() bool {
	for _, child := range a.Controls {
		if child.IsValidationPending() {
			return true
		}
	}

	return false
}

func (*ArrayState) formState() {}

// NewControlState creates a pristine, untouched, valid control holding the
// given initial value.
func NewControlState(id string, value any) *ControlState {
	return &ControlState{
		ID:    id,
		Value: value,
	}
}

// NewGroupState creates a group over the given children. The children must
// already carry IDs of the form id + "." + name.
func NewGroupState(id string, controls map[string]FormState) *GroupState {
	if controls == nil {
		controls = map[string]FormState{}
	}

	return &GroupState{
		ID:       id,
		Controls: controls,
	}
}

// NewArrayState creates an array over the given children. The children must
// already carry IDs of the form id + "." + index.
func NewArrayState(id string, controls []FormState) *ArrayState {
	if controls == nil {
		controls = []FormState{}
	}

	return &ArrayState{
		ID:       id,
		Controls: controls,
	}
}

// ChildID builds the ID of a named child of the node with the given ID.
func ChildID(parentID, name string) string {
	return parentID + IDSeparator + name
}

// IndexID builds the ID of an indexed child of the node with the given ID.
func IndexID(parentID string, index int) string {
	return parentID + IDSeparator + strconv.Itoa(index)
}

// NextSegment extracts the first ID segment below parentID from targetID.
// It returns "" when targetID does not address a descendant of parentID.
func NextSegment(parentID, targetID string) string {
	prefix := parentID + IDSeparator
	if !strings.HasPrefix(targetID, prefix) {
		return ""
	}

	rest := targetID[len(prefix):]
	if i := strings.Index(rest, IDSeparator); i >= 0 {
		return rest[:i]
	}

	return rest
}
