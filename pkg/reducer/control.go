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

package reducer

import (
	"reflect"

	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/state"
)

// asyncErrorKey namespaces asynchronous validation results within a
// control's error map so they never collide with synchronous errors.
func asyncErrorKey(name string) string {
	return "$" + name
}

// ReduceControl is the built-in control sub-reducer. Actions not addressed
// at this control, and actions that would not alter it, return the
// identical pointer.
func ReduceControl(c *state.ControlState, action actions.Action) *state.ControlState {
	if action.TargetID() != c.ID {
		return c
	}

	switch act := action.(type) {
	case actions.SetValue:
		if reflect.DeepEqual(c.Value, act.Value) {
			return c
		}

		clone := c.Clone()
		clone.Value = state.CopyValue(act.Value)

		return clone
	case actions.SetErrors:
		if errorsEqual(c.Errors, act.Errors) {
			return c
		}

		clone := c.Clone()
		clone.Errors = state.CopyErrors(act.Errors)

		return clone
	case actions.StartAsyncValidation:
		if containsString(c.PendingValidations, act.Name) {
			return c
		}

		clone := c.Clone()
		clone.PendingValidations = append(clone.PendingValidations, act.Name)

		return clone
	case actions.SetAsyncError:
		key := asyncErrorKey(act.Name)
		pending := containsString(c.PendingValidations, act.Name)

		if existing, ok := c.Errors[key]; !pending && ok && reflect.DeepEqual(existing, act.Value) {
			return c
		}

		clone := c.Clone()
		if clone.Errors == nil {
			clone.Errors = state.ValidationErrors{}
		}

		clone.Errors[key] = state.CopyValue(act.Value)
		clone.PendingValidations = removeString(clone.PendingValidations, act.Name)

		return clone
	case actions.ClearAsyncError:
		key := asyncErrorKey(act.Name)
		_, hasError := c.Errors[key]
		pending := containsString(c.PendingValidations, act.Name)

		if !hasError && !pending {
			return c
		}

		clone := c.Clone()
		delete(clone.Errors, key)
		clone.PendingValidations = removeString(clone.PendingValidations, act.Name)

		return clone
	case actions.MarkAsDirty:
		if c.Dirty {
			return c
		}

		clone := c.Clone()
		clone.Dirty = true

		return clone
	case actions.MarkAsPristine:
		if !c.Dirty {
			return c
		}

		clone := c.Clone()
		clone.Dirty = false

		return clone
	case actions.MarkAsTouched:
		if c.Touched {
			return c
		}

		clone := c.Clone()
		clone.Touched = true

		return clone
	case actions.MarkAsUntouched:
		if !c.Touched {
			return c
		}

		clone := c.Clone()
		clone.Touched = false

		return clone
	case actions.Focus:
		if c.Focused {
			return c
		}

		clone := c.Clone()
		clone.Focused = true

		return clone
	case actions.Unfocus:
		if !c.Focused {
			return c
		}

		clone := c.Clone()
		clone.Focused = false

		return clone
	case actions.MarkAsSubmitted:
		if c.Submitted {
			return c
		}

		clone := c.Clone()
		clone.Submitted = true

		return clone
	case actions.MarkAsUnsubmitted:
		if !c.Submitted {
			return c
		}

		clone := c.Clone()
		clone.Submitted = false

		return clone
	case actions.Reset:
		if !c.Dirty && !c.Touched && !c.Submitted {
			return c
		}

		clone := c.Clone()
		clone.Dirty = false
		clone.Touched = false
		clone.Submitted = false

		return clone
	case actions.SetUserDefinedProperty:
		if existing, ok := c.UserDefinedProperties[act.Name]; ok && reflect.DeepEqual(existing, act.Value) {
			return c
		}

		clone := c.Clone()
		if clone.UserDefinedProperties == nil {
			clone.UserDefinedProperties = map[string]any{}
		}

		clone.UserDefinedProperties[act.Name] = state.CopyValue(act.Value)

		return clone
	default:
		return c
	}
}

// errorsEqual treats nil and empty maps as equal; beyond that it is deep
// equality.
func errorsEqual(a, b state.ValidationErrors) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}

	return reflect.DeepEqual(a, b)
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}

	return false
}

func removeString(values []string, v string) []string {
	out := values[:0:0]

	for _, s := range values {
		if s != v {
			out = append(out, s)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
