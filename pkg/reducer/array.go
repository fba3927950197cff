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
	"strconv"

	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/state"
)

// ReduceArray is the built-in array sub-reducer. Actions addressed at the
// array itself are handled here; actions addressed below it are routed to
// the child owning the next ID segment. Structural changes (add, remove,
// swap, move) re-home the shifted children so their IDs match their new
// indices.
func ReduceArray(a *state.ArrayState, action actions.Action) *state.ArrayState {
	if action.TargetID() == a.ID {
		return reduceArraySelf(a, action)
	}

	segment := state.NextSegment(a.ID, action.TargetID())
	if segment == "" {
		return a
	}

	index, err := strconv.Atoi(segment)
	if err != nil || index < 0 || index >= len(a.Controls) {
		return a
	}

	child := a.Controls[index]

	reduced := reduceChild(child, action)
	if reduced == child {
		return a
	}

	controls := copyArrayControls(a.Controls)
	controls[index] = reduced

	clone := shallowArray(a)
	clone.Controls = controls

	return clone
}

func reduceArraySelf(a *state.ArrayState, action actions.Action) *state.ArrayState {
	switch act := action.(type) {
	case actions.SetValue:
		values, ok := act.Value.([]any)
		if !ok || len(values) != len(a.Controls) {
			return a
		}

		return fanOutArray(a, func(i int, childID string) (actions.Action, bool) {
			return actions.SetValue{ControlID: childID, Value: values[i]}, true
		})
	case actions.SetErrors:
		if errorsEqual(a.Errors, act.Errors) {
			return a
		}

		clone := shallowArray(a)
		clone.Errors = state.CopyErrors(act.Errors)

		return clone
	case actions.MarkAsDirty, actions.MarkAsPristine, actions.MarkAsTouched, actions.MarkAsUntouched:
		return fanOutArray(a, func(_ int, childID string) (actions.Action, bool) {
			return retargetFor(action)("", childID)
		})
	case actions.Reset:
		next := fanOutArray(a, func(_ int, childID string) (actions.Action, bool) {
			return retargetFor(action)("", childID)
		})

		return withArraySubmitted(a, next, false)
	case actions.MarkAsSubmitted:
		next := fanOutArray(a, func(_ int, childID string) (actions.Action, bool) {
			return retargetFor(action)("", childID)
		})

		return withArraySubmitted(a, next, true)
	case actions.MarkAsUnsubmitted:
		next := fanOutArray(a, func(_ int, childID string) (actions.Action, bool) {
			return retargetFor(action)("", childID)
		})

		return withArraySubmitted(a, next, false)
	case actions.AddArrayControl:
		index := len(a.Controls)
		if act.Index != nil {
			index = *act.Index
		}

		if index < 0 || index > len(a.Controls) {
			return a
		}

		controls := make([]state.FormState, 0, len(a.Controls)+1)
		controls = append(controls, a.Controls[:index]...)
		controls = append(controls, state.NewControlState(state.IndexID(a.ID, index), state.CopyValue(act.Value)))
		controls = append(controls, a.Controls[index:]...)

		clone := shallowArray(a)
		clone.Controls = rehome(a.ID, controls)

		return clone
	case actions.RemoveArrayControl:
		if act.Index < 0 || act.Index >= len(a.Controls) {
			return a
		}

		controls := make([]state.FormState, 0, len(a.Controls)-1)
		controls = append(controls, a.Controls[:act.Index]...)
		controls = append(controls, a.Controls[act.Index+1:]...)

		clone := shallowArray(a)
		clone.Controls = rehome(a.ID, controls)

		return clone
	case actions.SwapArrayControl:
		if !validIndexPair(a, act.FromIndex, act.ToIndex) || act.FromIndex == act.ToIndex {
			return a
		}

		controls := copyArrayControls(a.Controls)
		controls[act.FromIndex], controls[act.ToIndex] = controls[act.ToIndex], controls[act.FromIndex]

		clone := shallowArray(a)
		clone.Controls = rehome(a.ID, controls)

		return clone
	case actions.MoveArrayControl:
		if !validIndexPair(a, act.FromIndex, act.ToIndex) || act.FromIndex == act.ToIndex {
			return a
		}

		controls := copyArrayControls(a.Controls)
		moved := controls[act.FromIndex]
		controls = append(controls[:act.FromIndex], controls[act.FromIndex+1:]...)
		controls = append(controls[:act.ToIndex], append([]state.FormState{moved}, controls[act.ToIndex:]...)...)

		clone := shallowArray(a)
		clone.Controls = rehome(a.ID, controls)

		return clone
	default:
		return a
	}
}

// fanOutArray re-dispatches a per-child action to every child for which
// retarget produces one, rebuilding the array only if some child actually
// changed.
func fanOutArray(a *state.ArrayState, retarget func(i int, childID string) (actions.Action, bool)) *state.ArrayState {
	var controls []state.FormState

	for i, child := range a.Controls {
		childAction, ok := retarget(i, child.GetID())
		if !ok {
			continue
		}

		reduced := reduceChild(child, childAction)
		if reduced == child {
			continue
		}

		if controls == nil {
			controls = copyArrayControls(a.Controls)
		}

		controls[i] = reduced
	}

	if controls == nil {
		return a
	}

	clone := shallowArray(a)
	clone.Controls = controls

	return clone
}

// rehome rewrites children's IDs to match their positions after a
// structural change.
func rehome(arrayID string, controls []state.FormState) []state.FormState {
	for i, child := range controls {
		controls[i] = state.WithID(child, state.IndexID(arrayID, i))
	}

	return controls
}

func withArraySubmitted(orig, next *state.ArrayState, submitted bool) *state.ArrayState {
	if next.Submitted == submitted {
		return next
	}

	if next == orig {
		next = shallowArray(orig)
	}

	next.Submitted = submitted

	return next
}

func validIndexPair(a *state.ArrayState, from, to int) bool {
	return from >= 0 && from < len(a.Controls) && to >= 0 && to < len(a.Controls)
}

func copyArrayControls(controls []state.FormState) []state.FormState {
	out := make([]state.FormState, len(controls))
	copy(out, controls)

	return out
}

// shallowArray copies the array node itself, sharing children and errors.
// Callers overwrite the fields they change.
func shallowArray(a *state.ArrayState) *state.ArrayState {
	return &state.ArrayState{
		ID:        a.ID,
		Controls:  a.Controls,
		Errors:    a.Errors,
		Submitted: a.Submitted,
	}
}
