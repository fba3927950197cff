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
	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/state"
)

// ReduceGroup is the built-in group sub-reducer. Actions addressed at the
// group itself are handled here; actions addressed below it are routed to
// the child owning the next ID segment. The identical pointer comes back
// unless the group or some descendant changed.
func ReduceGroup(g *state.GroupState, action actions.Action) *state.GroupState {
	if action.TargetID() == g.ID {
		return reduceGroupSelf(g, action)
	}

	name := state.NextSegment(g.ID, action.TargetID())
	if name == "" {
		return g
	}

	child, ok := g.Controls[name]
	if !ok {
		return g
	}

	reduced := reduceChild(child, action)
	if reduced == child {
		return g
	}

	controls := copyControls(g.Controls)
	controls[name] = reduced

	return &state.GroupState{
		ID:        g.ID,
		Controls:  controls,
		Errors:    g.Errors,
		Submitted: g.Submitted,
	}
}

func reduceGroupSelf(g *state.GroupState, action actions.Action) *state.GroupState {
	switch act := action.(type) {
	case actions.SetValue:
		values, ok := act.Value.(map[string]any)
		if !ok {
			return g
		}

		return fanOutGroup(g, func(name, childID string) (actions.Action, bool) {
			value, present := values[name]
			if !present {
				return nil, false
			}

			return actions.SetValue{ControlID: childID, Value: value}, true
		})
	case actions.SetErrors:
		if errorsEqual(g.Errors, act.Errors) {
			return g
		}

		clone := shallowGroup(g)
		clone.Errors = state.CopyErrors(act.Errors)

		return clone
	case actions.MarkAsDirty, actions.MarkAsPristine, actions.MarkAsTouched, actions.MarkAsUntouched:
		return fanOutGroup(g, retargetFor(action))
	case actions.Reset:
		next := fanOutGroup(g, retargetFor(action))
		if !next.Submitted {
			return next
		}

		if next == g {
			next = shallowGroup(g)
		}

		next.Submitted = false

		return next
	case actions.MarkAsSubmitted:
		next := fanOutGroup(g, retargetFor(action))
		if next.Submitted {
			return next
		}

		if next == g {
			next = shallowGroup(g)
		}

		next.Submitted = true

		return next
	case actions.MarkAsUnsubmitted:
		next := fanOutGroup(g, retargetFor(action))
		if !next.Submitted {
			return next
		}

		if next == g {
			next = shallowGroup(g)
		}

		next.Submitted = false

		return next
	case actions.AddGroupControl:
		if _, exists := g.Controls[act.Name]; exists {
			return g
		}

		controls := copyControls(g.Controls)
		controls[act.Name] = state.NewControlState(state.ChildID(g.ID, act.Name), state.CopyValue(act.Value))

		clone := shallowGroup(g)
		clone.Controls = controls

		return clone
	case actions.RemoveGroupControl:
		if _, exists := g.Controls[act.Name]; !exists {
			return g
		}

		controls := copyControls(g.Controls)
		delete(controls, act.Name)

		clone := shallowGroup(g)
		clone.Controls = controls

		return clone
	default:
		return g
	}
}

// fanOutGroup re-dispatches a per-child action to every child for which
// retarget produces one, rebuilding the group only if some child actually
// changed.
func fanOutGroup(g *state.GroupState, retarget func(name, childID string) (actions.Action, bool)) *state.GroupState {
	var controls map[string]state.FormState

	for name, child := range g.Controls {
		childAction, ok := retarget(name, child.GetID())
		if !ok {
			continue
		}

		reduced := reduceChild(child, childAction)
		if reduced == child {
			continue
		}

		if controls == nil {
			controls = copyControls(g.Controls)
		}

		controls[name] = reduced
	}

	if controls == nil {
		return g
	}

	clone := shallowGroup(g)
	clone.Controls = controls

	return clone
}

// retargetFor rebuilds a broadcastable action against a child ID. Only the
// mark/reset family is broadcast, so the closed switch stays small.
func retargetFor(action actions.Action) func(name, childID string) (actions.Action, bool) {
	return func(_, childID string) (actions.Action, bool) {
		switch action.(type) {
		case actions.MarkAsDirty:
			return actions.MarkAsDirty{ControlID: childID}, true
		case actions.MarkAsPristine:
			return actions.MarkAsPristine{ControlID: childID}, true
		case actions.MarkAsTouched:
			return actions.MarkAsTouched{ControlID: childID}, true
		case actions.MarkAsUntouched:
			return actions.MarkAsUntouched{ControlID: childID}, true
		case actions.MarkAsSubmitted:
			return actions.MarkAsSubmitted{ControlID: childID}, true
		case actions.MarkAsUnsubmitted:
			return actions.MarkAsUnsubmitted{ControlID: childID}, true
		case actions.Reset:
			return actions.Reset{ControlID: childID}, true
		default:
			return nil, false
		}
	}
}

func copyControls(controls map[string]state.FormState) map[string]state.FormState {
	out := make(map[string]state.FormState, len(controls))
	for name, child := range controls {
		out[name] = child
	}

	return out
}

// shallowGroup copies the group node itself, sharing children and errors.
// Callers overwrite the fields they change.
func shallowGroup(g *state.GroupState) *state.GroupState {
	return &state.GroupState{
		ID:        g.ID,
		Controls:  g.Controls,
		Errors:    g.Errors,
		Submitted: g.Submitted,
	}
}
