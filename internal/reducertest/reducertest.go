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

// Package reducertest provides instrumented stand-ins for sub-reducers and
// update functions, used to verify dispatch routing and pipeline behavior.
package reducertest

import (
	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/state"
	"github.com/formstate-io/formstate/pkg/update"
)

// CallRecorder captures which sub-reducer the root reducer delegated to,
// without changing any state.
type CallRecorder struct {
	ControlCalls []actions.Action
	GroupCalls   []actions.Action
	ArrayCalls   []actions.Action
}

// ControlReducer returns an identity control sub-reducer that records every
// delegation.
func (r *CallRecorder) ControlReducer() func(*state.ControlState, actions.Action) *state.ControlState {
	return func(c *state.ControlState, a actions.Action) *state.ControlState {
		r.ControlCalls = append(r.ControlCalls, a)

		return c
	}
}

// GroupReducer returns an identity group sub-reducer that records every
// delegation.
func (r *CallRecorder) GroupReducer() func(*state.GroupState, actions.Action) *state.GroupState {
	return func(g *state.GroupState, a actions.Action) *state.GroupState {
		r.GroupCalls = append(r.GroupCalls, a)

		return g
	}
}

// ArrayReducer returns an identity array sub-reducer that records every
// delegation.
func (r *CallRecorder) ArrayReducer() func(*state.ArrayState, actions.Action) *state.ArrayState {
	return func(s *state.ArrayState, a actions.Action) *state.ArrayState {
		r.ArrayCalls = append(r.ArrayCalls, a)

		return s
	}
}

// TotalCalls returns the number of recorded delegations across all three
// sub-reducers.
func (r *CallRecorder) TotalCalls() int {
	return len(r.ControlCalls) + len(r.GroupCalls) + len(r.ArrayCalls)
}

// RecordingUpdate returns an identity update function that appends name to
// log each time it runs.
func RecordingUpdate(name string, log *[]string) update.Fn {
	return func(s state.FormState) state.FormState {
		*log = append(*log, name)

		return s
	}
}

// MarkSubmittedUpdate returns an update function that flips the Submitted
// flag on group roots, producing a fresh node so pipelines see a change.
func MarkSubmittedUpdate(log *[]string, name string) update.Fn {
	return func(s state.FormState) state.FormState {
		*log = append(*log, name)

		group, ok := s.(*state.GroupState)
		if !ok {
			return s
		}

		clone := group.Clone()
		clone.Submitted = true

		return clone
	}
}
