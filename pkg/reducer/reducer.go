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

// Package reducer advances form state trees in response to dispatched
// actions. The root Reducer validates its preconditions and dispatches to
// exactly one node-variant sub-reducer; the built-in sub-reducers recurse
// into children themselves. Every reduction path upholds the identity
// contract: the identical pointer comes back when nothing changed.
package reducer

import (
	"time"

	"go.uber.org/zap"

	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/logger"
	"github.com/formstate-io/formstate/pkg/metrics"
	"github.com/formstate-io/formstate/pkg/standarderrors"
	"github.com/formstate-io/formstate/pkg/state"
)

// ControlReducer advances a control node. It must return the identical
// pointer when the action does not apply.
type ControlReducer func(*state.ControlState, actions.Action) *state.ControlState

// GroupReducer advances a group node, recursing into children as needed.
// It must return the identical pointer when neither the group nor any
// descendant changed.
type GroupReducer func(*state.GroupState, actions.Action) *state.GroupState

// ArrayReducer advances an array node, recursing into children as needed.
// It must return the identical pointer when neither the array nor any
// descendant changed.
type ArrayReducer func(*state.ArrayState, actions.Action) *state.ArrayState

// Reducer is the root form state reducer. Dispatch is total: every action,
// recognized or not, is handed to the sub-reducer matching the state's
// variant; unrecognized actions come back as identity no-ops.
type Reducer struct {
	control ControlReducer
	group   GroupReducer
	array   ArrayReducer
	log     *zap.SugaredLogger
}

// Option customizes a Reducer.
type Option func(*Reducer)

// WithControlReducer replaces the built-in control sub-reducer.
func WithControlReducer(fn ControlReducer) Option {
	return func(r *Reducer) { r.control = fn }
}

// WithGroupReducer replaces the built-in group sub-reducer.
func WithGroupReducer(fn GroupReducer) Option {
	return func(r *Reducer) { r.group = fn }
}

// WithArrayReducer replaces the built-in array sub-reducer.
func WithArrayReducer(fn ArrayReducer) Option {
	return func(r *Reducer) { r.array = fn }
}

// WithLogger replaces the component logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Reducer) { r.log = log }
}

// New creates a root reducer over the built-in sub-reducers.
func New(opts ...Option) *Reducer {
	r := &Reducer{
		control: ReduceControl,
		group:   ReduceGroup,
		array:   ReduceArray,
		log:     logger.For(logger.ComponentReducer),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Reduce advances v by one action.
//
// Two root preconditions are enforced: a nil state yields
// standarderrors.ErrUninitializedState, and a value failing the form state
// classifier yields a standarderrors.NotAFormStateError naming the value.
// Both indicate host misconfiguration and are meant to propagate. All other
// paths are total; unrecognized actions return the identical input.
func (r *Reducer) Reduce(v any, action actions.Action) (state.FormState, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveReduceTime(metrics.ComponentReducer, time.Since(start))
	}()

	if v == nil {
		metrics.IncPreconditionFailure(metrics.ComponentReducer)

		return nil, standarderrors.ErrUninitializedState
	}

	if !state.IsFormState(v) {
		metrics.IncPreconditionFailure(metrics.ComponentReducer)

		return nil, &standarderrors.NotAFormStateError{Value: v}
	}

	var result state.FormState

	switch node := v.(type) {
	case *state.GroupState:
		result = r.group(node, action)
	case *state.ArrayState:
		result = r.array(node, action)
	case *state.ControlState:
		result = r.control(node, action)
	}

	changed := any(result) != v
	metrics.ObserveAction(metrics.ComponentReducer, action.ActionType(), changed)

	if changed {
		r.log.Debugw("Action changed form state",
			"actionType", action.ActionType(),
			"targetId", action.TargetID())
	}

	return result, nil
}

// MustReduce is Reduce for callers that treat the root preconditions as
// programmer errors. It panics instead of returning them.
func (r *Reducer) MustReduce(v any, action actions.Action) state.FormState {
	result, err := r.Reduce(v, action)
	if err != nil {
		panic(err)
	}

	return result
}

// reduceChild dispatches one child node to the matching built-in
// sub-reducer. Composite sub-reducers use this for their recursion; the
// root Reducer's pluggable sub-reducers are consulted only at the root.
func reduceChild(s state.FormState, action actions.Action) state.FormState {
	switch node := s.(type) {
	case *state.GroupState:
		return ReduceGroup(node, action)
	case *state.ArrayState:
		return ReduceArray(node, action)
	case *state.ControlState:
		return ReduceControl(node, action)
	default:
		return s
	}
}
