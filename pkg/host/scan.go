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

// Package host embeds form state trees inside a larger, externally owned
// application state. Two strategies are provided: an exhaustive scan over
// the top-level fields of a map-shaped state, and a locator-based wrapper
// that updates exactly one named subtree after an inner reducer has run.
// For statically typed application states, FieldRegistry replaces the scan
// with an explicit field list.
package host

import (
	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/metrics"
	"github.com/formstate-io/formstate/pkg/state"
)

// AppState is the map shape the scan and locator modes operate on.
type AppState = map[string]any

// AppReducer is the reducer shape of a host application fragment.
type AppReducer func(AppState, actions.Action) AppState

// FormReducer abstracts the root form state reducer (or an update pipeline
// wrapped around it) for embedding.
type FormReducer interface {
	MustReduce(v any, action actions.Action) state.FormState
}

// ScanReducer builds a reducer fragment that enumerates the top-level keys
// of the application state and replaces every value satisfying the form
// state classifier with its reduction. All other values are passed through
// untouched, not even shallow-copied.
//
// The container itself is always rebuilt, so its reference changes on every
// call regardless of whether any field changed. Callers relying on
// reference equality for "nothing changed" downstream of this fragment
// must compare field-by-field instead.
//
// Only first-level keys are scanned; form state trees nested inside other
// containers are not discovered.
func ScanReducer(form FormReducer) AppReducer {
	return func(app AppState, action actions.Action) AppState {
		next := make(AppState, len(app))

		for key, value := range app {
			if state.IsFormState(value) {
				reduced := form.MustReduce(value, action)
				metrics.ObserveAction(metrics.ComponentHostScan, action.ActionType(), any(reduced) != value)
				next[key] = reduced

				continue
			}

			next[key] = value
		}

		return next
	}
}

// ReactsTo returns the full static list of action types the built-in
// reducers can react to, so a host can scope dispatch subscriptions or
// tooling to exactly that set.
func ReactsTo() []string {
	return actions.AllActionTypes()
}
