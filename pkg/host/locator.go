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

package host

import (
	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/state"
	"github.com/formstate-io/formstate/pkg/update"
)

// Locator finds the one form state subtree inside an application state.
//
// Precondition for WrapReducer: the returned value must be reference-
// identical to some direct field of the state it was given. A locator that
// derives a value instead (reads a nested path, transforms the tree) makes
// the key scan below miss, and the subsequent replacement silently targets
// the empty key. WrapReducerAt removes this failure mode by taking the key
// directly.
type Locator func(AppState) state.FormState

// WrapReducer wraps an application reducer so that, after it runs, exactly
// one form state subtree (found by the locator) is passed through one
// update function.
//
// If the update function returns the identical subtree, the inner reducer's
// result is returned as-is, preserving whatever reference it produced.
// Otherwise a shallow copy of that result with the located field replaced
// is returned.
func WrapReducer(inner AppReducer, locate Locator, updateFn update.Fn) AppReducer {
	return func(app AppState, action actions.Action) AppState {
		updated := inner(app, action)
		formState := locate(updated)

		// find the direct field holding the located subtree
		var formStateKey string

		for key, value := range updated {
			if value == any(formState) {
				formStateKey = key

				break
			}
		}

		updatedFormState := updateFn(formState)
		if updatedFormState == formState {
			return updated
		}

		next := make(AppState, len(updated))
		for key, value := range updated {
			next[key] = value
		}

		next[formStateKey] = updatedFormState

		return next
	}
}

// WrapReducerAt is the hardened variant of WrapReducer: the caller names
// the field holding the form state subtree, eliminating the identity scan
// and its silent mismatch. The field's value must satisfy the form state
// classifier after the inner reducer has run; otherwise the wrapper leaves
// the state untouched.
func WrapReducerAt(inner AppReducer, key string, updateFn update.Fn) AppReducer {
	return func(app AppState, action actions.Action) AppState {
		updated := inner(app, action)

		value, ok := updated[key]
		if !ok || !state.IsFormState(value) {
			return updated
		}

		formState := value.(state.FormState)

		updatedFormState := updateFn(formState)
		if updatedFormState == formState {
			return updated
		}

		next := make(AppState, len(updated))
		for k, v := range updated {
			next[k] = v
		}

		next[key] = updatedFormState

		return next
	}
}
