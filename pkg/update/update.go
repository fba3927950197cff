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

// Package update layers pure post-processing functions over a form state
// reducer. Update functions encode potentially expensive cross-field
// re-validation or derivation, so they run only when reduction actually
// changed the tree; on identity no-ops the pipeline returns the input
// untouched and none of them are invoked. Callers who need an update
// applied regardless of whether reduction changed anything must invoke it
// manually outside the pipeline.
package update

import (
	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/state"
)

// Fn is a pure update function. It must be total, free of side effects and
// safe to call any number of times. Like sub-reducers it should return the
// identical pointer when it changes nothing, so that pipelines compose.
type Fn func(state.FormState) state.FormState

// ReduceFn is the reducer shape the pipeline wraps and produces, matching
// (*reducer.Reducer).Reduce.
type ReduceFn func(v any, action actions.Action) (state.FormState, error)

// Concat flattens several update function lists into one, preserving the
// declared order exactly.
func Concat(lists ...[]Fn) []Fn {
	var out []Fn
	for _, list := range lists {
		out = append(out, list...)
	}

	return out
}

// NewReducer builds a reducer that first runs reduce and then, only if the
// reduction returned a different reference, folds the update functions
// over the result in declared order. The trailing variadic list is
// appended after updates, so NewReducer(r, nil, f, g) and
// NewReducer(r, []Fn{f, g}) are the same pipeline.
func NewReducer(reduce ReduceFn, updates []Fn, extra ...Fn) ReduceFn {
	fns := Concat(updates, extra)

	return func(v any, action actions.Action) (state.FormState, error) {
		result, err := reduce(v, action)
		if err != nil {
			return nil, err
		}

		if any(result) == v {
			return result, nil
		}

		for _, fn := range fns {
			result = fn(result)
		}

		return result, nil
	}
}

// NewReducerWith builds a pipeline from a single update function; it exists
// for the common one-function case so callers skip the slice literal.
func NewReducerWith(reduce ReduceFn, fn Fn) ReduceFn {
	return NewReducer(reduce, []Fn{fn})
}
