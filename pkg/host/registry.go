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
	"fmt"

	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/state"
)

// Field names one form state tree inside a statically typed application
// state S: a getter and a setter the host supplies. The setter must return
// a new S rather than mutate the one it was given.
type Field[S any] struct {
	Name string
	Get  func(S) state.FormState
	Set  func(S, state.FormState) S
}

// FieldRegistry is the statically typed counterpart of ScanReducer: in
// place of a runtime scan over unknown keys, the host registers exactly the
// fields that hold form state trees.
type FieldRegistry[S any] struct {
	fields []Field[S]
}

// NewFieldRegistry creates a registry over the given fields. Field names
// must be unique.
func NewFieldRegistry[S any](fields ...Field[S]) (*FieldRegistry[S], error) {
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if f.Name == "" || f.Get == nil || f.Set == nil {
			return nil, fmt.Errorf("field %q must have a name, a getter and a setter", f.Name)
		}

		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("duplicate form state field %q", f.Name)
		}

		seen[f.Name] = struct{}{}
	}

	return &FieldRegistry[S]{fields: fields}, nil
}

// FieldNames returns the registered field names in registration order.
func (r *FieldRegistry[S]) FieldNames() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}

	return names
}

// Reducer builds a reducer fragment that passes every registered field
// through the form reducer. Unlike ScanReducer, the container S is only
// replaced when some field actually changed: unchanged fields keep their
// references, and a fully unchanged state comes back as the identical S.
func (r *FieldRegistry[S]) Reducer(form FormReducer) func(S, actions.Action) S {
	return func(app S, action actions.Action) S {
		for _, f := range r.fields {
			current := f.Get(app)

			next := form.MustReduce(current, action)
			if next == current {
				continue
			}

			app = f.Set(app, next)
		}

		return app
	}
}
