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

package standarderrors

import (
	"errors"
	"fmt"
)

// ErrUninitializedState is returned when a reducer is invoked with no state
// at all. This is a host-configuration error: the host must build an
// initial form state before dispatching, so callers are expected to let it
// propagate rather than recover from it.
var ErrUninitializedState = errors.New("form state must be initialized before reduction")

// NotAFormStateError is returned when the value handed to the root reducer
// is not a form state tree. The diagnostic names the offending value.
type NotAFormStateError struct {
	Value any
}

func (e *NotAFormStateError) Error() string {
	return fmt.Sprintf("state is not a form state: %#v", e.Value)
}

// IsNotAFormState reports whether err is a NotAFormStateError.
func IsNotAFormState(err error) bool {
	var target *NotAFormStateError

	return errors.As(err, &target)
}
