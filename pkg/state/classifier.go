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

package state

// IsFormState reports whether v is a form state node of any variant. It is
// total: foreign values, nil and typed-nil pointers all yield false, never
// a panic. Both the root reducer's precondition check and the host
// integrators' field scan route through this.
func IsFormState(v any) bool {
	switch s := v.(type) {
	case *ControlState:
		return s != nil
	case *GroupState:
		return s != nil
	case *ArrayState:
		return s != nil
	default:
		return false
	}
}

// IsGroupState reports whether v is a group node.
func IsGroupState(v any) bool {
	s, ok := v.(*GroupState)

	return ok && s != nil
}

// IsArrayState reports whether v is an array node.
func IsArrayState(v any) bool {
	s, ok := v.(*ArrayState)

	return ok && s != nil
}
