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

package actions

// allActionTypes is the closed set of action type strings the built-in
// reducers react to, in a stable order.
var allActionTypes = []string{
	SetValueType,
	SetErrorsType,
	StartAsyncValidationType,
	SetAsyncErrorType,
	ClearAsyncErrorType,
	MarkAsDirtyType,
	MarkAsPristineType,
	MarkAsTouchedType,
	MarkAsUntouchedType,
	FocusType,
	UnfocusType,
	MarkAsSubmittedType,
	MarkAsUnsubmittedType,
	ResetType,
	AddGroupControlType,
	RemoveGroupControlType,
	AddArrayControlType,
	RemoveArrayControlType,
	SwapArrayControlType,
	MoveArrayControlType,
	SetUserDefinedPropertyType,
}

// AllActionTypes returns the full static list of action type strings the
// built-in reducers can react to. Hosts use it to scope dispatch
// subscriptions or tooling to exactly that set. The returned slice is a
// copy; callers may modify it freely.
func AllActionTypes() []string {
	out := make([]string, len(allActionTypes))
	copy(out, allActionTypes)

	return out
}

// IsKnownActionType reports whether actionType is one of the registered
// type strings.
func IsKnownActionType(actionType string) bool {
	for _, t := range allActionTypes {
		if t == actionType {
			return true
		}
	}

	return false
}
