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

import "github.com/formstate-io/formstate/pkg/state"

// Action is a dispatched, immutable record addressed at one node of a form
// state tree. Hosts may dispatch foreign actions through the reducers;
// those come back as identity no-ops, never as errors.
type Action interface {
	// ActionType returns the action's registered type string.
	ActionType() string
	// TargetID returns the ID of the node the action addresses.
	TargetID() string
}

// Type strings of every action this module's reducers react to. The set is
// closed; see AllActionTypes.
const (
	SetValueType               = "formstate/SET_VALUE"
	SetErrorsType              = "formstate/SET_ERRORS"
	StartAsyncValidationType   = "formstate/START_ASYNC_VALIDATION"
	SetAsyncErrorType          = "formstate/SET_ASYNC_ERROR"
	ClearAsyncErrorType        = "formstate/CLEAR_ASYNC_ERROR"
	MarkAsDirtyType            = "formstate/MARK_AS_DIRTY"
	MarkAsPristineType         = "formstate/MARK_AS_PRISTINE"
	MarkAsTouchedType          = "formstate/MARK_AS_TOUCHED"
	MarkAsUntouchedType        = "formstate/MARK_AS_UNTOUCHED"
	FocusType                  = "formstate/FOCUS"
	UnfocusType                = "formstate/UNFOCUS"
	MarkAsSubmittedType        = "formstate/MARK_AS_SUBMITTED"
	MarkAsUnsubmittedType      = "formstate/MARK_AS_UNSUBMITTED"
	ResetType                  = "formstate/RESET"
	AddGroupControlType        = "formstate/ADD_GROUP_CONTROL"
	RemoveGroupControlType     = "formstate/REMOVE_GROUP_CONTROL"
	AddArrayControlType        = "formstate/ADD_ARRAY_CONTROL"
	RemoveArrayControlType     = "formstate/REMOVE_ARRAY_CONTROL"
	SwapArrayControlType       = "formstate/SWAP_ARRAY_CONTROL"
	MoveArrayControlType       = "formstate/MOVE_ARRAY_CONTROL"
	SetUserDefinedPropertyType = "formstate/SET_USER_DEFINED_PROPERTY"
)

// SetValue replaces the target control's value. Dispatched against a group
// or array, the value must be a map[string]any or []any respectively and is
// fanned out to the matching children.
type SetValue struct {
	ControlID string `json:"controlId"`
	Value     any    `json:"value"`
}

func (a SetValue) ActionType() string { return SetValueType }
func (a SetValue) TargetID() string   { return a.ControlID }

// SetErrors replaces the target node's own validation errors.
type SetErrors struct {
	ControlID string                 `json:"controlId"`
	Errors    state.ValidationErrors `json:"errors"`
}

func (a SetErrors) ActionType() string { return SetErrorsType }
func (a SetErrors) TargetID() string   { return a.ControlID }

// StartAsyncValidation flags the named asynchronous validation as in flight
// on the target control. The async driver lives outside this module; it
// talks to the tree exclusively through this action and the two below.
type StartAsyncValidation struct {
	ControlID string `json:"controlId"`
	Name      string `json:"name"`
}

func (a StartAsyncValidation) ActionType() string { return StartAsyncValidationType }
func (a StartAsyncValidation) TargetID() string   { return a.ControlID }

// SetAsyncError records the result of the named asynchronous validation and
// clears its pending flag.
type SetAsyncError struct {
	ControlID string `json:"controlId"`
	Name      string `json:"name"`
	Value     any    `json:"value"`
}

func (a SetAsyncError) ActionType() string { return SetAsyncErrorType }
func (a SetAsyncError) TargetID() string   { return a.ControlID }

// ClearAsyncError removes the named asynchronous validation error and its
// pending flag.
type ClearAsyncError struct {
	ControlID string `json:"controlId"`
	Name      string `json:"name"`
}

func (a ClearAsyncError) ActionType() string { return ClearAsyncErrorType }
func (a ClearAsyncError) TargetID() string   { return a.ControlID }

// MarkAsDirty marks the target node and all its descendants as dirty.
type MarkAsDirty struct {
	ControlID string `json:"controlId"`
}

func (a MarkAsDirty) ActionType() string { return MarkAsDirtyType }
func (a MarkAsDirty) TargetID() string   { return a.ControlID }

// MarkAsPristine marks the target node and all its descendants as pristine.
type MarkAsPristine struct {
	ControlID string `json:"controlId"`
}

func (a MarkAsPristine) ActionType() string { return MarkAsPristineType }
func (a MarkAsPristine) TargetID() string   { return a.ControlID }

// MarkAsTouched marks the target node and all its descendants as touched.
type MarkAsTouched struct {
	ControlID string `json:"controlId"`
}

func (a MarkAsTouched) ActionType() string { return MarkAsTouchedType }
func (a MarkAsTouched) TargetID() string   { return a.ControlID }

// MarkAsUntouched marks the target node and all its descendants as
// untouched.
type MarkAsUntouched struct {
	ControlID string `json:"controlId"`
}

func (a MarkAsUntouched) ActionType() string { return MarkAsUntouchedType }
func (a MarkAsUntouched) TargetID() string   { return a.ControlID }

// Focus marks the target control as focused.
type Focus struct {
	ControlID string `json:"controlId"`
}

func (a Focus) ActionType() string { return FocusType }
func (a Focus) TargetID() string   { return a.ControlID }

// Unfocus clears the target control's focus flag.
type Unfocus struct {
	ControlID string `json:"controlId"`
}

func (a Unfocus) ActionType() string { return UnfocusType }
func (a Unfocus) TargetID() string   { return a.ControlID }

// MarkAsSubmitted marks the target node and all its descendants as
// submitted.
type MarkAsSubmitted struct {
	ControlID string `json:"controlId"`
}

func (a MarkAsSubmitted) ActionType() string { return MarkAsSubmittedType }
func (a MarkAsSubmitted) TargetID() string   { return a.ControlID }

// MarkAsUnsubmitted clears the submitted flag on the target node and all
// its descendants.
type MarkAsUnsubmitted struct {
	ControlID string `json:"controlId"`
}

func (a MarkAsUnsubmitted) ActionType() string { return MarkAsUnsubmittedType }
func (a MarkAsUnsubmitted) TargetID() string   { return a.ControlID }

// Reset marks the target node and all its descendants as pristine,
// untouched and unsubmitted. Values and errors are left as they are.
type Reset struct {
	ControlID string `json:"controlId"`
}

func (a Reset) ActionType() string { return ResetType }
func (a Reset) TargetID() string   { return a.ControlID }

// AddGroupControl adds a fresh control holding Value under Name to the
// target group. A no-op if the name is already taken.
type AddGroupControl struct {
	GroupID string `json:"controlId"`
	Name    string `json:"name"`
	Value   any    `json:"value"`
}

func (a AddGroupControl) ActionType() string { return AddGroupControlType }
func (a AddGroupControl) TargetID() string   { return a.GroupID }

// RemoveGroupControl removes the named child from the target group. A no-op
// if no such child exists.
type RemoveGroupControl struct {
	GroupID string `json:"controlId"`
	Name    string `json:"name"`
}

func (a RemoveGroupControl) ActionType() string { return RemoveGroupControlType }
func (a RemoveGroupControl) TargetID() string   { return a.GroupID }

// AddArrayControl inserts a fresh control holding Value into the target
// array. A nil Index appends; children at and after the insertion point are
// re-homed to their new indices.
type AddArrayControl struct {
	ArrayID string `json:"controlId"`
	Value   any    `json:"value"`
	Index   *int   `json:"index,omitempty"`
}

func (a AddArrayControl) ActionType() string { return AddArrayControlType }
func (a AddArrayControl) TargetID() string   { return a.ArrayID }

// RemoveArrayControl removes the child at Index from the target array. A
// no-op if the index is out of range.
type RemoveArrayControl struct {
	ArrayID string `json:"controlId"`
	Index   int    `json:"index"`
}

func (a RemoveArrayControl) ActionType() string { return RemoveArrayControlType }
func (a RemoveArrayControl) TargetID() string   { return a.ArrayID }

// SwapArrayControl exchanges the children at FromIndex and ToIndex of the
// target array.
type SwapArrayControl struct {
	ArrayID   string `json:"controlId"`
	FromIndex int    `json:"fromIndex"`
	ToIndex   int    `json:"toIndex"`
}

func (a SwapArrayControl) ActionType() string { return SwapArrayControlType }
func (a SwapArrayControl) TargetID() string   { return a.ArrayID }

// MoveArrayControl moves the child at FromIndex to ToIndex, shifting the
// children in between.
type MoveArrayControl struct {
	ArrayID   string `json:"controlId"`
	FromIndex int    `json:"fromIndex"`
	ToIndex   int    `json:"toIndex"`
}

func (a MoveArrayControl) ActionType() string { return MoveArrayControlType }
func (a MoveArrayControl) TargetID() string   { return a.ArrayID }

// SetUserDefinedProperty sets one named property in the target control's
// user-defined property bag.
type SetUserDefinedProperty struct {
	ControlID string `json:"controlId"`
	Name      string `json:"name"`
	Value     any    `json:"value"`
}

func (a SetUserDefinedProperty) ActionType() string { return SetUserDefinedPropertyType }
func (a SetUserDefinedProperty) TargetID() string   { return a.ControlID }
