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

import (
	"fmt"

	"github.com/goccy/go-json"
)

type envelope struct {
	Type string `json:"type"`
}

// Decode parses a JSON-encoded action of the form
// {"type": "...", ...payload}. Unknown type strings are an error here (the
// caller asked for one of ours); inside the reducers unknown actions are
// identity no-ops instead.
func Decode(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode action envelope: %w", err)
	}

	switch env.Type {
	case SetValueType:
		return decodeAs[SetValue](data)
	case SetErrorsType:
		return decodeAs[SetErrors](data)
	case StartAsyncValidationType:
		return decodeAs[StartAsyncValidation](data)
	case SetAsyncErrorType:
		return decodeAs[SetAsyncError](data)
	case ClearAsyncErrorType:
		return decodeAs[ClearAsyncError](data)
	case MarkAsDirtyType:
		return decodeAs[MarkAsDirty](data)
	case MarkAsPristineType:
		return decodeAs[MarkAsPristine](data)
	case MarkAsTouchedType:
		return decodeAs[MarkAsTouched](data)
	case MarkAsUntouchedType:
		return decodeAs[MarkAsUntouched](data)
	case FocusType:
		return decodeAs[Focus](data)
	case UnfocusType:
		return decodeAs[Unfocus](data)
	case MarkAsSubmittedType:
		return decodeAs[MarkAsSubmitted](data)
	case MarkAsUnsubmittedType:
		return decodeAs[MarkAsUnsubmitted](data)
	case ResetType:
		return decodeAs[Reset](data)
	case AddGroupControlType:
		return decodeAs[AddGroupControl](data)
	case RemoveGroupControlType:
		return decodeAs[RemoveGroupControl](data)
	case AddArrayControlType:
		return decodeAs[AddArrayControl](data)
	case RemoveArrayControlType:
		return decodeAs[RemoveArrayControl](data)
	case SwapArrayControlType:
		return decodeAs[SwapArrayControl](data)
	case MoveArrayControlType:
		return decodeAs[MoveArrayControl](data)
	case SetUserDefinedPropertyType:
		return decodeAs[SetUserDefinedProperty](data)
	default:
		return nil, fmt.Errorf("unknown action type %q", env.Type)
	}
}

func decodeAs[A Action](data []byte) (Action, error) {
	var action A
	if err := json.Unmarshal(data, &action); err != nil {
		return nil, fmt.Errorf("failed to decode %s action: %w", action.ActionType(), err)
	}

	return action, nil
}

// Encode serializes an action together with its type string, producing the
// envelope Decode understands.
func Encode(action Action) ([]byte, error) {
	payload, err := json.Marshal(action)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s action: %w", action.ActionType(), err)
	}

	// splice the type into the payload object
	var obj map[string]any
	if err := json.Unmarshal(payload, &obj); err != nil {
		return nil, fmt.Errorf("failed to re-read %s action payload: %w", action.ActionType(), err)
	}

	obj["type"] = action.ActionType()

	return json.Marshal(obj)
}
