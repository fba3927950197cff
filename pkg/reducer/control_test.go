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

package reducer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/reducer"
	"github.com/formstate-io/formstate/pkg/state"
)

var _ = Describe("Control sub-reducer", func() {
	var control *state.ControlState

	BeforeEach(func() {
		control = state.NewControlState("form.email", "old")
	})

	It("should ignore actions addressed elsewhere", func() {
		result := reducer.ReduceControl(control, actions.SetValue{ControlID: "form.other", Value: "new"})
		Expect(result).To(BeIdenticalTo(control))
	})

	Describe("SetValue", func() {
		It("should replace the value", func() {
			result := reducer.ReduceControl(control, actions.SetValue{ControlID: "form.email", Value: "new"})

			Expect(result).ToNot(BeIdenticalTo(control))
			Expect(result.Value).To(Equal("new"))
			Expect(control.Value).To(Equal("old"))
		})

		It("should no-op on a deep-equal value", func() {
			result := reducer.ReduceControl(control, actions.SetValue{ControlID: "form.email", Value: "old"})
			Expect(result).To(BeIdenticalTo(control))
		})

		It("should detach the stored value from the action's", func() {
			value := map[string]any{"k": "v"}
			result := reducer.ReduceControl(control, actions.SetValue{ControlID: "form.email", Value: value})

			value["k"] = "mutated"

			Expect(result.Value).To(Equal(map[string]any{"k": "v"}))
		})
	})

	Describe("SetErrors", func() {
		It("should replace the errors and flip validity", func() {
			result := reducer.ReduceControl(control, actions.SetErrors{
				ControlID: "form.email",
				Errors:    state.ValidationErrors{"required": true},
			})

			Expect(result).ToNot(BeIdenticalTo(control))
			Expect(result.IsValid()).To(BeFalse())
		})

		It("should treat nil and empty errors as equal", func() {
			result := reducer.ReduceControl(control, actions.SetErrors{
				ControlID: "form.email",
				Errors:    state.ValidationErrors{},
			})
			Expect(result).To(BeIdenticalTo(control))
		})
	})

	Describe("asynchronous validation", func() {
		It("should record a pending validation exactly once", func() {
			first := reducer.ReduceControl(control, actions.StartAsyncValidation{ControlID: "form.email", Name: "unique"})
			Expect(first.IsValidationPending()).To(BeTrue())

			second := reducer.ReduceControl(first, actions.StartAsyncValidation{ControlID: "form.email", Name: "unique"})
			Expect(second).To(BeIdenticalTo(first))
		})

		It("should settle a pending validation with an error", func() {
			pending := reducer.ReduceControl(control, actions.StartAsyncValidation{ControlID: "form.email", Name: "unique"})

			settled := reducer.ReduceControl(pending, actions.SetAsyncError{
				ControlID: "form.email",
				Name:      "unique",
				Value:     "taken",
			})

			Expect(settled).ToNot(BeIdenticalTo(pending))
			Expect(settled.IsValidationPending()).To(BeFalse())
			Expect(settled.Errors).To(HaveKeyWithValue("$unique", "taken"))
		})

		It("should settle a pending validation by clearing", func() {
			pending := reducer.ReduceControl(control, actions.StartAsyncValidation{ControlID: "form.email", Name: "unique"})

			cleared := reducer.ReduceControl(pending, actions.ClearAsyncError{ControlID: "form.email", Name: "unique"})

			Expect(cleared.IsValidationPending()).To(BeFalse())
			Expect(cleared.Errors).ToNot(HaveKey("$unique"))
		})

		It("should no-op when clearing an absent async error", func() {
			result := reducer.ReduceControl(control, actions.ClearAsyncError{ControlID: "form.email", Name: "unique"})
			Expect(result).To(BeIdenticalTo(control))
		})
	})

	Describe("flag marks", func() {
		It("should mark and unmark dirty with identity no-ops in between", func() {
			dirty := reducer.ReduceControl(control, actions.MarkAsDirty{ControlID: "form.email"})
			Expect(dirty.Dirty).To(BeTrue())

			again := reducer.ReduceControl(dirty, actions.MarkAsDirty{ControlID: "form.email"})
			Expect(again).To(BeIdenticalTo(dirty))

			pristine := reducer.ReduceControl(dirty, actions.MarkAsPristine{ControlID: "form.email"})
			Expect(pristine.Dirty).To(BeFalse())
		})

		It("should track focus", func() {
			focused := reducer.ReduceControl(control, actions.Focus{ControlID: "form.email"})
			Expect(focused.IsFocused()).To(BeTrue())

			blurred := reducer.ReduceControl(focused, actions.Unfocus{ControlID: "form.email"})
			Expect(blurred.IsFocused()).To(BeFalse())

			Expect(reducer.ReduceControl(blurred, actions.Unfocus{ControlID: "form.email"})).To(BeIdenticalTo(blurred))
		})

		It("should reset dirty, touched and submitted at once", func() {
			dirty := reducer.ReduceControl(control, actions.MarkAsDirty{ControlID: "form.email"})
			touched := reducer.ReduceControl(dirty, actions.MarkAsTouched{ControlID: "form.email"})
			submitted := reducer.ReduceControl(touched, actions.MarkAsSubmitted{ControlID: "form.email"})

			reset := reducer.ReduceControl(submitted, actions.Reset{ControlID: "form.email"})

			Expect(reset.Dirty).To(BeFalse())
			Expect(reset.Touched).To(BeFalse())
			Expect(reset.Submitted).To(BeFalse())

			Expect(reducer.ReduceControl(reset, actions.Reset{ControlID: "form.email"})).To(BeIdenticalTo(reset))
		})
	})

	Describe("user-defined properties", func() {
		It("should set a property", func() {
			result := reducer.ReduceControl(control, actions.SetUserDefinedProperty{
				ControlID: "form.email",
				Name:      "required",
				Value:     true,
			})

			Expect(result.UserDefinedProperties).To(HaveKeyWithValue("required", true))
		})

		It("should no-op when the property already holds the value", func() {
			first := reducer.ReduceControl(control, actions.SetUserDefinedProperty{
				ControlID: "form.email",
				Name:      "required",
				Value:     true,
			})

			second := reducer.ReduceControl(first, actions.SetUserDefinedProperty{
				ControlID: "form.email",
				Name:      "required",
				Value:     true,
			})

			Expect(second).To(BeIdenticalTo(first))
		})
	})
})
