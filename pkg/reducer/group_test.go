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

var _ = Describe("Group sub-reducer", func() {
	var form *state.GroupState

	BeforeEach(func() {
		form = signupForm()
	})

	Describe("child routing", func() {
		It("should rebuild only the spine above a changed child", func() {
			result := reducer.ReduceGroup(form, actions.SetValue{ControlID: "signup.address.city", Value: "Paris"})

			Expect(result).ToNot(BeIdenticalTo(form))
			// untouched siblings keep their references
			Expect(result.Controls["email"]).To(BeIdenticalTo(form.Controls["email"]))
			Expect(result.Controls["tags"]).To(BeIdenticalTo(form.Controls["tags"]))

			address := result.Controls["address"].(*state.GroupState)
			Expect(address).ToNot(BeIdenticalTo(form.Controls["address"]))
			Expect(address.Controls["city"].GetValue()).To(Equal("Paris"))
		})

		It("should no-op when the addressed child does not exist", func() {
			result := reducer.ReduceGroup(form, actions.SetValue{ControlID: "signup.phone", Value: "123"})
			Expect(result).To(BeIdenticalTo(form))
		})

		It("should propagate child identity no-ops transitively", func() {
			result := reducer.ReduceGroup(form, actions.SetValue{ControlID: "signup.address.city", Value: "Berlin"})
			Expect(result).To(BeIdenticalTo(form))
		})
	})

	Describe("SetValue fan-out", func() {
		It("should set matching children from a value map", func() {
			result := reducer.ReduceGroup(form, actions.SetValue{
				ControlID: "signup",
				Value: map[string]any{
					"email":   "a@b.c",
					"unknown": "ignored",
				},
			})

			Expect(result).ToNot(BeIdenticalTo(form))
			Expect(result.Controls["email"].GetValue()).To(Equal("a@b.c"))
			Expect(result.Controls["address"]).To(BeIdenticalTo(form.Controls["address"]))
		})

		It("should no-op when every targeted child already holds its value", func() {
			result := reducer.ReduceGroup(form, actions.SetValue{
				ControlID: "signup",
				Value:     map[string]any{"email": ""},
			})
			Expect(result).To(BeIdenticalTo(form))
		})

		It("should no-op on a non-map value", func() {
			result := reducer.ReduceGroup(form, actions.SetValue{ControlID: "signup", Value: "scalar"})
			Expect(result).To(BeIdenticalTo(form))
		})
	})

	Describe("broadcast marks", func() {
		It("should mark every descendant touched", func() {
			result := reducer.ReduceGroup(form, actions.MarkAsTouched{ControlID: "signup"})

			Expect(result.IsTouched()).To(BeTrue())
			Expect(result.Controls["email"].IsTouched()).To(BeTrue())
			Expect(result.Controls["address"].IsTouched()).To(BeTrue())
			Expect(result.Controls["tags"].IsTouched()).To(BeTrue())
		})

		It("should no-op when every descendant already carries the mark", func() {
			touched := reducer.ReduceGroup(form, actions.MarkAsTouched{ControlID: "signup"})
			again := reducer.ReduceGroup(touched, actions.MarkAsTouched{ControlID: "signup"})

			Expect(again).To(BeIdenticalTo(touched))
		})

		It("should mark the group and descendants submitted", func() {
			result := reducer.ReduceGroup(form, actions.MarkAsSubmitted{ControlID: "signup"})

			Expect(result.Submitted).To(BeTrue())
			Expect(result.Controls["email"].IsSubmitted()).To(BeTrue())
		})

		It("should reset the whole subtree", func() {
			dirty := reducer.ReduceGroup(form, actions.MarkAsDirty{ControlID: "signup"})
			submitted := reducer.ReduceGroup(dirty, actions.MarkAsSubmitted{ControlID: "signup"})

			reset := reducer.ReduceGroup(submitted, actions.Reset{ControlID: "signup"})

			Expect(reset.IsDirty()).To(BeFalse())
			Expect(reset.IsSubmitted()).To(BeFalse())
		})
	})

	Describe("group errors", func() {
		It("should set the group's own errors", func() {
			result := reducer.ReduceGroup(form, actions.SetErrors{
				ControlID: "signup",
				Errors:    state.ValidationErrors{"mismatch": true},
			})

			Expect(result.IsValid()).To(BeFalse())
			Expect(result.Controls["email"]).To(BeIdenticalTo(form.Controls["email"]))
		})
	})

	Describe("structure", func() {
		It("should add a control under a fresh name", func() {
			result := reducer.ReduceGroup(form, actions.AddGroupControl{
				GroupID: "signup",
				Name:    "phone",
				Value:   "123",
			})

			Expect(result.Controls).To(HaveLen(4))
			Expect(result.Controls["phone"].GetID()).To(Equal("signup.phone"))
			Expect(result.Controls["phone"].GetValue()).To(Equal("123"))
		})

		It("should no-op when the name is taken", func() {
			result := reducer.ReduceGroup(form, actions.AddGroupControl{
				GroupID: "signup",
				Name:    "email",
				Value:   "x",
			})
			Expect(result).To(BeIdenticalTo(form))
		})

		It("should remove an existing control", func() {
			result := reducer.ReduceGroup(form, actions.RemoveGroupControl{GroupID: "signup", Name: "email"})

			Expect(result.Controls).ToNot(HaveKey("email"))
			Expect(form.Controls).To(HaveKey("email"))
		})

		It("should no-op when removing an absent control", func() {
			result := reducer.ReduceGroup(form, actions.RemoveGroupControl{GroupID: "signup", Name: "phone"})
			Expect(result).To(BeIdenticalTo(form))
		})
	})
})
