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
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/formstate-io/formstate/internal/reducertest"
	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/reducer"
	"github.com/formstate-io/formstate/pkg/standarderrors"
	"github.com/formstate-io/formstate/pkg/state"
)

var _ = Describe("Root reducer", func() {
	Describe("preconditions", func() {
		It("should fail on uninitialized state", func() {
			_, err := reducer.New().Reduce(nil, foreignAction{target: "x"})
			Expect(err).To(MatchError(standarderrors.ErrUninitializedState))
		})

		It("should fail on values that are not form states, naming the value", func() {
			_, err := reducer.New().Reduce(map[string]any{"not": "a form state"}, foreignAction{target: "x"})

			var notAFormState *standarderrors.NotAFormStateError

			Expect(errors.As(err, &notAFormState)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("not a form state"))
			Expect(err.Error()).To(ContainSubstring("a form state")) // the offending value
		})

		It("should treat typed nil pointers as foreign values", func() {
			_, err := reducer.New().Reduce((*state.ControlState)(nil), foreignAction{target: "x"})
			Expect(standarderrors.IsNotAFormState(err)).To(BeTrue())
		})
	})

	Describe("dispatch", func() {
		var (
			recorder *reducertest.CallRecorder
			root     *reducer.Reducer
		)

		BeforeEach(func() {
			recorder = &reducertest.CallRecorder{}
			root = reducer.New(
				reducer.WithControlReducer(recorder.ControlReducer()),
				reducer.WithGroupReducer(recorder.GroupReducer()),
				reducer.WithArrayReducer(recorder.ArrayReducer()),
			)
		})

		It("should delegate groups to the group sub-reducer only", func() {
			_, err := root.Reduce(state.NewGroupState("g", nil), foreignAction{target: "g"})
			Expect(err).ToNot(HaveOccurred())

			Expect(recorder.GroupCalls).To(HaveLen(1))
			Expect(recorder.TotalCalls()).To(Equal(1))
		})

		It("should delegate arrays to the array sub-reducer only", func() {
			_, err := root.Reduce(state.NewArrayState("a", nil), foreignAction{target: "a"})
			Expect(err).ToNot(HaveOccurred())

			Expect(recorder.ArrayCalls).To(HaveLen(1))
			Expect(recorder.TotalCalls()).To(Equal(1))
		})

		It("should delegate controls to the control sub-reducer only", func() {
			_, err := root.Reduce(state.NewControlState("c", nil), foreignAction{target: "c"})
			Expect(err).ToNot(HaveOccurred())

			Expect(recorder.ControlCalls).To(HaveLen(1))
			Expect(recorder.TotalCalls()).To(Equal(1))
		})

		It("should hand every action down, recognized or not", func() {
			_, err := root.Reduce(state.NewGroupState("g", nil), actions.MarkAsDirty{ControlID: "g"})
			Expect(err).ToNot(HaveOccurred())

			_, err = root.Reduce(state.NewGroupState("g", nil), foreignAction{target: "elsewhere"})
			Expect(err).ToNot(HaveOccurred())

			Expect(recorder.GroupCalls).To(HaveLen(2))
		})
	})

	Describe("identity invariant", func() {
		It("should return the identical reference for unrecognized actions", func() {
			form := signupForm()

			result, err := reducer.New().Reduce(form, foreignAction{target: "signup.email"})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeIdenticalTo(form))
		})

		It("should return the identical reference for actions addressing no node", func() {
			form := signupForm()

			result, err := reducer.New().Reduce(form, actions.SetValue{ControlID: "other.control", Value: "x"})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeIdenticalTo(form))
		})

		It("should return a fresh reference when a descendant changes", func() {
			form := signupForm()

			result, err := reducer.New().Reduce(form, actions.SetValue{ControlID: "signup.address.city", Value: "Paris"})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeIdenticalTo(form))
		})
	})

	Describe("MustReduce", func() {
		It("should panic on precondition failures", func() {
			Expect(func() {
				reducer.New().MustReduce(nil, foreignAction{target: "x"})
			}).To(Panic())
		})

		It("should return the reduced state otherwise", func() {
			form := signupForm()
			result := reducer.New().MustReduce(form, foreignAction{target: "x"})
			Expect(result).To(BeIdenticalTo(form))
		})
	})
})
