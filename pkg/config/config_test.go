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

package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/formstate-io/formstate/pkg/config"
	"github.com/formstate-io/formstate/pkg/state"
)

const signupYAML = `
id: signup
fields:
  - name: email
    initial: ""
    properties:
      required: true
  - name: address
    kind: group
    fields:
      - name: city
        initial: Berlin
  - name: tags
    kind: array
    items:
      - initial: go
      - initial: forms
`

var _ = Describe("Form definitions", func() {
	Describe("ParseFormDefinition", func() {
		It("should parse a full definition", func() {
			def, err := config.ParseFormDefinition([]byte(signupYAML))
			Expect(err).ToNot(HaveOccurred())

			Expect(def.ID).To(Equal("signup"))
			Expect(def.Fields).To(HaveLen(3))
			Expect(def.Fields[0].Properties).To(HaveKeyWithValue("required", true))
			Expect(def.Fields[1].Kind).To(Equal(config.FieldKindGroup))
			Expect(def.Fields[2].Items).To(HaveLen(2))
		})

		It("should reject a definition without an id", func() {
			_, err := config.ParseFormDefinition([]byte("fields:\n  - name: a\n"))
			Expect(err).To(MatchError(ContainSubstring("must have an id")))
		})

		It("should reject a definition without fields", func() {
			_, err := config.ParseFormDefinition([]byte("id: empty\n"))
			Expect(err).To(MatchError(ContainSubstring("at least one field")))
		})

		It("should reject unnamed fields", func() {
			_, err := config.ParseFormDefinition([]byte("id: f\nfields:\n  - initial: 1\n"))
			Expect(err).To(MatchError(ContainSubstring("must have a name")))
		})

		It("should reject control fields with children", func() {
			_, err := config.ParseFormDefinition([]byte(`
id: f
fields:
  - name: a
    fields:
      - name: b
`))
			Expect(err).To(MatchError(ContainSubstring("cannot have children")))
		})

		It("should reject empty groups and unknown kinds", func() {
			_, err := config.ParseFormDefinition([]byte("id: f\nfields:\n  - name: g\n    kind: group\n"))
			Expect(err).To(MatchError(ContainSubstring("must have fields")))

			_, err = config.ParseFormDefinition([]byte("id: f\nfields:\n  - name: x\n    kind: tuple\n"))
			Expect(err).To(MatchError(ContainSubstring("unknown kind")))
		})

		It("should not require names on array items", func() {
			def, err := config.ParseFormDefinition([]byte(signupYAML))
			Expect(err).ToNot(HaveOccurred())
			Expect(def.Fields[2].Items[0].Name).To(BeEmpty())
		})

		It("should fail on malformed YAML", func() {
			_, err := config.ParseFormDefinition([]byte("id: [unclosed"))
			Expect(err).To(MatchError(ContainSubstring("failed to parse")))
		})
	})

	Describe("Clone", func() {
		It("should produce an independent copy", func() {
			def, err := config.ParseFormDefinition([]byte(signupYAML))
			Expect(err).ToNot(HaveOccurred())

			clone := def.Clone()
			clone.Fields[0].Properties["required"] = false
			clone.Fields[1].Fields[0].Initial = "Hamburg"

			Expect(def.Fields[0].Properties).To(HaveKeyWithValue("required", true))
			Expect(def.Fields[1].Fields[0].Initial).To(Equal("Berlin"))
		})
	})

	Describe("BuildInitialState", func() {
		var root *state.GroupState

		BeforeEach(func() {
			def, err := config.ParseFormDefinition([]byte(signupYAML))
			Expect(err).ToNot(HaveOccurred())

			built, err := def.BuildInitialState()
			Expect(err).ToNot(HaveOccurred())

			root = built.(*state.GroupState)
		})

		It("should build the tree with dot-separated IDs", func() {
			Expect(root.GetID()).To(Equal("signup"))
			Expect(root.FieldNames()).To(Equal([]string{"address", "email", "tags"}))

			address := root.Controls["address"].(*state.GroupState)
			Expect(address.GetID()).To(Equal("signup.address"))
			Expect(address.Controls["city"].GetID()).To(Equal("signup.address.city"))
			Expect(address.Controls["city"].GetValue()).To(Equal("Berlin"))

			tags := root.Controls["tags"].(*state.ArrayState)
			Expect(tags.GetID()).To(Equal("signup.tags"))
			Expect(tags.Controls).To(HaveLen(2))
			Expect(tags.Controls[1].GetID()).To(Equal("signup.tags.1"))
			Expect(tags.Controls[1].GetValue()).To(Equal("forms"))
		})

		It("should start pristine, untouched and valid", func() {
			Expect(root.IsDirty()).To(BeFalse())
			Expect(root.IsTouched()).To(BeFalse())
			Expect(root.IsValid()).To(BeTrue())
			Expect(root.IsSubmitted()).To(BeFalse())
		})

		It("should carry field properties onto the controls", func() {
			email := root.Controls["email"].(*state.ControlState)
			Expect(email.UserDefinedProperties).To(HaveKeyWithValue("required", true))
		})

		It("should detach control values from the definition", func() {
			def, err := config.ParseFormDefinition([]byte(`
id: prefs
fields:
  - name: flags
    initial:
      beta: true
`))
			Expect(err).ToNot(HaveOccurred())

			built, err := def.BuildInitialState()
			Expect(err).ToNot(HaveOccurred())

			flags := built.(*state.GroupState).Controls["flags"].GetValue().(map[string]any)
			flags["beta"] = false

			Expect(def.Fields[0].Initial).To(HaveKeyWithValue("beta", true))
		})
	})
})
