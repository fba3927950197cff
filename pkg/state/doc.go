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

// Package state defines the immutable form state tree: the FormState union
// over control, group and array nodes, the variant classifier, deep
// copying, JSON/YAML encoding and content fingerprinting.
//
// Nodes are never mutated in place. Reducers replace changed nodes
// wholesale and return the identical pointer when nothing changed; that
// reference identity is the change signal the rest of the module builds on.
package state
