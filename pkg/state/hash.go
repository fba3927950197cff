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

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hash computes a content fingerprint of a form state tree. Two trees with
// equal content hash equally regardless of node identity, so the fingerprint
// is a diagnostic aid (change logs, snapshot comparison in tests), not a
// substitute for the reference-identity change signal.
func Hash(s FormState) (uint64, error) {
	data, err := MarshalState(s)
	if err != nil {
		return 0, fmt.Errorf("failed to fingerprint form state: %w", err)
	}

	return xxhash.Sum64(data), nil
}
