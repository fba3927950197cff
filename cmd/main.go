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

// The formstate demo runner: loads a YAML form definition, then reads one
// JSON-encoded action per stdin line and dispatches it through the reducer
// pipeline, logging every transition. The final state is printed as JSON
// on exit.
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/formstate-io/formstate/pkg/actions"
	"github.com/formstate-io/formstate/pkg/config"
	"github.com/formstate-io/formstate/pkg/logger"
	"github.com/formstate-io/formstate/pkg/metrics"
	"github.com/formstate-io/formstate/pkg/reducer"
	"github.com/formstate-io/formstate/pkg/state"
	"github.com/formstate-io/formstate/pkg/update"
)

func main() {
	logger.Initialize()

	log := logger.For(logger.ComponentDemo)

	definitionPath := "form.yaml"
	if len(os.Args) > 1 {
		definitionPath = os.Args[1]
	}

	data, err := os.ReadFile(definitionPath)
	if err != nil {
		log.Errorf("Failed to read form definition %s: %v", definitionPath, err)
		os.Exit(1)
	}

	def, err := config.ParseFormDefinition(data)
	if err != nil {
		log.Errorf("Invalid form definition: %v", err)
		os.Exit(1)
	}

	current, err := def.BuildInitialState()
	if err != nil {
		log.Errorf("Failed to build initial state: %v", err)
		os.Exit(1)
	}

	log.Infof("Loaded form %s", def.ID)

	// Expose metrics when the host asks for them
	if addr := os.Getenv("FORMSTATE_METRICS_ADDR"); addr != "" {
		go serveMetrics(addr)
		log.Infof("Serving metrics on %s", addr)
	}

	root := reducer.New()
	pipeline := update.NewReducerWith(root.Reduce, requiredValidation)

	// apply initial cross-field validation once; the pipeline only runs
	// update functions after a state change
	current = requiredValidation(current)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dispatchID := uuid.New().String()

		action, err := actions.Decode([]byte(line))
		if err != nil {
			log.Warnw("Skipping undecodable action", "dispatchId", dispatchID, "error", err)

			continue
		}

		start := time.Now()

		next, err := pipeline(current, action)
		if err != nil {
			log.Errorw("Reduction failed", "dispatchId", dispatchID, "error", err)
			os.Exit(1)
		}

		changed := next != current
		current = next

		fingerprint, hashErr := state.Hash(current)
		if hashErr != nil {
			log.Warnw("Failed to fingerprint state", "dispatchId", dispatchID, "error", hashErr)
		}

		log.Infow("Dispatched action",
			"dispatchId", dispatchID,
			"actionType", action.ActionType(),
			"targetId", action.TargetID(),
			"changed", changed,
			"valid", current.IsValid(),
			"fingerprint", fmt.Sprintf("%016x", fingerprint),
			"took", time.Since(start))
	}

	if err := scanner.Err(); err != nil {
		log.Errorf("Failed to read actions: %v", err)
		os.Exit(1)
	}

	out, err := state.MarshalState(current)
	if err != nil {
		log.Errorf("Failed to encode final state: %v", err)
		os.Exit(1)
	}

	fmt.Println(string(out))

	_ = logger.Sync()
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	server := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 5 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		logger.For(logger.ComponentDemo).Warnf("Metrics server stopped: %v", err)
	}
}

// requiredValidation is the demo's cross-field update function: controls
// whose definition carries the user-defined property "required" get a
// "required" validation error while their value is empty. Untouched
// subtrees keep their references.
func requiredValidation(s state.FormState) state.FormState {
	switch node := s.(type) {
	case *state.ControlState:
		required, _ := node.UserDefinedProperties["required"].(bool)
		missing := required && isEmptyValue(node.Value)
		_, flagged := node.Errors["required"]

		if missing == flagged {
			return node
		}

		clone := node.Clone()
		if missing {
			if clone.Errors == nil {
				clone.Errors = state.ValidationErrors{}
			}

			clone.Errors["required"] = true
		} else {
			delete(clone.Errors, "required")
		}

		return clone
	case *state.GroupState:
		var controls map[string]state.FormState

		for name, child := range node.Controls {
			next := requiredValidation(child)
			if next == child {
				continue
			}

			if controls == nil {
				controls = make(map[string]state.FormState, len(node.Controls))
				for n, c := range node.Controls {
					controls[n] = c
				}
			}

			controls[name] = next
		}

		if controls == nil {
			return node
		}

		return &state.GroupState{
			ID:        node.ID,
			Controls:  controls,
			Errors:    node.Errors,
			Submitted: node.Submitted,
		}
	case *state.ArrayState:
		var controls []state.FormState

		for i, child := range node.Controls {
			next := requiredValidation(child)
			if next == child {
				continue
			}

			if controls == nil {
				controls = make([]state.FormState, len(node.Controls))
				copy(controls, node.Controls)
			}

			controls[i] = next
		}

		if controls == nil {
			return node
		}

		return &state.ArrayState{
			ID:        node.ID,
			Controls:  controls,
			Errors:    node.Errors,
			Submitted: node.Submitted,
		}
	default:
		return s
	}
}

func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	case map[string]any:
		return len(value) == 0
	default:
		return false
	}
}
