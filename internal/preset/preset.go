// Package preset persists the flat five-key field record as JSON and keeps
// saved presets in a directory store.
package preset

import (
	"encoding/json"
	"fmt"

	"github.com/quartopress/coverforge/internal/state"
)

// Marshal encodes fields as a flat JSON object with exactly the five field
// keys.
func Marshal(fields state.Fields) ([]byte, error) {
	return json.MarshalIndent(fields, "", "  ")
}

// Unmarshal decodes a preset. Unknown keys are ignored and missing keys
// leave the corresponding fields unset. Malformed JSON is an error; callers
// must abort the load and keep their current field values.
func Unmarshal(data []byte) (state.Fields, error) {
	var fields state.Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return state.Fields{}, fmt.Errorf("invalid preset data: %w", err)
	}
	return fields, nil
}
