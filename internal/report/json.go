package report

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON serializes a result (or any presentation payload) to compact
// JSON.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return data, nil
}

// MarshalJSONIndent serializes to indented JSON for terminal output.
func MarshalJSONIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return data, nil
}
