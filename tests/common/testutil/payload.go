//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// PayloadMutation edits a request body after it has been flattened to JSON fields.
type PayloadMutation func(m map[string]any)

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) PayloadMutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// DtoMap round-trips v through JSON so tests can drop or corrupt fields
// the typed request struct would otherwise always send.
func DtoMap(t *testing.T, v any, muts ...PayloadMutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}
