//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Null sets a field to JSON null instead of removing it.
var Null = &struct{}{}

// DtoMap turns a request DTO into a mutable map for building invalid payloads.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
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

// Field deletes key when value is nil and writes JSON null when value is Null.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		switch {
		case value == nil:
			delete(m, key)
		case value == Null:
			m[key] = nil
		default:
			m[key] = value
		}
	}
}
