//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form and applies muts, so
// tests can drop or corrupt single fields of an otherwise valid body.
func DtoMap(t *testing.T, dto any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, mut := range muts {
		mut(body)
	}
	return body
}
