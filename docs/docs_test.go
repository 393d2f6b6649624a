package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentIsValidJSON(t *testing.T) {
	raw, err := JSON()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "/api/v1", doc["basePath"])
	assert.Contains(t, doc["paths"], "/orders/open")
}
