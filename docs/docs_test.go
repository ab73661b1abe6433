package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath string `json:"basePath"`
		Paths    map[string]map[string]struct {
			Summary string `json:"summary"`
		} `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)
	summaries := map[string]string{
		"get /events":                          "List events",
		"post /events":                         "Create an event",
		"get /events/{eventID}":                "Get an event with its creator",
		"get /events/{eventID}/rsvps":          "List RSVPs of an event",
		"post /events/{eventID}/rsvps":         "Create or update the current user's RSVP",
		"put /events/{eventID}/rsvps/{rsvpID}": "Update an RSVP by id",
	}
	for key, want := range summaries {
		method, path, _ := strings.Cut(key, " ")
		op, ok := doc.Paths[path][method]
		require.True(t, ok, key)
		assert.Equal(t, want, op.Summary, key)
	}
	assert.Contains(t, doc.Definitions, "controllers.EventDetailSuccessResponse")
	assert.Contains(t, doc.Definitions, "controllers.EventDetail")
}
