package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key")
	client.BaseURL = server.URL
	return client
}

func TestGenerateProductDescription(t *testing.T) {
	var gotPath string
	var gotBody generateRequest

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": "  Crisp sound, all day battery.  "}},
				}},
			},
		})
	})

	description, err := client.GenerateProductDescription(context.Background(),
		"Wireless Earbuds", []string{"bluetooth", "noise cancelling"}, "en")
	require.NoError(t, err)

	assert.Equal(t, "Crisp sound, all day battery.", description)
	assert.Equal(t, "/models/"+textModel+":generateContent", gotPath)
	require.Len(t, gotBody.Contents, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "Wireless Earbuds")
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "bluetooth")
}

func TestGenerateImageReturnsDataURL(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"inlineData": map[string]string{"mimeType": "image/png", "data": "aGVsbG8="}},
					},
				}},
			},
		})
	})

	image, err := client.GenerateImage(context.Background(), "a smart watch on a desk")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", image)
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": 400, "message": "API key not valid"},
		})
	})

	_, err := client.GenerateInsights(context.Background(), "Monthly report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestMissingKeyDisablesClient(t *testing.T) {
	client := NewClient("")

	assert.False(t, client.Enabled())
	_, err := client.GenerateInsights(context.Background(), "Monthly report")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
