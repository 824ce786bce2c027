package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDelegate(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    any
		want    []string
		wantErr bool
	}{
		{"Poem", http.StatusOK, PoemResponse{Success: true, Poem: []string{"a,", "b;", "c,", "d."}}, []string{"a,", "b;", "c,", "d."}, false},
		{"Diagnostic", http.StatusBadRequest, PoemResponse{Message: "Please provide a longer word"}, []string{"Please provide a longer word"}, false},
		{"Refusal without message", http.StatusBadRequest, PoemResponse{}, nil, true},
		{"Server error", http.StatusInternalServerError, map[string]string{"error": "boom"}, nil, true},
		{"Malformed body", http.StatusOK, "not an envelope", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got GeneratePoemRequest
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				respondWithJSON(w, tc.status, tc.body)
			}))
			defer ts.Close()

			lines, err := NewHTTPDelegate(ts.URL, ts.Client()).Generate(context.Background(), "moon")
			assert.Equal(t, "moon", got.Word)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, lines)
		})
	}
}

func TestHTTPDelegateUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewHTTPDelegate(url, nil).Generate(context.Background(), "moon")
	assert.Error(t, err)
}
