package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CTAG07/Verseseed/pkg/corpus"
	"github.com/CTAG07/Verseseed/pkg/verse"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainSeed = `Soft rain falls upon the quiet hills while distant rivers sing of
morning light and gentle winds carry the scent of blooming flowers across
the valley where children play beneath the ancient oak trees`

// do sends a request straight to the server's handler.
func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodePoem(t *testing.T, rec *httptest.ResponseRecorder) PoemResponse {
	t.Helper()
	var resp PoemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func newTestServer(t *testing.T, config *Config) (*Server, *App) {
	t.Helper()
	app := setupTestApp(t, config)
	return NewServer(app, app.logger), app
}

func TestGeneratePoemEndpoint(t *testing.T) {
	s, _ := newTestServer(t, nil)

	t.Run("Rhyming quatrain", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/generate-poem", `{"word": "moon"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodePoem(t, rec)
		assert.True(t, resp.Success)
		assert.Len(t, resp.Poem, 4)
		assert.Len(t, resp.Highlighted, 4)
		assert.Equal(t, "moon", resp.InputWord)
		assert.Equal(t, string(verse.ThematicTemplate), resp.Strategy)
		assert.Empty(t, resp.Message)
	})

	t.Run("Short word is a diagnostic", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/generate-poem", `{"word": "ab"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"poem":[]`)
		resp := decodePoem(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, verse.MsgLongerWord, resp.Message)
		assert.NotNil(t, resp.Poem)
		assert.Empty(t, resp.Poem)
	})

	t.Run("Long word is cut before generation", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/generate-poem", `{"word": "`+strings.Repeat("a", 45)+`"}`)
		resp := decodePoem(t, rec)
		assert.Equal(t, strings.Repeat("a", 30), resp.InputWord)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/generate-poem", `{"word":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/generate-poem", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "POST", rec.Header().Get("Allow"))
	})
}

func TestGenerateChainEndpoint(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodPost, "/api/generate-chain", `{"seed": "too short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide more seed text (at least 20 characters)", decodePoem(t, rec).Message)

	body, err := json.Marshal(GenerateChainRequest{Seed: chainSeed})
	require.NoError(t, err)
	rec = do(t, s, http.MethodPost, "/api/generate-chain", string(body))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodePoem(t, rec)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Poem, 4)
	assert.Empty(t, resp.Highlighted, "seed text is not highlighted")
}

func TestGenerateEndpointStrategies(t *testing.T) {
	s, _ := newTestServer(t, nil)

	testCases := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{"Unknown strategy", `{"seed": "moon", "strategy": "sonnet"}`, http.StatusBadRequest, verse.MsgUnknownStrategy},
		{"Corpus without a model", `{"seed": "moon", "strategy": "corpus-chain"}`, http.StatusBadRequest, verse.MsgNoCorpusModel},
		{"Thematic by name", `{"seed": "moon", "strategy": "Thematic-Word"}`, http.StatusOK, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/generate", tc.body)
			require.Equal(t, tc.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), `"poem":[`)
			assert.Equal(t, tc.wantMsg, decodePoem(t, rec).Message)
		})
	}

	t.Run("Remote without delegate", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/generate", `{"seed": "moon", "strategy": "remote"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", id)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var health HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, Version, health.Build.Version)

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, s, http.MethodPost, "/api/health", "").Code)
}

func TestCorpusEndpoints(t *testing.T) {
	s, app := newTestServer(t, nil)

	rec := do(t, s, http.MethodPost, "/api/corpus/models", `{"name": "verse", "order": 1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created corpus.ModelInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "verse", created.Name)
	assert.Equal(t, 1, created.Order)

	assert.Equal(t, http.StatusConflict, do(t, s, http.MethodPost, "/api/corpus/models", `{"name": "verse", "order": 1}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/api/corpus/models", `{"name": "", "order": 1}`).Code)

	rec = do(t, s, http.MethodPost, "/api/corpus/models/verse/train", cyclicCorpus)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/corpus/models", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var models []corpus.ModelInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&models))
	assert.Equal(t, []corpus.ModelInfo{created}, models)

	rec = do(t, s, http.MethodGet, "/api/corpus/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats corpus.DBStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Positive(t, stats.Stats[created.Id].TotalChains)

	rec = do(t, s, http.MethodGet, "/api/corpus/models/verse/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	exported := rec.Body.String()
	var snapshot corpus.ExportedModel
	require.NoError(t, json.Unmarshal([]byte(exported), &snapshot))
	assert.Equal(t, "verse", snapshot.Name)
	assert.NotEmpty(t, snapshot.Chains)

	// Importing the snapshot again doubles every frequency.
	rec = do(t, s, http.MethodPost, "/api/corpus/import", exported)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/api/corpus/import", `{"name": ""}`).Code)

	require.NoError(t, app.UseCorpusModel(context.Background(), "verse"))
	rec = do(t, s, http.MethodPost, "/api/generate", `{"seed": "moon", "strategy": "corpus-chain"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodePoem(t, rec)
	assert.Len(t, resp.Poem, 4)
	assert.Len(t, resp.Highlighted, 4)

	rec = do(t, s, http.MethodPost, "/api/corpus/models/verse/prune", `{"minFreq": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var pruned PruneResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&pruned))
	assert.Zero(t, pruned.Removed, "every chain was imported twice")

	assert.Equal(t, http.StatusNoContent, do(t, s, http.MethodPost, "/api/corpus/vocabulary/prune", `{"minFreq": 0}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/api/corpus/models/verse/unknown", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, s, http.MethodGet, "/api/corpus/models/verse/train", "").Code)

	rec = do(t, s, http.MethodDelete, "/api/corpus/models/verse", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, app.engine.CorpusModel(), "deleting the active model detaches it")
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/corpus/models/verse", "").Code)
}

func TestRemoteStrategyThroughServer(t *testing.T) {
	remote, _ := newTestServer(t, nil)
	ts := httptest.NewServer(remote.Handler())
	defer ts.Close()

	config := testConfig(t)
	config.Server.RemoteURL = ts.URL + "/api/generate-poem"
	s, _ := newTestServer(t, config)

	rec := do(t, s, http.MethodPost, "/api/generate", `{"seed": "moon", "strategy": "remote"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodePoem(t, rec).Poem, 4)

	rec = do(t, s, http.MethodPost, "/api/generate", `{"seed": "ab", "strategy": "remote"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, verse.MsgLongerWord, decodePoem(t, rec).Message)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	transport := &http.Transport{}
	defer transport.CloseIdleConnections()
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	resp, err := client.Get("http://" + ln.Addr().String() + "/api/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
