package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/render"
	"github.com/CTAG07/Verseseed/pkg/verse"
)

// maxRequestBody caps the JSON bodies of generation requests.
const maxRequestBody = 1 << 20

// PoemAPI holds the dependencies for the generation endpoints.
type PoemAPI struct {
	app    *App
	logger *slog.Logger
}

// VersionInfo defines the structure for build/version information.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// HealthResponse is returned by /api/health.
type HealthResponse struct {
	Status      string      `json:"status"`
	CorpusModel string      `json:"corpus_model,omitempty"`
	Build       VersionInfo `json:"build"`
}

type GeneratePoemRequest struct {
	Word string `json:"word"`
}

type GenerateChainRequest struct {
	Seed string `json:"seed"`
}

type GenerateRequest struct {
	Seed     string `json:"seed"`
	Strategy string `json:"strategy"`
}

// PoemResponse is the envelope every generation endpoint answers with.
type PoemResponse struct {
	Success     bool     `json:"success"`
	Poem        []string `json:"poem"`
	Message     string   `json:"message,omitempty"`
	InputWord   string   `json:"inputWord"`
	Strategy    string   `json:"strategy"`
	Highlighted []string `json:"highlighted,omitempty"`
}

// NewPoemAPI creates a new instance of the PoemAPI.
func NewPoemAPI(app *App, logger *slog.Logger) *PoemAPI {
	return &PoemAPI{app: app, logger: logger}
}

// RegisterRoutes sets up the routing for the generation endpoints.
func (a *PoemAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", a.handleHealthCheck)
	mux.HandleFunc("/api/generate-poem", a.handleGeneratePoem)
	mux.HandleFunc("/api/generate-chain", a.handleGenerateChain)
	mux.HandleFunc("/api/generate", a.handleGenerate)
}

func (a *PoemAPI) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	a.app.mu.Lock()
	model := a.app.corpusModel
	a.app.mu.Unlock()
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		CorpusModel: model,
		Build:       VersionInfo{Version: Version, Commit: Commit, BuildDate: BuildDate},
	})
}

// handleGeneratePoem composes a rhyming quatrain from a single word.
func (a *PoemAPI) handleGeneratePoem(w http.ResponseWriter, r *http.Request) {
	var req GeneratePoemRequest
	if !decodePost(w, r, &req) {
		return
	}
	a.respondWithPoem(w, r, verse.ThematicTemplate, req.Word)
}

// handleGenerateChain builds a poem from free seed text.
func (a *PoemAPI) handleGenerateChain(w http.ResponseWriter, r *http.Request) {
	var req GenerateChainRequest
	if !decodePost(w, r, &req) {
		return
	}
	a.respondWithPoem(w, r, verse.NGramChain, req.Seed)
}

// handleGenerate runs any strategy by name.
func (a *PoemAPI) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decodePost(w, r, &req) {
		return
	}
	strategy, err := verse.ParseStrategy(req.Strategy)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, PoemResponse{
			Poem:      []string{},
			Message:   verse.MsgUnknownStrategy,
			InputWord: req.Seed,
			Strategy:  req.Strategy,
		})
		return
	}
	a.respondWithPoem(w, r, strategy, req.Seed)
}

func (a *PoemAPI) respondWithPoem(w http.ResponseWriter, r *http.Request, strategy verse.Strategy, seed string) {
	logger := requestLogger(a.logger, r)
	wordBased := strategy != verse.NGramChain
	if wordBased {
		seed = capWord(strings.TrimSpace(seed), a.app.config.Engine.MaxSeedWordLength)
	}

	poem, err := a.app.engine.Generate(r.Context(), strategy, seed)
	if err != nil {
		if errors.Is(err, verse.ErrTransport) {
			logger.Warn("Remote generation failed", "error", err)
			respondWithError(w, http.StatusBadGateway, "Remote generator unavailable")
			return
		}
		logger.Error("Generation failed", "strategy", strategy, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Generation failed")
		return
	}

	resp := PoemResponse{InputWord: seed, Strategy: string(strategy)}
	if msg, ok := poem.Diagnostic(); ok {
		logger.Info("Poem refused", "strategy", strategy, "reason", msg)
		resp.Poem = []string{}
		resp.Message = msg
		respondWithJSON(w, http.StatusBadRequest, resp)
		return
	}

	resp.Success = true
	resp.Poem = poem
	if wordBased {
		resp.Highlighted = render.HighlightAll(poem, seed)
	}
	logger.Info("Poem generated", "strategy", strategy, "lines", len(poem))
	respondWithJSON(w, http.StatusOK, resp)
}

// decodePost checks the method and decodes a JSON body into dst. It writes
// the error response itself and reports whether the handler may continue.
func decodePost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
		return false
	}
	return true
}

// capWord cuts word to at most n runes.
func capWord(word string, n int) string {
	if n <= 0 {
		return word
	}
	runes := []rune(word)
	if len(runes) <= n {
		return word
	}
	return string(runes[:n])
}
