package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/corpus"
)

// CorpusAPI holds the dependencies for the corpus model API handlers.
type CorpusAPI struct {
	app    *App
	logger *slog.Logger
}

// NewCorpusAPI creates a new instance of the CorpusAPI.
func NewCorpusAPI(app *App, logger *slog.Logger) *CorpusAPI {
	return &CorpusAPI{app: app, logger: logger}
}

// RegisterRoutes sets up the routing for all /api/corpus endpoints.
func (c *CorpusAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/corpus/models", c.handleListAndCreateModels)
	mux.HandleFunc("/api/corpus/models/", c.handleModelByName)
	mux.HandleFunc("/api/corpus/import", c.handleImport)
	mux.HandleFunc("/api/corpus/vocabulary/prune", c.handleVocabPrune)
	mux.HandleFunc("/api/corpus/stats", c.handleStats)
}

type CreateModelRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type PruneRequest struct {
	MinFreq int `json:"minFreq"`
}

type PruneResponse struct {
	Removed int64 `json:"removed"`
}

// handleListAndCreateModels handles GET for listing and POST for creating models.
func (c *CorpusAPI) handleListAndCreateModels(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(c.logger, r)
	switch r.Method {
	case http.MethodGet:
		models, err := c.app.store.GetModelInfos(r.Context())
		if err != nil {
			logger.Error("Failed to get model infos", "error", err)
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve models: %v", err))
			return
		}
		modelList := make([]corpus.ModelInfo, 0, len(models))
		for _, model := range models {
			modelList = append(modelList, model)
		}
		slices.SortFunc(modelList, func(a, b corpus.ModelInfo) int { return a.Id - b.Id })
		respondWithJSON(w, http.StatusOK, modelList)

	case http.MethodPost:
		var req CreateModelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
			return
		}
		if req.Name == "" || req.Order <= 0 {
			respondWithError(w, http.StatusBadRequest, "Model name and a positive order are required")
			return
		}
		if _, err := c.app.store.GetModelInfo(r.Context(), req.Name); err == nil {
			respondWithError(w, http.StatusConflict, "Model already exists")
			return
		}

		model, err := c.app.store.InsertModel(r.Context(), corpus.ModelInfo{Name: req.Name, Order: req.Order})
		if err != nil {
			logger.Error("Failed to insert new model", "name", req.Name, "error", err)
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to create model: %v", err))
			return
		}
		respondWithJSON(w, http.StatusCreated, model)

	default:
		w.Header().Set("Allow", "GET, POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleModelByName routes actions for a specific model, e.g., train, prune, export, delete.
func (c *CorpusAPI) handleModelByName(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(c.logger, r)

	path := strings.TrimPrefix(r.URL.Path, "/api/corpus/models/")
	parts := strings.Split(path, "/")
	modelName := parts[0]

	if modelName == "" {
		respondWithError(w, http.StatusBadRequest, "Model name not specified")
		return
	}

	model, err := c.app.store.GetModelInfo(r.Context(), modelName)
	if err != nil {
		if errors.Is(err, corpus.ErrModelNotFound) {
			respondWithError(w, http.StatusNotFound, "Model not found")
			return
		}
		logger.Error("Failed to get model info by name", "name", modelName, "error", err)
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
		return
	}

	if len(parts) == 1 { // Path is just /api/corpus/models/{name}
		switch r.Method {
		case http.MethodGet:
			respondWithJSON(w, http.StatusOK, model)
		case http.MethodDelete:
			if err = c.app.store.RemoveModel(r.Context(), model); err != nil {
				logger.Error("Failed to remove model", "name", modelName, "error", err)
				respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to remove model: %v", err))
				return
			}
			c.app.dropCorpusModel(modelName)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Header().Set("Allow", "GET, DELETE")
			respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
		return
	}

	action := parts[1]
	switch action {
	case "train":
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		if err = c.app.store.Train(r.Context(), model, r.Body); err != nil {
			logger.Error("Failed to train model", "name", modelName, "error", err)
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Training failed: %v", err))
			return
		}
		c.app.reloadCorpusModel(r.Context(), modelName)
		w.WriteHeader(http.StatusAccepted)

	case "prune":
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		var req PruneRequest
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
			return
		}
		removed, err := c.app.store.PruneModel(r.Context(), model, req.MinFreq)
		if err != nil {
			logger.Error("Failed to prune model", "name", modelName, "error", err)
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Pruning failed: %v", err))
			return
		}
		c.app.reloadCorpusModel(r.Context(), modelName)
		respondWithJSON(w, http.StatusOK, PruneResponse{Removed: removed})

	case "export":
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.json\"", modelName))
		if err = c.app.store.ExportModel(r.Context(), model, w); err != nil {
			logger.Error("Failed to export model", "name", modelName, "error", err)
		}

	default:
		respondWithError(w, http.StatusNotFound, "Action not found")
	}
}

// handleImport imports a model from an uploaded JSON file.
func (c *CorpusAPI) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	model, err := c.app.store.ImportModel(r.Context(), r.Body)
	if err != nil {
		requestLogger(c.logger, r).Error("Failed to import model", "error", err)
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Import failed: %v", err))
		return
	}
	c.app.reloadCorpusModel(r.Context(), model.Name)
	respondWithJSON(w, http.StatusCreated, model)
}

// handleVocabPrune performs a global vocabulary prune.
func (c *CorpusAPI) handleVocabPrune(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req PruneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body for minFreq")
		return
	}
	if err := c.app.store.VocabularyPrune(r.Context(), req.MinFreq); err != nil {
		requestLogger(c.logger, r).Error("Failed to prune vocabulary", "error", err)
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Vocabulary prune failed: %v", err))
		return
	}
	c.app.mu.Lock()
	active := c.app.corpusModel
	c.app.mu.Unlock()
	if active != "" {
		c.app.reloadCorpusModel(r.Context(), active)
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleStats reports store-wide and per-model statistics.
func (c *CorpusAPI) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	stats, err := c.app.store.GetStats(r.Context())
	if err != nil {
		requestLogger(c.logger, r).Error("Failed to get corpus stats", "error", err)
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve stats: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
