package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type contextKey string

const contextKeyRequestID = contextKey("request_id")

// shutdownTimeout bounds how long in-flight requests may run after a stop signal.
const shutdownTimeout = 10 * time.Second

// Server routes the HTTP API to the engine and the corpus store.
type Server struct {
	app       *App
	logger    *slog.Logger
	poemAPI   *PoemAPI
	corpusAPI *CorpusAPI
	mux       *http.ServeMux
}

// NewServer registers every API route for app.
func NewServer(app *App, logger *slog.Logger) *Server {
	server := &Server{
		app:       app,
		logger:    logger,
		poemAPI:   NewPoemAPI(app, logger),
		corpusAPI: NewCorpusAPI(app, logger),
		mux:       http.NewServeMux(),
	}
	server.poemAPI.RegisterRoutes(server.mux)
	server.corpusAPI.RegisterRoutes(server.mux)
	return server
}

// Handler returns the API with request IDs attached.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.mux)
}

// withRequestID tags every request with an ID, reusing a valid incoming
// X-Request-ID, and echoes it in the response.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, id)
		s.logger.Debug("Request received", "request_id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger returns logger annotated with the request's ID.
func requestLogger(logger *slog.Logger, r *http.Request) *slog.Logger {
	if id, ok := r.Context().Value(contextKeyRequestID).(string); ok {
		return logger.With("request_id", id)
	}
	return logger
}

// Serve runs the server on ln until ctx is cancelled, then shuts it down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Starting verseseed server", "address", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info("HTTP server stopped.")
	return nil
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Error("Failed to encode JSON response", "error", err)
		}
	}
}
