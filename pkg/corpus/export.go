package corpus

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/atomic"
)

// ExportedModel is the serializable form of a model used for import and export.
type ExportedModel struct {
	Name   string          `json:"name"`
	Order  int             `json:"order"`
	Chains []ExportedChain `json:"chains"`
}

// ExportedChain is one context->token link. Chains are listed in training
// order so that an import reproduces the same context order.
type ExportedChain struct {
	Context   string `json:"context"`
	Next      string `json:"next"`
	Frequency int    `json:"frequency"`
}

// ExportModel writes model as indented JSON to w.
func (s *Store) ExportModel(ctx context.Context, modelInfo ModelInfo, w io.Writer) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.prefix_text, v.token_text, c.frequency
		FROM corpus_chains c
		JOIN corpus_prefixes p ON p.prefix_id = c.prefix_id
		JOIN corpus_vocabulary v ON v.token_id = c.next_token_id
		WHERE c.model_id = ?
		ORDER BY c.rowid;`, modelInfo.Id)
	if err != nil {
		return fmt.Errorf("could not query chains for export: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	exported := ExportedModel{
		Name:   modelInfo.Name,
		Order:  modelInfo.Order,
		Chains: []ExportedChain{},
	}
	for rows.Next() {
		var chain ExportedChain
		if err := rows.Scan(&chain.Context, &chain.Next, &chain.Frequency); err != nil {
			return err
		}
		exported.Chains = append(exported.Chains, chain)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Model exported",
		slog.String("model_name", modelInfo.Name),
		slog.Int("model_id", modelInfo.Id),
		slog.Int("chains_exported", len(exported.Chains)),
	)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exported)
}

// ExportModelToFile exports model to path. The file is replaced atomically,
// so a failed export never leaves a truncated file behind.
func (s *Store) ExportModelToFile(ctx context.Context, modelInfo ModelInfo, path string) error {
	var buf bytes.Buffer
	if err := s.ExportModel(ctx, modelInfo, &buf); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// ImportModel reads an exported model from r and merges it into the store.
// When a model with the same name exists its frequencies are added to; the
// orders must match. Otherwise the model is created. The whole import is one
// transaction.
func (s *Store) ImportModel(ctx context.Context, r io.Reader) (ModelInfo, error) {
	var imported ExportedModel
	if err := json.NewDecoder(r).Decode(&imported); err != nil {
		return ModelInfo{}, fmt.Errorf("failed to decode json model: %w", err)
	}
	if imported.Name == "" {
		return ModelInfo{}, errors.New("imported model has no name")
	}
	if imported.Order < 1 {
		return ModelInfo{}, fmt.Errorf("imported model has invalid order %d", imported.Order)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("could not begin transaction for import: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	info := ModelInfo{Name: imported.Name, Order: imported.Order}
	var existingOrder int
	err = tx.QueryRowContext(ctx, "SELECT model_id, model_order FROM corpus_models WHERE model_name = ?", imported.Name).Scan(&info.Id, &existingOrder)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := tx.ExecContext(ctx, "INSERT INTO corpus_models (model_name, model_order) VALUES (?, ?)", imported.Name, imported.Order)
		if err != nil {
			return ModelInfo{}, fmt.Errorf("failed to insert new model '%s': %w", imported.Name, err)
		}
		newID, _ := res.LastInsertId()
		info.Id = int(newID)
	} else if err != nil {
		return ModelInfo{}, fmt.Errorf("failed to query for model '%s': %w", imported.Name, err)
	} else if existingOrder != imported.Order {
		return ModelInfo{}, fmt.Errorf("model '%s' has order %d, import has order %d", imported.Name, existingOrder, imported.Order)
	}

	stmtInsertVocab := tx.StmtContext(ctx, s.stmtInsertVocab)
	stmtGetOrInsertPrefix := tx.StmtContext(ctx, s.stmtGetOrInsertPrefix)
	// Frequencies are added rather than overwritten when merging.
	stmtInsertChain, err := tx.PrepareContext(ctx, `
		INSERT INTO corpus_chains (model_id, prefix_id, next_token_id, frequency) VALUES (?, ?, ?, ?)
		ON CONFLICT(model_id, prefix_id, next_token_id) DO UPDATE SET frequency = frequency + excluded.frequency;
	`)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("failed to prepare chain insert statement: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmtInsertChain)

	for i, chain := range imported.Chains {
		words := strings.Fields(chain.Context)
		if len(words) != imported.Order || chain.Next == "" || chain.Frequency < 1 {
			return ModelInfo{}, fmt.Errorf("import consistency error: chain %d (%q -> %q, frequency %d) does not fit order %d",
				i, chain.Context, chain.Next, chain.Frequency, imported.Order)
		}
		var prefixID, tokenID int
		if err := stmtGetOrInsertPrefix.QueryRowContext(ctx, strings.Join(words, " ")).Scan(&prefixID); err != nil {
			return ModelInfo{}, fmt.Errorf("failed to get/insert prefix '%s': %w", chain.Context, err)
		}
		if err := stmtInsertVocab.QueryRowContext(ctx, chain.Next).Scan(&tokenID); err != nil {
			return ModelInfo{}, fmt.Errorf("failed to get/insert vocab '%s': %w", chain.Next, err)
		}
		if _, err := stmtInsertChain.ExecContext(ctx, info.Id, prefixID, tokenID, chain.Frequency); err != nil {
			return ModelInfo{}, fmt.Errorf("failed to insert chain link (%d -> %d): %w", prefixID, tokenID, err)
		}
	}

	s.logger.InfoContext(ctx, "Model imported successfully",
		slog.String("model_name", imported.Name),
		slog.Int("target_model_id", info.Id),
		slog.Int("chains_merged", len(imported.Chains)),
	)

	if err = tx.Commit(); err != nil {
		return ModelInfo{}, err
	}
	return info, nil
}
