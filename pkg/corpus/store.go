package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrModelNotFound is returned when no model with the requested name exists.
var ErrModelNotFound = errors.New("corpus: model not found")

// ModelInfo holds the metadata of a stored model: its ID, unique name and
// chain order.
type ModelInfo struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// Store holds the database connection and prepared statements for model
// storage. All methods are safe for concurrent use.
type Store struct {
	db                    *sql.DB
	stmtGetModelInfo      *sql.Stmt
	stmtGetModels         *sql.Stmt
	stmtAddModel          *sql.Stmt
	stmtPruneModel        *sql.Stmt
	stmtModelChains       *sql.Stmt
	stmtModelFreq         *sql.Stmt
	stmtModelPrefixes     *sql.Stmt
	stmtGetVocabLen       *sql.Stmt
	stmtGetPrefixLen      *sql.Stmt
	stmtInsertVocab       *sql.Stmt
	stmtGetOrInsertPrefix *sql.Stmt
	logger                *slog.Logger
}

// NewStore pre-compiles every statement the Store needs. The schema must
// already exist.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	statements := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&s.stmtGetModelInfo, `SELECT model_id, model_order FROM corpus_models WHERE model_name = ?;`},
		{&s.stmtGetModels, `SELECT model_id, model_name, model_order FROM corpus_models ORDER BY model_id;`},
		{&s.stmtAddModel, `INSERT INTO corpus_models (model_name, model_order) VALUES (?, ?);`},
		{&s.stmtPruneModel, `DELETE FROM corpus_chains WHERE model_id = ? AND frequency <= ?;`},
		{&s.stmtModelChains, `SELECT COUNT(*) FROM corpus_chains WHERE model_id = ?;`},
		{&s.stmtModelFreq, `SELECT coalesce(SUM(frequency), 0) FROM corpus_chains WHERE model_id = ?;`},
		{&s.stmtModelPrefixes, `SELECT COUNT(DISTINCT prefix_id) FROM corpus_chains WHERE model_id = ?;`},
		{&s.stmtGetVocabLen, `SELECT COUNT(*) FROM corpus_vocabulary;`},
		{&s.stmtGetPrefixLen, `SELECT COUNT(*) FROM corpus_prefixes;`},
		{&s.stmtInsertVocab, `INSERT INTO corpus_vocabulary (token_text) VALUES (?) ON CONFLICT(token_text) DO UPDATE SET token_text=excluded.token_text RETURNING token_id;`},
		{&s.stmtGetOrInsertPrefix, `INSERT INTO corpus_prefixes (prefix_text) VALUES (?) ON CONFLICT(prefix_text) DO UPDATE SET prefix_text=excluded.prefix_text RETURNING prefix_id;`},
	}

	for _, st := range statements {
		stmt, err := db.Prepare(st.query)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to prepare statement %q: %w", st.query, err)
		}
		*st.dst = stmt
	}
	return s, nil
}

// Close releases all prepared statements. The database itself is left open.
func (s *Store) Close() {
	for _, stmt := range []*sql.Stmt{
		s.stmtGetModelInfo, s.stmtGetModels, s.stmtAddModel, s.stmtPruneModel,
		s.stmtModelChains, s.stmtModelFreq, s.stmtModelPrefixes, s.stmtGetVocabLen,
		s.stmtGetPrefixLen, s.stmtInsertVocab, s.stmtGetOrInsertPrefix,
	} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// GetModelInfos retrieves metadata for all stored models, keyed by name.
func (s *Store) GetModelInfos(ctx context.Context) (map[string]ModelInfo, error) {
	rows, err := s.stmtGetModels.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	models := make(map[string]ModelInfo)
	for rows.Next() {
		var model ModelInfo
		if err = rows.Scan(&model.Id, &model.Name, &model.Order); err != nil {
			return nil, err
		}
		models[model.Name] = model
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return models, nil
}

// GetModelInfo retrieves the metadata for a single model. It returns an error
// wrapping ErrModelNotFound when the name is unknown.
func (s *Store) GetModelInfo(ctx context.Context, modelName string) (ModelInfo, error) {
	var modelId, modelOrder int
	err := s.stmtGetModelInfo.QueryRowContext(ctx, modelName).Scan(&modelId, &modelOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return ModelInfo{}, fmt.Errorf("%w: %q", ErrModelNotFound, modelName)
	}
	if err != nil {
		return ModelInfo{}, err
	}
	return ModelInfo{
		Id:    modelId,
		Name:  modelName,
		Order: modelOrder,
	}, nil
}

// InsertModel creates a new, empty model and returns its stored metadata.
func (s *Store) InsertModel(ctx context.Context, model ModelInfo) (ModelInfo, error) {
	if model.Name == "" {
		return ModelInfo{}, errors.New("model name must not be empty")
	}
	if model.Order < 1 {
		return ModelInfo{}, fmt.Errorf("model order must be at least 1, got %d", model.Order)
	}
	res, err := s.stmtAddModel.ExecContext(ctx, model.Name, model.Order)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("failed to insert model %q: %w", model.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return ModelInfo{}, err
	}
	model.Id = int(id)
	return model, nil
}

// RemoveModel deletes a model and all of its chain data in one transaction.
func (s *Store) RemoveModel(ctx context.Context, model ModelInfo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.ExecContext(ctx, "DELETE FROM corpus_chains WHERE model_id = ?", model.Id); err != nil {
		return fmt.Errorf("failed to remove chains for model %d: %w", model.Id, err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM corpus_models WHERE model_id = ?", model.Id); err != nil {
		return fmt.Errorf("failed to remove model %d: %w", model.Id, err)
	}

	s.logger.InfoContext(ctx, "Model removed successfully",
		slog.String("model_name", model.Name),
		slog.Int("model_id", model.Id),
	)
	return tx.Commit()
}
