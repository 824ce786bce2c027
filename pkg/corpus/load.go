package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/markov"
)

// Load reads a stored model into memory. Contexts keep the order in which
// they were first trained, and every transition appears among its context's
// candidates as many times as it was observed.
func (s *Store) Load(ctx context.Context, model ModelInfo) (*markov.Model, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.prefix_text, v.token_text, c.frequency
		FROM corpus_chains c
		JOIN corpus_prefixes p ON p.prefix_id = c.prefix_id
		JOIN corpus_vocabulary v ON v.token_id = c.next_token_id
		WHERE c.model_id = ?
		ORDER BY c.rowid;`, model.Id)
	if err != nil {
		return nil, fmt.Errorf("could not query chains for model %q: %w", model.Name, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	m := markov.NewModel(model.Order)
	var links int
	for rows.Next() {
		var prefix, next string
		var frequency int
		if err = rows.Scan(&prefix, &next, &frequency); err != nil {
			return nil, err
		}
		key := strings.Fields(prefix)
		for range frequency {
			if err = m.Add(key, next); err != nil {
				return nil, fmt.Errorf("model %q is inconsistent: %w", model.Name, err)
			}
		}
		links++
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "Model loaded",
		slog.String("model_name", model.Name),
		slog.Int("contexts", m.Len()),
		slog.Int("links", links),
	)
	return m, nil
}

// LoadByName is GetModelInfo followed by Load.
func (s *Store) LoadByName(ctx context.Context, name string) (*markov.Model, error) {
	info, err := s.GetModelInfo(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, info)
}
