package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// PruneModel removes all chain links of model with a frequency less than or
// equal to minFreq and reports how many were removed.
func (s *Store) PruneModel(ctx context.Context, model ModelInfo, minFreq int) (int64, error) {
	res, err := s.stmtPruneModel.ExecContext(ctx, model.Id, minFreq)
	if err != nil {
		return 0, fmt.Errorf("could not prune model %d: %w", model.Id, err)
	}
	rowsAffected, _ := res.RowsAffected()

	s.logger.InfoContext(ctx, "Model pruned",
		slog.String("model_name", model.Name),
		slog.Int("model_id", model.Id),
		slog.Int("min_frequency", minFreq),
		slog.Int64("chains_removed", rowsAffected),
	)
	return rowsAffected, nil
}

// VocabularyPrune removes tokens that are observed fewer than minFrequency
// times across all models, together with every chain link and prefix that
// uses them. Vocabulary and prefixes no longer referenced by any chain are
// removed as well.
func (s *Store) VocabularyPrune(ctx context.Context, minFrequency int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction for pruning: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	rows, err := tx.QueryContext(ctx, `
		SELECT v.token_id, v.token_text FROM corpus_chains c
		JOIN corpus_vocabulary v ON v.token_id = c.next_token_id
		GROUP BY v.token_id HAVING SUM(c.frequency) < ?`, minFrequency)
	if err != nil {
		return fmt.Errorf("failed to query for rare tokens: %w", err)
	}

	var rareTokenIDs []any
	rareTokens := make(map[string]struct{})
	for rows.Next() {
		var id int
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			_ = rows.Close()
			return fmt.Errorf("failed to scan rare token: %w", err)
		}
		rareTokenIDs = append(rareTokenIDs, id)
		rareTokens[text] = struct{}{}
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error after iterating rare token rows: %w", err)
	}

	var affectedPrefixIDs []any
	if len(rareTokens) > 0 {
		pRows, err := tx.QueryContext(ctx, `SELECT prefix_id, prefix_text FROM corpus_prefixes`)
		if err != nil {
			return fmt.Errorf("failed to query all prefixes for checking: %w", err)
		}
		for pRows.Next() {
			var prefixID int
			var prefixText string
			if err := pRows.Scan(&prefixID, &prefixText); err != nil {
				_ = pRows.Close()
				return fmt.Errorf("failed to scan prefix row: %w", err)
			}
			for _, word := range strings.Fields(prefixText) {
				if _, isRare := rareTokens[word]; isRare {
					affectedPrefixIDs = append(affectedPrefixIDs, prefixID)
					break
				}
			}
		}
		_ = pRows.Close()
		if err := pRows.Err(); err != nil {
			return fmt.Errorf("error after iterating prefix rows: %w", err)
		}
	}

	// chains -> prefixes -> vocabulary
	if err := batchDelete(ctx, tx, "corpus_chains", "next_token_id", rareTokenIDs); err != nil {
		return fmt.Errorf("failed to prune chains by next_token_id: %w", err)
	}
	if err := batchDelete(ctx, tx, "corpus_chains", "prefix_id", affectedPrefixIDs); err != nil {
		return fmt.Errorf("failed to prune chains by prefix_id: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM corpus_prefixes WHERE prefix_id NOT IN (SELECT prefix_id FROM corpus_chains)`); err != nil {
		return fmt.Errorf("failed to prune unused prefixes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM corpus_vocabulary WHERE token_id NOT IN (SELECT next_token_id FROM corpus_chains)`); err != nil {
		return fmt.Errorf("failed to prune unused vocabulary: %w", err)
	}

	s.logger.InfoContext(ctx, "Vocabulary pruned successfully",
		slog.Int("min_frequency", minFrequency),
		slog.Int("tokens_removed", len(rareTokenIDs)),
		slog.Int("prefixes_affected", len(affectedPrefixIDs)),
	)

	return tx.Commit()
}

// batchDelete deletes rows whose column is in ids, splitting large lists to
// stay under SQLite's variable limit.
func batchDelete(ctx context.Context, tx *sql.Tx, table, column string, ids []any) error {
	// SQLite's default variable limit is 999, so around half that is good
	const batchSize = 500

	for i := 0; i < len(ids); i += batchSize {
		end := min(i+batchSize, len(ids))
		batch := ids[i:end]

		query := fmt.Sprintf("DELETE FROM %s WHERE %s IN (?%s)", table, column, strings.Repeat(",?", len(batch)-1))
		if _, err := tx.ExecContext(ctx, query, batch...); err != nil {
			return err
		}
	}
	return nil
}
