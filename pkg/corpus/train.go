package corpus

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/markov"
)

// chainLink is a buffered transition waiting to be written.
type chainLink struct {
	prefixID    int
	nextTokenID int
}

// Train reads plain text from data and adds its transitions to model.
// Blank lines separate documents; no transition crosses a document boundary.
// The whole run is one transaction.
func (s *Store) Train(ctx context.Context, model ModelInfo, data io.Reader) error {
	// chainBatchSize determines how many chain links are buffered before being written.
	const chainBatchSize = 1000
	// maxDocumentTokens bounds memory for a single document.
	const maxDocumentTokens = 1 << 16

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	stmtInsertVocab := tx.StmtContext(ctx, s.stmtInsertVocab)
	stmtGetOrInsertPrefix := tx.StmtContext(ctx, s.stmtGetOrInsertPrefix)
	stmtInsertChain, err := tx.PrepareContext(ctx, `INSERT INTO corpus_chains (model_id, prefix_id, next_token_id, frequency) VALUES (?, ?, ?, 1) ON CONFLICT(model_id, prefix_id, next_token_id) DO UPDATE SET frequency = frequency + 1;`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch chain insert statement: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmtInsertChain)

	vocabCache := make(map[string]int)
	prefixCache := make(map[string]int)
	chainBatch := make([]chainLink, 0, chainBatchSize)

	commitChainBatch := func() error {
		for _, link := range chainBatch {
			if _, err := stmtInsertChain.ExecContext(ctx, model.Id, link.prefixID, link.nextTokenID); err != nil {
				return fmt.Errorf("failed during batch insert of chain link (%d -> %d): %w", link.prefixID, link.nextTokenID, err)
			}
		}
		chainBatch = chainBatch[:0]
		return nil
	}

	lookup := func(stmt *sql.Stmt, cache map[string]int, text string) (int, error) {
		if id, ok := cache[text]; ok {
			return id, nil
		}
		var id int
		if err := stmt.QueryRowContext(ctx, text).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to get or insert %q: %w", text, err)
		}
		cache[text] = id
		return id, nil
	}

	var documentCount, linkCount int64
	processDocument := func(tokens []string) error {
		if len(tokens) <= model.Order {
			return nil
		}
		for i := 0; i+model.Order < len(tokens); i++ {
			prefixID, err := lookup(stmtGetOrInsertPrefix, prefixCache, markov.ContextKey(tokens[i:i+model.Order]))
			if err != nil {
				return err
			}
			tokenID, err := lookup(stmtInsertVocab, vocabCache, tokens[i+model.Order])
			if err != nil {
				return err
			}
			chainBatch = append(chainBatch, chainLink{prefixID: prefixID, nextTokenID: tokenID})
			linkCount++
		}
		documentCount++
		if len(chainBatch) >= chainBatchSize {
			return commitChainBatch()
		}
		return nil
	}

	scanner := bufio.NewScanner(data)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var document []string
	for scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if err = processDocument(document); err != nil {
				return fmt.Errorf("document processing error: %w", err)
			}
			document = document[:0]
			continue
		}
		if len(document) < maxDocumentTokens {
			document = append(document, markov.Tokenize(line)...)
		}
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read training data: %w", err)
	}
	if err = processDocument(document); err != nil {
		return fmt.Errorf("final document processing error: %w", err)
	}
	if err = commitChainBatch(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Training completed",
		slog.String("model_name", model.Name),
		slog.Int("model_id", model.Id),
		slog.Int64("documents_processed", documentCount),
		slog.Int64("links_processed", linkCount),
	)

	return tx.Commit()
}
