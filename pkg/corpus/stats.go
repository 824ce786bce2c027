package corpus

import (
	"cmp"
	"context"
	"slices"
)

// DBStats holds aggregated statistics for the whole store.
type DBStats struct {
	Models     []ModelInfo        `json:"models"`
	Stats      map[int]ModelStats `json:"stats"`       // keyed by model ID
	VocabSize  int                `json:"vocab_size"`  // unique next-tokens across all models
	PrefixSize int                `json:"prefix_size"` // unique contexts across all models
}

// ModelStats holds aggregated statistics for a single model.
type ModelStats struct {
	TotalChains    int `json:"total_chains"`    // unique context->token links
	TotalFrequency int `json:"total_frequency"` // total trained transitions
	Contexts       int `json:"contexts"`        // distinct contexts, each a possible line start
}

// GetStats returns a snapshot of store-wide and per-model statistics.
func (s *Store) GetStats(ctx context.Context) (*DBStats, error) {
	modelInfos, err := s.GetModelInfos(ctx)
	if err != nil {
		return nil, err
	}

	var vocabLen, prefixLen int
	if err = s.stmtGetVocabLen.QueryRowContext(ctx).Scan(&vocabLen); err != nil {
		return nil, err
	}
	if err = s.stmtGetPrefixLen.QueryRowContext(ctx).Scan(&prefixLen); err != nil {
		return nil, err
	}

	models := make([]ModelInfo, 0, len(modelInfos))
	modelStats := make(map[int]ModelStats, len(modelInfos))
	for _, v := range modelInfos {
		models = append(models, v)
		var st ModelStats
		if err = s.stmtModelChains.QueryRowContext(ctx, v.Id).Scan(&st.TotalChains); err != nil {
			return nil, err
		}
		if err = s.stmtModelFreq.QueryRowContext(ctx, v.Id).Scan(&st.TotalFrequency); err != nil {
			return nil, err
		}
		if err = s.stmtModelPrefixes.QueryRowContext(ctx, v.Id).Scan(&st.Contexts); err != nil {
			return nil, err
		}
		modelStats[v.Id] = st
	}
	slices.SortFunc(models, func(a, b ModelInfo) int { return cmp.Compare(a.Id, b.Id) })

	return &DBStats{
		Models:     models,
		Stats:      modelStats,
		VocabSize:  vocabLen,
		PrefixSize: prefixLen,
	}, nil
}
