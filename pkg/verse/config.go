package verse

import (
	"errors"
	"fmt"
)

// Config holds the tunable limits of the composers.
type Config struct {
	Order             int `json:"order"`
	NumLines          int `json:"num_lines"`
	MinWords          int `json:"min_words"`
	MaxWords          int `json:"max_words"`
	MaxTries          int `json:"max_tries"`
	MinSeedTextLength int `json:"min_seed_text_length"`
	MinSeedWordLength int `json:"min_seed_word_length"`
	// MaxSeedWordLength is the cap callers apply to seed words before invoking
	// the engine. The composers themselves do not truncate.
	MaxSeedWordLength int `json:"max_seed_word_length"`
}

// DefaultConfig returns a Config with the standard limits.
func DefaultConfig() Config {
	return Config{
		Order:             2,
		NumLines:          4,
		MinWords:          5,
		MaxWords:          10,
		MaxTries:          50,
		MinSeedTextLength: 20,
		MinSeedWordLength: 3,
		MaxSeedWordLength: 30,
	}
}

// Validate rejects impossible combinations.
func (c Config) Validate() error {
	var errs []error
	if c.Order < 1 {
		errs = append(errs, fmt.Errorf("order must be at least 1, got %d", c.Order))
	}
	if c.NumLines != QuatrainLines {
		errs = append(errs, fmt.Errorf("num_lines must be %d, got %d", QuatrainLines, c.NumLines))
	}
	if c.MinWords < 1 {
		errs = append(errs, fmt.Errorf("min_words must be at least 1, got %d", c.MinWords))
	}
	if c.MaxWords < c.MinWords {
		errs = append(errs, fmt.Errorf("max_words (%d) must not be below min_words (%d)", c.MaxWords, c.MinWords))
	}
	if c.MaxTries < 1 {
		errs = append(errs, fmt.Errorf("max_tries must be at least 1, got %d", c.MaxTries))
	}
	if c.MinSeedTextLength < 0 {
		errs = append(errs, errors.New("min_seed_text_length must not be negative"))
	}
	if c.MinSeedWordLength < 1 {
		errs = append(errs, fmt.Errorf("min_seed_word_length must be at least 1, got %d", c.MinSeedWordLength))
	}
	if c.MaxSeedWordLength < c.MinSeedWordLength {
		errs = append(errs, fmt.Errorf("max_seed_word_length (%d) must not be below min_seed_word_length (%d)", c.MaxSeedWordLength, c.MinSeedWordLength))
	}
	return errors.Join(errs...)
}
