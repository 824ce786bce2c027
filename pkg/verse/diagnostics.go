package verse

import (
	"errors"
	"fmt"

	"github.com/CTAG07/Verseseed/pkg/markov"
)

// Diagnostic messages returned in place of a poem.
const (
	MsgNotEnoughWords   = "Not enough unique words in seed text"
	MsgEmptyModel       = "Not enough seed text to generate poem"
	MsgNoSuitableLine   = "Could not generate a suitable line"
	MsgLongerWord       = "Please provide a longer word"
	MsgThematicFailure  = "Could not generate poem. Please try a different word."
	MsgNoCorpusModel    = "No corpus model is loaded"
	MsgUnknownStrategy  = "Unknown generation strategy"
	msgMoreSeedTextTmpl = "Please provide more seed text (at least %d characters)"
)

var (
	// ErrSeedTooShort is reported when seed text is below the minimum length.
	ErrSeedTooShort = errors.New("verse: seed text too short")
	// ErrNotEnoughWords is reported when the seed yields no usable contexts.
	ErrNotEnoughWords = errors.New("verse: not enough unique words")
	// ErrWordTooShort is reported when a seed word is below the minimum length.
	ErrWordTooShort = errors.New("verse: seed word too short")
	// ErrNoCorpusModel is reported by the corpus strategy without a model.
	ErrNoCorpusModel = errors.New("verse: no corpus model loaded")
	// ErrTransport marks a failure to reach the remote delegate. It is the only
	// error Engine.Generate returns.
	ErrTransport = errors.New("verse: remote delegate unavailable")
)

// seedTooShortError carries the configured minimum into the message.
type seedTooShortError struct{ min int }

func (e seedTooShortError) Error() string { return fmt.Sprintf(msgMoreSeedTextTmpl, e.min) }
func (e seedTooShortError) Unwrap() error { return ErrSeedTooShort }

// Diagnostic maps an error to the message shown in place of a poem.
func Diagnostic(err error) string {
	var short seedTooShortError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &short):
		return short.Error()
	case errors.Is(err, ErrSeedTooShort):
		return fmt.Sprintf(msgMoreSeedTextTmpl, DefaultConfig().MinSeedTextLength)
	case errors.Is(err, ErrNotEnoughWords):
		return MsgNotEnoughWords
	case errors.Is(err, markov.ErrEmptyModel):
		return MsgEmptyModel
	case errors.Is(err, markov.ErrNoSuitableLine):
		return MsgNoSuitableLine
	case errors.Is(err, ErrWordTooShort):
		return MsgLongerWord
	case errors.Is(err, ErrNoCorpusModel):
		return MsgNoCorpusModel
	}
	return MsgThematicFailure
}

// QuatrainLines is the length of every generated poem.
const QuatrainLines = 4

// Quatrain is a finished poem, or a single diagnostic line when generation
// was refused or failed.
type Quatrain []string

func diagnostic(err error) Quatrain {
	return Quatrain{Diagnostic(err)}
}

// OK reports whether q holds a poem rather than a diagnostic.
func (q Quatrain) OK() bool {
	return len(q) > 1
}

// Diagnostic returns the diagnostic message, if q is one.
func (q Quatrain) Diagnostic() (string, bool) {
	if len(q) == 1 {
		return q[0], true
	}
	return "", false
}
