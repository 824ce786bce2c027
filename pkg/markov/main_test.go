package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/CTAG07/Verseseed/pkg/random"
)

// setupTestGenerator returns a Generator driven by a fixed sequence of draws.
func setupTestGenerator(t *testing.T, draws ...int) (*Generator, *random.Sequence) {
	t.Helper()
	seq := random.NewSequence(draws...)
	return NewGenerator(WithSource(seq)), seq
}

// alphabetModel builds an order-2 model over distinct tokens, so every
// context has exactly one continuation.
func alphabetModel(n int) *Model {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = string(rune('a' + i))
	}
	return Build(tokens, 2)
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
