package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPDelegate forwards thematic requests to another verseseed server's
// /api/generate-poem endpoint.
type HTTPDelegate struct {
	url    string
	client *http.Client
}

// NewHTTPDelegate returns a delegate posting to url. A nil client uses
// http.DefaultClient.
func NewHTTPDelegate(url string, client *http.Client) *HTTPDelegate {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDelegate{url: url, client: client}
}

// Generate posts seed as the word and returns the poem, or the remote
// diagnostic as a single line. Any other failure is returned as an error.
func (d *HTTPDelegate) Generate(ctx context.Context, seed string) ([]string, error) {
	body, err := json.Marshal(GeneratePoemRequest{Word: seed})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build remote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return nil, fmt.Errorf("remote returned status %d", resp.StatusCode)
	}

	var poem PoemResponse
	if err = json.NewDecoder(resp.Body).Decode(&poem); err != nil {
		return nil, fmt.Errorf("failed to decode remote response: %w", err)
	}
	if !poem.Success {
		if poem.Message == "" {
			return nil, fmt.Errorf("remote returned status %d without a message", resp.StatusCode)
		}
		return []string{poem.Message}, nil
	}
	return poem.Poem, nil
}
