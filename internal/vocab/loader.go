package vocab

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// sampleJSON is the built-in word list used when no source is configured.
//
//go:embed sample.json
var sampleJSON []byte

// maxPayloadBytes caps a fetched vocabulary payload.
const maxPayloadBytes = 16 << 20

// Loader fetches a vocabulary payload from a file path, an http(s) URL,
// or the embedded sample list when Source is empty.
type Loader struct {
	Source string
	Client *http.Client
}

// NewLoader creates a loader for source.
func NewLoader(source string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{Source: source, Client: client}
}

// Load fetches and parses the vocabulary. Fetch failures and malformed
// payloads both abort the whole load; there is no partial result.
func (l *Loader) Load(ctx context.Context) ([]Word, error) {
	raw, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	switch {
	case l.Source == "":
		return sampleJSON, nil
	case strings.HasPrefix(l.Source, "http://"), strings.HasPrefix(l.Source, "https://"):
		return l.fetchHTTP(ctx)
	default:
		raw, err := os.ReadFile(l.Source)
		if err != nil {
			return nil, fmt.Errorf("read vocabulary file: %w", err)
		}
		return raw, nil
	}
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("build vocabulary request: %w", err)
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch vocabulary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch vocabulary: unexpected status %s", resp.Status)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read vocabulary response: %w", err)
	}
	return raw, nil
}
