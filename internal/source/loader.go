// Package source loads the raw project catalogue. Retrieval is an ordered
// chain of strategies tried in sequence; the first one that yields a
// non-empty, decodable collection wins. Adding another fallback tier means
// appending a Strategy, nothing else.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoProjects marks a payload that decoded to zero records. An
	// empty result is indistinguishable from an unreachable source, so
	// both trigger the next strategy.
	ErrNoProjects = errors.New("no projects in payload")

	// ErrBadStatus marks a non-2xx response from the remote source.
	ErrBadStatus = errors.New("unexpected HTTP status")

	// ErrExhausted is returned when every strategy failed.
	ErrExhausted = errors.New("all project sources failed")
)

// Strategy is one tier of the fallback chain.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// Loader walks the strategy chain and decodes the first usable payload.
type Loader struct {
	strategies []Strategy
	log        *zap.Logger
}

func NewLoader(log *zap.Logger, strategies ...Strategy) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{strategies: strategies, log: log}
}

// Load returns the raw records and the name of the strategy that produced
// them. On total failure it returns ErrExhausted; callers render an
// explicit empty state rather than a blank page. No caching across calls.
func (l *Loader) Load(ctx context.Context) ([]map[string]any, string, error) {
	var errs []error
	for _, s := range l.strategies {
		payload, err := s.Fetch(ctx)
		if err != nil {
			l.log.Warn("source fetch failed",
				zap.String("strategy", s.Name()), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		records, err := Decode(payload)
		if err != nil {
			l.log.Warn("source decode failed",
				zap.String("strategy", s.Name()), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		l.log.Debug("projects loaded",
			zap.String("strategy", s.Name()), zap.Int("count", len(records)))
		return records, s.Name(), nil
	}
	return nil, "", fmt.Errorf("%w: %w", ErrExhausted, errors.Join(errs...))
}

// Decode parses a YAML or JSON payload (yaml handles both grammars) and
// normalizes the top-level shape: a bare sequence, or a mapping with a
// "projects" key holding the sequence. Any other shape yields zero
// records, which is reported as ErrNoProjects.
func Decode(payload []byte) ([]map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	var list []any
	switch t := doc.(type) {
	case []any:
		list = t
	case map[string]any:
		list, _ = t["projects"].([]any)
	}

	records := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, ErrNoProjects
	}
	return records, nil
}

// HTTPStrategy fetches the catalogue from a remote document. Any non-2xx
// status is a failure, not just transport errors.
type HTTPStrategy struct {
	URL    string
	Client *http.Client
}

func (s HTTPStrategy) Name() string { return "remote" }

func (s HTTPStrategy) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %w (%d)", s.URL, ErrBadStatus, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// FileStrategy reads the catalogue from the local data file.
type FileStrategy struct {
	Path string
}

func (s FileStrategy) Name() string { return "file" }

func (s FileStrategy) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return b, nil
}

// InlineStrategy holds the embedded fallback text, used verbatim when the
// primary sources fail.
type InlineStrategy struct {
	Text string
}

func (s InlineStrategy) Name() string { return "inline" }

func (s InlineStrategy) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Text) == "" {
		return nil, errors.New("inline fallback is empty")
	}
	return []byte(s.Text), nil
}
