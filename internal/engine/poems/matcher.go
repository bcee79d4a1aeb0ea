package poems

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_poemas/internal/engine"
	"github.com/anatolykoptev/go_poemas/internal/engine/sources"
)

// SearchFunc is the external video search collaborator.
type SearchFunc func(ctx context.Context, query string, limit int) ([]sources.Video, error)

// MatchConfig bounds the candidate scan.
type MatchConfig struct {
	PerQuery   int           // candidates fetched per query
	MinSeconds int           // known durations below this are rejected
	MaxSeconds int           // known durations above this are rejected
	Delay      time.Duration // polite pause between search requests
}

// DefaultMatchConfig mirrors the stock scraper limits: 3 candidates per
// query, 30s..20min duration window, one request per second.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{PerQuery: 3, MinSeconds: 30, MaxSeconds: 1200, Delay: time.Second}
}

// Match is an accepted candidate after classification. Transient; its
// fields are copied onto the Poem by the availability transition.
type Match struct {
	URL        string
	Duracion   string
	Tipo       string
	Recitador  string
	Calidad    string
	VideoTitle string
	Partial    bool
}

// Matcher finds at most one acceptable video per poem using a
// first-acceptable-match policy: query order encodes relevance priority,
// candidate order within a query is the search engine's own ranking.
type Matcher struct {
	search  SearchFunc
	cfg     MatchConfig
	limiter *rate.Limiter
}

// NewMatcher builds a matcher around the given search collaborator.
func NewMatcher(search SearchFunc, cfg MatchConfig) *Matcher {
	if cfg.PerQuery <= 0 {
		cfg.PerQuery = 3
	}
	return &Matcher{
		search:  search,
		cfg:     cfg,
		limiter: engine.NewThrottle(cfg.Delay),
	}
}

// FindMatch runs the planned queries in order and accepts the first
// candidate passing the duration filter. Returns nil when every query comes
// up empty. A failing query is abandoned, never retried; only context
// cancellation produces an error.
func (m *Matcher) FindMatch(ctx context.Context, titulo, autor, genero string) (*Match, error) {
	for _, query := range buildQueries(titulo, autor, genero) {
		if err := m.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		videos, err := m.search(ctx, query, m.cfg.PerQuery)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Debug("matcher: query failed", slog.String("query", query), slog.Any("error", err))
			continue
		}
		for _, v := range videos {
			if v.ID == "" {
				continue
			}
			secs := ParseDuration(v.DurationText)
			// Too short is unlikely a full recitation, too long is likely a
			// compilation or unrelated upload. Unknown duration passes.
			if secs > 0 && (secs < m.cfg.MinSeconds || secs > m.cfg.MaxSeconds) {
				continue
			}
			return m.classify(v, secs), nil
		}
	}
	return nil, nil
}

func (m *Matcher) classify(v sources.Video, secs int) *Match {
	tipo := ClassifyContent(v.Title, "")
	return &Match{
		URL:        v.URL(),
		Duracion:   FormatDuration(secs),
		Tipo:       tipo,
		Recitador:  ExtractReciter(v.Title),
		Calidad:    EstimateQuality(v.Title, ParseViewCount(v.ViewCountText)),
		VideoTitle: v.Title,
		Partial:    IsPartialType(tipo),
	}
}
