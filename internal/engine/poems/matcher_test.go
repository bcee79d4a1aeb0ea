package poems

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_poemas/internal/engine/sources"
)

// fastConfig disables the polite delay so tests don't sleep.
func fastConfig() MatchConfig {
	cfg := DefaultMatchConfig()
	cfg.Delay = 0
	return cfg
}

func TestFindMatchFirstAcceptable(t *testing.T) {
	var queries []string
	search := func(_ context.Context, query string, limit int) ([]sources.Video, error) {
		queries = append(queries, query)
		return []sources.Video{
			{ID: "abc123def45", Title: "Recitación de La Vida por Juan Pérez | Canal", DurationText: "4:13", ViewCountText: "1,234 visualizaciones"},
			{ID: "zzz999zzz99", Title: "Otro video", DurationText: "5:00"},
		}, nil
	}

	m := NewMatcher(search, fastConfig())
	match, err := m.FindMatch(context.Background(), "La Vida", "Salomé Ureña", "N/A")
	if err != nil {
		t.Fatal(err)
	}
	if match == nil {
		t.Fatal("expected a match")
	}
	if len(queries) != 1 {
		t.Errorf("first query already matched, but %d queries ran", len(queries))
	}
	if match.URL != "https://www.youtube.com/watch?v=abc123def45" {
		t.Errorf("URL = %q", match.URL)
	}
	if match.Tipo != "Recitación" || match.Duracion != "4:13" || match.Recitador != "Juan Pérez" {
		t.Errorf("classification wrong: %+v", match)
	}
	if match.Calidad != "Buena" {
		t.Errorf("Calidad = %q, want Buena (1234 views, no keywords)", match.Calidad)
	}
	if match.Partial {
		t.Error("full recitation flagged as partial")
	}
}

func TestFindMatchDurationFilter(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		accepted bool
	}{
		{"too short", "0:29", false},
		{"lower bound", "0:30", true},
		{"upper bound", "20:00", true},
		{"too long", "20:01", false},
		{"unknown duration passes", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := func(_ context.Context, _ string, _ int) ([]sources.Video, error) {
				return []sources.Video{{ID: "abc123def45", Title: "Poema", DurationText: tt.duration}}, nil
			}
			m := NewMatcher(search, fastConfig())
			match, err := m.FindMatch(context.Background(), "La Vida", "Salomé Ureña", "N/A")
			if err != nil {
				t.Fatal(err)
			}
			if (match != nil) != tt.accepted {
				t.Errorf("duration %q: match=%v, want accepted=%v", tt.duration, match != nil, tt.accepted)
			}
		})
	}
}

func TestFindMatchSkipsCandidatesWithoutID(t *testing.T) {
	search := func(_ context.Context, _ string, _ int) ([]sources.Video, error) {
		return []sources.Video{
			{Title: "Sin identificador", DurationText: "4:00"},
			{ID: "abc123def45", Title: "Con identificador", DurationText: "4:00"},
		}, nil
	}
	m := NewMatcher(search, fastConfig())
	match, err := m.FindMatch(context.Background(), "La Vida", "Salomé Ureña", "N/A")
	if err != nil {
		t.Fatal(err)
	}
	if match == nil || !strings.Contains(match.URL, "abc123def45") {
		t.Errorf("expected second candidate accepted, got %+v", match)
	}
}

func TestFindMatchQueryFailureAdvances(t *testing.T) {
	calls := 0
	search := func(_ context.Context, _ string, _ int) ([]sources.Video, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transport down")
		}
		return []sources.Video{{ID: "abc123def45", Title: "Poema", DurationText: "2:00"}}, nil
	}
	m := NewMatcher(search, fastConfig())
	match, err := m.FindMatch(context.Background(), "La Vida", "Salomé Ureña", "N/A")
	if err != nil {
		t.Fatal(err)
	}
	if match == nil || calls != 2 {
		t.Errorf("expected match from second query after failure, match=%v calls=%d", match, calls)
	}
}

func TestFindMatchExhaustsQueries(t *testing.T) {
	calls := 0
	search := func(_ context.Context, _ string, _ int) ([]sources.Video, error) {
		calls++
		return nil, nil
	}
	m := NewMatcher(search, fastConfig())
	match, err := m.FindMatch(context.Background(), "La Vida", "Salomé Ureña", "Filosófico")
	if err != nil {
		t.Fatal(err)
	}
	if match != nil {
		t.Fatalf("expected no match, got %+v", match)
	}
	if calls != 7 {
		t.Errorf("ran %d queries, want all 7 (genre pattern included)", calls)
	}
}

func TestFindMatchPartialDetection(t *testing.T) {
	search := func(_ context.Context, _ string, _ int) ([]sources.Video, error) {
		return []sources.Video{{ID: "abc123def45", Title: "Fragmento del poema La Vida", DurationText: "1:00"}}, nil
	}
	m := NewMatcher(search, fastConfig())
	match, err := m.FindMatch(context.Background(), "La Vida", "Salomé Ureña", "N/A")
	if err != nil {
		t.Fatal(err)
	}
	if match == nil || !match.Partial || match.Tipo != "Fragmentos" {
		t.Errorf("expected partial Fragmentos match, got %+v", match)
	}
}

func TestFindMatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	search := func(_ context.Context, _ string, _ int) ([]sources.Video, error) {
		t.Fatal("search must not run after cancellation")
		return nil, nil
	}
	m := NewMatcher(search, fastConfig())
	if _, err := m.FindMatch(ctx, "La Vida", "Salomé Ureña", "N/A"); err == nil {
		t.Error("expected context error")
	}
}
