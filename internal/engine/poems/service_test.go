package poems

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_poemas/internal/engine/sources"
)

func testCatalog() []*Poem {
	return []*Poem{
		NewPoem(1, "A la Patria", "Salomé Ureña", "1874", "Patriótico"),
		NewPoem(2, "Niágara", "José María Heredia", "1824", "Romántico"),
		NewPoem(3, "Hay un País en el Mundo", "Pedro Mir", "1949", "Épico"),
	}
}

// matchOnly returns a SearchFunc that yields one acceptable video for
// queries mentioning any of the given titles and nothing otherwise.
func matchOnly(titles ...string) SearchFunc {
	return func(_ context.Context, query string, _ int) ([]sources.Video, error) {
		for _, title := range titles {
			if strings.Contains(query, title) {
				return []sources.Video{{
					ID:            "abc123def45",
					Title:         "Recitación de " + title,
					DurationText:  "4:00",
					ViewCountText: "1,234 visualizaciones",
				}}, nil
			}
		}
		return nil, nil
	}
}

func newTestService(search SearchFunc, out *bytes.Buffer) *Service {
	return &Service{matcher: NewMatcher(search, fastConfig()), out: out}
}

func TestProcessAllEndToEnd(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(matchOnly("A la Patria", "Hay un País en el Mundo"), &out)

	catalog := testCatalog()
	stats := svc.ProcessAll(context.Background(), catalog)

	require.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Found)
	assert.Equal(t, 0, stats.Partial)
	assert.Equal(t, 1, stats.NotFound)

	assert.Equal(t, Found, catalog[0].Disponibilidad)
	assert.Equal(t, NotFound, catalog[1].Disponibilidad)
	assert.Equal(t, Found, catalog[2].Disponibilidad)

	assert.Equal(t, "Video: Recitación de A la Patria", catalog[0].Notas)
	assert.Equal(t, []string{"Salomé Ureña", "Pedro Mir"}, stats.Authors)

	svc.PrintStats(stats)
	assert.Contains(t, out.String(), "Tasa de éxito: 66.7%")
	assert.Contains(t, out.String(), "No encontrado")
}

func TestProcessAllPartialMatch(t *testing.T) {
	search := func(_ context.Context, query string, _ int) ([]sources.Video, error) {
		if !strings.Contains(query, "Niágara") {
			return nil, nil
		}
		return []sources.Video{{ID: "abc123def45", Title: "Fragmento de Niágara", DurationText: "1:30"}}, nil
	}
	var out bytes.Buffer
	svc := newTestService(search, &out)

	catalog := testCatalog()
	stats := svc.ProcessAll(context.Background(), catalog)

	assert.Equal(t, 1, stats.Partial)
	assert.Equal(t, 2, stats.NotFound)
	assert.Equal(t, Partial, catalog[1].Disponibilidad)
	assert.Contains(t, out.String(), "Parcial: Fragmentos")
}

func TestProcessAllSurvivesPanic(t *testing.T) {
	search := func(_ context.Context, query string, _ int) ([]sources.Video, error) {
		if strings.Contains(query, "Niágara") {
			panic("malformed metadata")
		}
		return []sources.Video{{ID: "abc123def45", Title: "Recitación", DurationText: "4:00"}}, nil
	}
	var out bytes.Buffer
	svc := newTestService(search, &out)

	catalog := testCatalog()
	stats := svc.ProcessAll(context.Background(), catalog)

	// poem #2 blew up, poems #1 and #3 still processed
	assert.Equal(t, 2, stats.Found)
	assert.Equal(t, 1, stats.NotFound)
	assert.Equal(t, Found, catalog[0].Disponibilidad)
	assert.Equal(t, NotFound, catalog[1].Disponibilidad)
	assert.Equal(t, Found, catalog[2].Disponibilidad)
}

func TestProcessAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	svc := newTestService(matchOnly("A la Patria"), &out)

	catalog := testCatalog()
	stats := svc.ProcessAll(ctx, catalog)

	assert.Equal(t, 0, stats.Found+stats.Partial+stats.NotFound)
	assert.Contains(t, out.String(), "interrumpido")
	for _, p := range catalog {
		assert.Equal(t, NotFound, p.Disponibilidad)
	}
}

func TestProcessAllFoundDurationAverage(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(matchOnly("A la Patria", "Niágara", "Hay un País en el Mundo"), &out)

	stats := svc.ProcessAll(context.Background(), testCatalog())

	require.Equal(t, 3, stats.DurationCount)
	assert.Equal(t, 12, stats.DurationMinutes) // 4 whole minutes each

	svc.PrintStats(stats)
	assert.Contains(t, out.String(), "Duración Promedio: 4.0 minutos")
}

func TestCountLabelsTieBreak(t *testing.T) {
	counts := countLabels([]string{"Lírico", "Épico", "Épico", "Social", "Lírico"})
	require.Len(t, counts, 3)
	// Lírico and Épico tie at 2; Lírico was inserted first
	assert.Equal(t, "Lírico", counts[0].label)
	assert.Equal(t, 2, counts[0].count)
	assert.Equal(t, "Épico", counts[1].label)
	assert.Equal(t, "Social", counts[2].label)
}

func TestPrintStatsEmptyRun(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(matchOnly(), &out)
	svc.PrintStats(Stats{})
	assert.Contains(t, out.String(), "No se procesaron poemas")
}
