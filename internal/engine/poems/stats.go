package poems

import (
	"fmt"
	"sort"
	"strings"
)

// Stats aggregates one batch run. The label slices keep insertion order so
// "most common" reporting resolves count ties to the earliest entry.
type Stats struct {
	Total    int
	Found    int
	Partial  int
	NotFound int

	Authors      []string
	Genres       []string
	ContentTypes []string
	Qualities    []string

	DurationMinutes int // whole minutes, FOUND items only
	DurationCount   int
}

// tally folds one processed poem into the run statistics.
func (st *Stats) tally(p *Poem) {
	switch p.Disponibilidad {
	case Found:
		st.Found++
		st.Authors = append(st.Authors, p.Autor)
		st.Genres = append(st.Genres, p.Genero)
		st.ContentTypes = append(st.ContentTypes, p.TipoContenido)
		st.Qualities = append(st.Qualities, p.Calidad)
		if mins, ok := durationMinutes(p.Duracion); ok {
			st.DurationMinutes += mins
			st.DurationCount++
		}
	case Partial:
		st.Partial++
		st.Authors = append(st.Authors, p.Autor)
		st.Genres = append(st.Genres, p.Genero)
	default:
		st.NotFound++
	}
}

// durationMinutes pulls the whole-minute component from "M:SS" text.
func durationMinutes(duracion string) (int, bool) {
	parts := strings.Split(duracion, ":")
	if len(parts) != 2 {
		return 0, false
	}
	var mins int
	if _, err := fmt.Sscanf(parts[0], "%d", &mins); err != nil {
		return 0, false
	}
	return mins, true
}

// labelCount pairs a label with its occurrence count.
type labelCount struct {
	label string
	count int
}

// countLabels tallies labels preserving first-seen order, then sorts by
// count descending with a stable sort so ties keep insertion order.
func countLabels(labels []string) []labelCount {
	counts := make(map[string]int, len(labels))
	var order []string
	for _, l := range labels {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}
	out := make([]labelCount, 0, len(order))
	for _, l := range order {
		out = append(out, labelCount{label: l, count: counts[l]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}

// PrintStats writes the final run report to the service output.
func (s *Service) PrintStats(st Stats) {
	line := strings.Repeat("=", 70)
	fmt.Fprintf(s.out, "\n%s\n", line)
	fmt.Fprintln(s.out, "RESULTADOS DE LA BÚSQUEDA:")
	fmt.Fprintf(s.out, "%s\n", line)

	if st.Total == 0 {
		fmt.Fprintln(s.out, "\nNo se procesaron poemas")
		return
	}

	pct := func(n int) float64 { return float64(n) / float64(st.Total) * 100 }
	fmt.Fprintln(s.out, "\nEstadísticas Generales:")
	fmt.Fprintf(s.out, "   Total procesado: %d\n", st.Total)
	fmt.Fprintf(s.out, "   Encontrados: %d (%.1f%%)\n", st.Found, pct(st.Found))
	fmt.Fprintf(s.out, "   Parciales: %d (%.1f%%)\n", st.Partial, pct(st.Partial))
	fmt.Fprintf(s.out, "   No encontrados: %d (%.1f%%)\n", st.NotFound, pct(st.NotFound))
	fmt.Fprintf(s.out, "\n   Tasa de éxito: %.1f%%\n", pct(st.Found+st.Partial))

	if len(st.Authors) > 0 {
		fmt.Fprintln(s.out, "\nAutores Más Representados:")
		for _, lc := range top(countLabels(st.Authors), 5) {
			fmt.Fprintf(s.out, "   - %s: %d poemas\n", lc.label, lc.count)
		}
	}

	if len(st.Genres) > 0 {
		fmt.Fprintln(s.out, "\nGéneros Más Encontrados:")
		for _, lc := range top(countLabels(st.Genres), 5) {
			if lc.label != Unknown {
				fmt.Fprintf(s.out, "   - %s: %d poemas\n", lc.label, lc.count)
			}
		}
	}

	if len(st.ContentTypes) > 0 {
		fmt.Fprintln(s.out, "\nTipos de Contenido:")
		for _, lc := range countLabels(st.ContentTypes) {
			fmt.Fprintf(s.out, "   - %s: %d videos\n", lc.label, lc.count)
		}
	}

	if len(st.Qualities) > 0 {
		counts := make(map[string]int, len(st.Qualities))
		for _, q := range st.Qualities {
			counts[q]++
		}
		fmt.Fprintln(s.out, "\nDistribución de Calidad:")
		for _, q := range []string{"Excelente", "Buena", "Aceptable", "Baja"} {
			if counts[q] > 0 {
				fmt.Fprintf(s.out, "   - %s: %d videos\n", q, counts[q])
			}
		}
	}

	if st.DurationCount > 0 {
		avg := float64(st.DurationMinutes) / float64(st.DurationCount)
		fmt.Fprintf(s.out, "\nDuración Promedio: %.1f minutos\n", avg)
	}

	fmt.Fprintf(s.out, "\n%s\n\n", line)
}

// top returns the first n entries of a counted label list.
func top(counts []labelCount, n int) []labelCount {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}
