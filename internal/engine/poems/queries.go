package poems

import "slices"

// buildQueries plans the search queries for one poem, broad-to-narrow:
// exact recitation patterns first, author-only and genre fallbacks later.
// The matcher walks them in order and stops at the first accepted hit.
func buildQueries(titulo, autor, genero string) []string {
	queries := []string{
		titulo + " " + autor + " recitación",
		titulo + " poema dominicano",
		autor + " " + titulo + " completo",
		titulo + " " + autor + " dramatización",
		"poema " + titulo + " recitado",
		autor + " poesía dominicana",
	}
	if genero != "" && genero != Unknown {
		queries = slices.Insert(queries, 2, titulo+" "+autor+" poema "+genero)
	}
	return queries
}
