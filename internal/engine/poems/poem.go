// Package poems holds the catalog model, the search heuristics, and the
// batch pipeline that matches each poem to a recitation video.
package poems

// Availability is the tri-state search outcome for a poem. It starts at
// NotFound and moves at most once to Found or Partial, never back.
type Availability string

// Availability states.
const (
	NotFound Availability = "NO ENCONTRADO"
	Found    Availability = "ENCONTRADO"
	Partial  Availability = "PARCIAL"
)

// Unknown is the sentinel for metadata fields that could not be determined.
const Unknown = "N/A"

// Poem is one catalog entry plus its search result state.
type Poem struct {
	Numero         int
	Titulo         string
	Autor          string
	Anio           string
	Genero         string
	URL            string
	Duracion       string
	Recitador      string
	TipoContenido  string
	Calidad        string
	Notas          string
	Disponibilidad Availability
}

// NewPoem returns a catalog entry with all result fields at their sentinels.
func NewPoem(numero int, titulo, autor, anio, genero string) *Poem {
	return &Poem{
		Numero:         numero,
		Titulo:         titulo,
		Autor:          autor,
		Anio:           anio,
		Genero:         genero,
		URL:            string(NotFound),
		Duracion:       Unknown,
		Recitador:      Unknown,
		TipoContenido:  Unknown,
		Calidad:        Unknown,
		Disponibilidad: NotFound,
	}
}

// MarkFound records an accepted full match. Returns false without touching
// the record when a result was already recorded.
func (p *Poem) MarkFound(m Match, notas string) bool {
	return p.transition(Found, m, notas)
}

// MarkPartial records an accepted fragment-only match. Same single-shot
// guarantee as MarkFound.
func (p *Poem) MarkPartial(m Match, notas string) bool {
	return p.transition(Partial, m, notas)
}

func (p *Poem) transition(to Availability, m Match, notas string) bool {
	if p.Disponibilidad != NotFound {
		return false
	}
	p.URL = m.URL
	p.Duracion = m.Duracion
	p.TipoContenido = m.Tipo
	p.Recitador = m.Recitador
	p.Calidad = m.Calidad
	p.Notas = notas
	p.Disponibilidad = to
	return true
}
