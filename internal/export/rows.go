// Package export renders the enriched catalog to spreadsheet and CSV files.
package export

import "github.com/anatolykoptev/go_poemas/internal/engine/poems"

// Row is the fixed 12-column export schema shared by both sinks. The csv
// tags double as the header names.
type Row struct {
	Numero         int    `csv:"#"`
	Poema          string `csv:"Poema"`
	Autor          string `csv:"Autor"`
	Anio           string `csv:"Año"`
	Genero         string `csv:"Género"`
	URL            string `csv:"URL YouTube"`
	Duracion       string `csv:"Duración"`
	Recitador      string `csv:"Recitador"`
	TipoContenido  string `csv:"Tipo Contenido"`
	Calidad        string `csv:"Calidad"`
	Notas          string `csv:"Notas"`
	Disponibilidad string `csv:"Disponibilidad"`
}

// headers lists the column names in schema order.
var headers = []string{
	"#", "Poema", "Autor", "Año", "Género", "URL YouTube", "Duración",
	"Recitador", "Tipo Contenido", "Calidad", "Notas", "Disponibilidad",
}

// makeRows projects catalog entries onto the export schema.
func makeRows(catalog []*poems.Poem) []Row {
	rows := make([]Row, 0, len(catalog))
	for _, p := range catalog {
		rows = append(rows, Row{
			Numero:         p.Numero,
			Poema:          p.Titulo,
			Autor:          p.Autor,
			Anio:           p.Anio,
			Genero:         p.Genero,
			URL:            p.URL,
			Duracion:       p.Duracion,
			Recitador:      p.Recitador,
			TipoContenido:  p.TipoContenido,
			Calidad:        p.Calidad,
			Notas:          p.Notas,
			Disponibilidad: string(p.Disponibilidad),
		})
	}
	return rows
}

// values returns the row as a cell slice in schema order.
func (r Row) values() []any {
	return []any{
		r.Numero, r.Poema, r.Autor, r.Anio, r.Genero, r.URL, r.Duracion,
		r.Recitador, r.TipoContenido, r.Calidad, r.Notas, r.Disponibilidad,
	}
}
