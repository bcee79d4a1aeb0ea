package poems

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LoadCatalog reads poems from a pipe-delimited UTF-8 text file, one per
// line: "Título | Autor | Año | Género". Año and Género are optional and
// default to the unknown sentinel. Blank lines and lines starting with #
// are ignored; lines with fewer than two fields are skipped with a warning.
func LoadCatalog(path string) ([]*Poem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var catalog []*Poem
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := parseCatalogLine(len(catalog)+1, line)
		if p == nil {
			slog.Warn("catalog: skipping malformed line", slog.Int("line", lineNo))
			continue
		}
		catalog = append(catalog, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return catalog, nil
}

// parseCatalogLine builds a Poem from one pipe-delimited line, nil when the
// line has fewer than two non-empty leading fields.
func parseCatalogLine(numero int, line string) *Poem {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}
	anio, genero := Unknown, Unknown
	if len(parts) > 2 && parts[2] != "" {
		anio = parts[2]
	}
	if len(parts) > 3 && parts[3] != "" {
		genero = parts[3]
	}
	return NewPoem(numero, parts[0], parts[1], anio, genero)
}
