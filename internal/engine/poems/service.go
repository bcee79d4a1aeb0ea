package poems

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/anatolykoptev/go_poemas/internal/engine"
)

// Service drives the matcher over the whole catalog, sequentially and in
// order. It owns the run statistics for the duration of the batch.
type Service struct {
	matcher *Matcher
	out     io.Writer
}

// NewService returns a batch processor reporting progress to stdout.
func NewService(matcher *Matcher) *Service {
	return &Service{matcher: matcher, out: os.Stdout}
}

// ProcessAll searches every poem in catalog order, mutating records in
// place. No single poem's failure aborts the batch: per-poem errors are
// logged and counted as not found. Cancellation is checked once per poem;
// the stats cover whatever was processed before the interrupt.
func (s *Service) ProcessAll(ctx context.Context, catalog []*Poem) Stats {
	stats := Stats{Total: len(catalog)}
	for idx, poem := range catalog {
		if ctx.Err() != nil {
			fmt.Fprintf(s.out, "\nProceso interrumpido por el usuario\n")
			fmt.Fprintf(s.out, "Poemas procesados hasta ahora: %d\n", idx)
			break
		}
		fmt.Fprintf(s.out, "\n[%d/%d] Procesando...\n", idx+1, stats.Total)

		err := s.processOne(ctx, poem)
		switch {
		case err == nil:
			stats.tally(poem)
		case ctx.Err() != nil:
			// interrupted mid-search; the record stays untouched and the
			// loop exits at the top of the next iteration
		default:
			slog.Error("poema: procesamiento falló",
				slog.String("titulo", poem.Titulo), slog.Any("error", err))
			stats.NotFound++
		}
	}
	return stats
}

// processOne searches a single poem and applies the found/partial
// transition. Panics from malformed metadata are converted to errors so the
// batch keeps going.
func (s *Service) processOne(ctx context.Context, poem *Poem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pánico procesando %q: %v", poem.Titulo, r)
		}
	}()

	fmt.Fprintf(s.out, "   Buscando: %s - %s (%s)\n", poem.Titulo, poem.Autor, poem.Genero)

	match, err := s.matcher.FindMatch(ctx, poem.Titulo, poem.Autor, poem.Genero)
	if err != nil {
		return err
	}
	if match == nil {
		fmt.Fprintf(s.out, "      No encontrado\n")
		return nil
	}

	notas := "Video: " + engine.TruncateRunes(match.VideoTitle, 100, "")
	if match.Partial {
		poem.MarkPartial(*match, notas)
		fmt.Fprintf(s.out, "      Parcial: %s (%s) - %s\n", match.Tipo, match.Duracion, match.Recitador)
	} else {
		poem.MarkFound(*match, notas)
		fmt.Fprintf(s.out, "      Encontrado: %s (%s) - %s\n", match.Tipo, match.Duracion, match.Recitador)
	}
	return nil
}
