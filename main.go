// go_poemas — Dominican poetry recitation finder.
//
// Searches YouTube for recitations of a catalog of Dominican poems,
// classifies each match with heuristic rules, and exports the enriched
// catalog to a styled xlsx workbook and a CSV file.
//
// No flags: configuration comes from the environment, the catalog from
// poems_list.txt when present, otherwise from the built-in dataset.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"

	"github.com/anatolykoptev/go_poemas/internal/engine"
	"github.com/anatolykoptev/go_poemas/internal/engine/poems"
	"github.com/anatolykoptev/go_poemas/internal/engine/sources"
	"github.com/anatolykoptev/go_poemas/internal/export"
)

var banner = strings.Repeat("=", 70)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nError fatal: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	initLogging()
	initEngine()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("\n%s\n", banner)
	fmt.Println("go_poemas - Buscador de Recitaciones de Poemas Dominicanos")
	fmt.Printf("%s\n\n", banner)

	catalog := loadCatalog()

	fmt.Printf("\n%s\n", banner)
	fmt.Println("Iniciando búsqueda en YouTube...")
	fmt.Printf("%s\n\n", banner)

	matcher := poems.NewMatcher(sources.Search, poems.MatchConfig{
		PerQuery:   engine.Cfg.VideosPerSearch,
		MinSeconds: engine.Cfg.MinVideoSeconds,
		MaxSeconds: engine.Cfg.MaxVideoSeconds,
		Delay:      engine.Cfg.SearchDelay,
	})
	service := poems.NewService(matcher)

	stats := service.ProcessAll(ctx, catalog)

	fmt.Printf("\n%s\n", banner)
	fmt.Println("Guardando resultados...")
	fmt.Printf("%s\n\n", banner)

	var saved []string
	if err := export.SaveExcel(catalog, engine.Cfg.OutputXLSX); err != nil {
		slog.Warn("xlsx export failed", slog.Any("error", err))
	} else {
		saved = append(saved, engine.Cfg.OutputXLSX)
	}
	if err := export.SaveCSV(catalog, engine.Cfg.OutputCSV); err != nil {
		slog.Warn("csv export failed", slog.Any("error", err))
	} else {
		saved = append(saved, engine.Cfg.OutputCSV)
	}

	service.PrintStats(stats)
	engine.LogMetrics()

	if len(saved) > 0 {
		fmt.Println("Archivos generados:")
		for _, path := range saved {
			fmt.Printf("   - %s\n", path)
		}
	}

	if ctx.Err() != nil {
		fmt.Println("\n¡Hasta luego!")
	}
}

// loadCatalog prefers the poems file, falling back to the built-in dataset.
func loadCatalog() []*poems.Poem {
	catalog, err := poems.LoadCatalog(engine.Cfg.PoemsFile)
	if err == nil && len(catalog) > 0 {
		fmt.Printf("Cargados %d poemas desde %q\n", len(catalog), engine.Cfg.PoemsFile)
		return catalog
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("catalog file unreadable, using built-in dataset", slog.Any("error", err))
	}
	fmt.Println("Usando dataset predefinido de poesía dominicana")
	catalog = poems.SeedCatalog()
	fmt.Printf("%d poemas en el dataset\n", len(catalog))
	return catalog
}

func initEngine() {
	engine.Init(engine.Config{
		VideosPerSearch: env.Int("VIDEOS_PER_SEARCH", 3),
		MinVideoSeconds: env.Int("MIN_VIDEO_DURATION", 30),
		MaxVideoSeconds: env.Int("MAX_VIDEO_DURATION", 1200),
		SearchDelay:     env.Duration("SEARCH_DELAY", time.Second),
		PoemsFile:       env.Str("POEMS_FILE", "poems_list.txt"),
		OutputXLSX:      env.Str("OUTPUT_FILE", "dominican_poems.xlsx"),
		OutputCSV:       env.Str("OUTPUT_CSV", "dominican_poems.csv"),
		HTTPClient:      engine.NewHTTPClient(env.Duration("HTTP_TIMEOUT", 15*time.Second)),
	})
}

func initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(env.Str("LOG_LEVEL", "info")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
