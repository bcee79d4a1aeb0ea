package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	VideosPerSearch int           // candidates fetched per search query
	MinVideoSeconds int           // known durations below this are rejected
	MaxVideoSeconds int           // known durations above this are rejected
	SearchDelay     time.Duration // polite pause between search requests
	PoemsFile       string        // optional pipe-delimited catalog override
	OutputXLSX      string
	OutputCSV       string
	HTTPClient      *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (poems, sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
