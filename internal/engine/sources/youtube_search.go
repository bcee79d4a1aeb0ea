package sources

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_poemas/internal/engine"
)

// Search scrapes YouTube search results for query, returning up to limit
// candidate videos in the order the search page ranks them. Transport and
// parse failures surface as errors the caller can swallow per query.
func Search(ctx context.Context, query string, limit int) ([]Video, error) {
	engine.IncrSearchRequest()
	if limit <= 0 || limit > 10 {
		limit = 3
	}

	searchURL := ytBaseURL + "?search_query=" + url.QueryEscape(query) + "&sp=" + ytSearchFilter
	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentChrome)
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9,en;q=0.8")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		engine.IncrSearchError()
		return nil, fmt.Errorf("youtube search page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		engine.IncrSearchError()
		return nil, fmt.Errorf("youtube search status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, ytMaxBodyBytes))
	if err != nil {
		engine.IncrSearchError()
		return nil, fmt.Errorf("read youtube search response: %w", err)
	}

	idx := bytes.Index(body, []byte(ytInitialDataMarker))
	if idx < 0 {
		return nil, fmt.Errorf("ytInitialData not found in YouTube search response")
	}
	jsonData := extractJSON(body[idx+len(ytInitialDataMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("failed to extract ytInitialData JSON")
	}

	videos := extractVideos(jsonData, limit)
	engine.AddVideosScanned(len(videos))
	slog.Debug("youtube: search done", slog.String("query", query), slog.Int("videos", len(videos)))
	return videos, nil
}
