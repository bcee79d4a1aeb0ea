package sources

import "encoding/json"

// YouTube search — scrapes the results page ytInitialData blob. No API key
// and no quota; one request per query. A failed query is abandoned, the
// matcher simply moves on to its next pattern.

const (
	ytInitialDataMarker = "var ytInitialData = "
	ytSearchFilter      = "EgIQAQ%3D%3D" // videos-only filter param
	ytMaxBodyBytes      = 4 * 1024 * 1024
)

// ytBaseURL is a var so tests can point Search at a local server.
var ytBaseURL = "https://www.youtube.com/results"

// Video is one candidate search result with raw metadata text. Duration and
// view count stay as rendered strings; parsing them is the caller's concern.
type Video struct {
	ID            string
	Title         string
	Channel       string
	DurationText  string // e.g. "4:13" or "1:02:03", "" when absent
	ViewCountText string // e.g. "1.2K views", "1,234 visualizaciones"
}

// URL returns the canonical watch URL for the video.
func (v Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

type ytRuns struct {
	Runs []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (r ytRuns) first() string {
	if len(r.Runs) > 0 {
		return r.Runs[0].Text
	}
	return ""
}

type ytSimpleText struct {
	SimpleText string `json:"simpleText"`
}

type ytVideoRenderer struct {
	VideoID       string       `json:"videoId"`
	Title         ytRuns       `json:"title"`
	OwnerText     ytRuns       `json:"ownerText"`
	LengthText    ytSimpleText `json:"lengthText"`
	ViewCountText ytSimpleText `json:"viewCountText"`
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by tracking brace depth.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	var prev byte
	for i, c := range b {
		if inStr {
			if c == '"' && prev != '\\' {
				inStr = false
			}
		} else {
			switch c {
			case '"':
				inStr = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return b[:i+1]
				}
			}
		}
		prev = c
	}
	return nil
}

// extractVideos recursively walks ytInitialData JSON for videoRenderer entries.
func extractVideos(data []byte, limit int) []Video {
	var results []Video
	var walk func(v json.RawMessage)
	walk = func(v json.RawMessage) {
		if len(results) >= limit {
			return
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(v, &obj); err == nil {
			if raw, ok := obj["videoRenderer"]; ok {
				var vr ytVideoRenderer
				if err := json.Unmarshal(raw, &vr); err == nil && vr.VideoID != "" {
					results = append(results, Video{
						ID:            vr.VideoID,
						Title:         vr.Title.first(),
						Channel:       vr.OwnerText.first(),
						DurationText:  vr.LengthText.SimpleText,
						ViewCountText: vr.ViewCountText.SimpleText,
					})
					return
				}
			}
			for _, child := range obj {
				if len(results) >= limit {
					return
				}
				walk(child)
			}
			return
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(v, &arr); err == nil {
			for _, item := range arr {
				if len(results) >= limit {
					return
				}
				walk(item)
			}
		}
	}
	walk(data)
	return results
}
