package poems

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_poemas/internal/engine"
)

// Classification heuristics over noisy video metadata. Everything operates
// on folded (lowercase, accent-stripped) text so sloppy uploader spelling
// still matches.

// contentTypeRules maps keyword groups to content labels, highest priority
// first. The first group with any keyword present wins, so a title carrying
// both "recitación" and "fragmento" classifies as Recitación.
var contentTypeRules = []struct {
	label    string
	keywords []string
}{
	{"Recitación", []string{"recitación", "recita", "recitando"}},
	{"Dramatización", []string{"dramatización", "drama", "teatral", "teatro"}},
	{"Lectura", []string{"lectura", "leyendo", "lee"}},
	{"Performance", []string{"performance", "presentación", "actuación"}},
	{"Compilación", []string{"compilación", "antología", "colección"}},
	{"Documental", []string{"documental", "educativo", "análisis"}},
	{"Audiopoesía", []string{"audio", "audiopoesía"}},
	{"Fragmentos", []string{"fragmento", "extracto", "parcial"}},
}

// defaultContentType labels videos no keyword group claims.
const defaultContentType = "Video Poético"

// ClassifyContent labels a video from its title and description.
func ClassifyContent(title, description string) string {
	combined := engine.Fold(title + " " + description)
	for _, rule := range contentTypeRules {
		if containsAny(combined, rule.keywords) {
			return rule.label
		}
	}
	return defaultContentType
}

var (
	professionalKeywords = []string{"profesional", "oficial", "hd", "alta calidad", "audio limpio"}
	amateurKeywords      = []string{"celular", "phone", "baja calidad", "audio malo"}
)

// EstimateQuality grades a video from title keywords and view count.
// "Baja" is part of the reporting vocabulary but no rule assigns it.
func EstimateQuality(title string, viewCount int) string {
	folded := engine.Fold(title)
	switch {
	case containsAny(folded, professionalKeywords) || viewCount > 10000:
		return "Excelente"
	case containsAny(folded, amateurKeywords) || viewCount < 100:
		return "Aceptable"
	default:
		return "Buena"
	}
}

// containsAny reports whether folded text contains any keyword (keywords are
// folded before comparison).
func containsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, engine.Fold(kw)) {
			return true
		}
	}
	return false
}

// reciterPatterns capture a speaker name up to a pipe separator or end of
// title. Checked in order; the most specific phrasing comes first because
// "por (X)" would also match "recitado por (X)".
var reciterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)recitado por ([^|]+)`),
	regexp.MustCompile(`(?i)por ([^|]+)`),
	regexp.MustCompile(`(?i)voz de ([^|]+)`),
	regexp.MustCompile(`(?i)narrado por ([^|]+)`),
}

// reciterSuffixRE strips a trailing dash-separated channel or series name.
var reciterSuffixRE = regexp.MustCompile(`\s*[-–—]\s*.*$`)

// ExtractReciter pulls a speaker name out of a video title; Unknown when no
// pattern matches. Names are capped at 50 runes.
func ExtractReciter(title string) string {
	for _, re := range reciterPatterns {
		m := re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		name = reciterSuffixRE.ReplaceAllString(name, "")
		return engine.TruncateRunes(name, 50, "")
	}
	return Unknown
}

// ParseDuration converts "M:SS" or "H:MM:SS" text to seconds, 0 when the
// text is absent or unparseable.
func ParseDuration(text string) int {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// FormatDuration renders seconds as "M:SS"; non-positive means unknown.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return Unknown
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

var viewCountCleanRE = regexp.MustCompile(`[^\d.KM]`)

// ParseViewCount extracts a number from text like "1.2K views" or
// "1,234 visualizaciones"; 0 when empty or unparseable.
func ParseViewCount(text string) int {
	cleaned := viewCountCleanRE.ReplaceAllString(strings.ToUpper(text), "")
	switch {
	case strings.Contains(cleaned, "K"):
		f, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, "K", ""), 64)
		if err != nil {
			return 0
		}
		return int(f * 1_000)
	case strings.Contains(cleaned, "M"):
		f, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, "M", ""), 64)
		if err != nil {
			return 0
		}
		return int(f * 1_000_000)
	default:
		n, err := strconv.Atoi(cleaned)
		if err != nil {
			return 0
		}
		return n
	}
}

// IsPartialType reports whether a content label denotes a fragment-only
// match rather than a full recitation.
func IsPartialType(label string) bool {
	folded := engine.Fold(label)
	return strings.Contains(folded, "fragmento") || strings.Contains(folded, "parcial")
}
