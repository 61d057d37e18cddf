package captions

import (
	"github.com/abadojack/whatlanggo"

	"github.com/Steve-651/mcp-youtube/internal/model"
)

// defaultLanguage is assumed when detection is inconclusive: the adapter
// only requests English subtitle variants from yt-dlp.
const defaultLanguage = "en"

// DetectLanguage returns the majority ISO 639-1 language code across the
// segment texts. Empty input yields "unknown"; inconclusive detection falls
// back to "en" since only English variants are requested upstream.
func DetectLanguage(segments []model.TranscriptSegment) string {
	if len(segments) == 0 {
		return model.LanguageUnknown
	}

	counts := make(map[string]int)
	for _, seg := range segments {
		lang := whatlanggo.DetectLang(seg.Text).Iso6391()
		counts[lang]++
	}

	var topLang string
	var topCount int
	for lang, count := range counts {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}

	if topLang == "" {
		return defaultLanguage
	}
	return topLang
}
