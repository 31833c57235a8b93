package round

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Round keys are a closed vocabulary the knockout views are built on.
// Stage names arrive as free text in Kazakh, Russian and English, so the
// classifier works over all three names at once and falls back to a slug
// when nothing matches.
const (
	Key1of32    = "1_32"
	Key1of16    = "1_16"
	Key1of8     = "1_8"
	Key1of4     = "1_4"
	Key1of2     = "1_2"
	KeyFinal    = "final"
	Key3rdPlace = "3rd_place"
	KeyOther    = "other"
)

var (
	fractionRe   = regexp.MustCompile(`1\s*/\s*(32|16|8|4|2)\b`)
	finalWordRe  = regexp.MustCompile(`\bfinal\b`)
	tourRe       = regexp.MustCompile(`(?:тур|tour|round)\s*(\d+)`)
	groupRe      = regexp.MustCompile(`(?:группа|group|топ)\s*([a-zа-я0-9]+)`)
	slugStripRe  = regexp.MustCompile(`[^a-z0-9]+`)
	roundOfPairs = []struct {
		marker string
		key    string
	}{
		{"round of 64", Key1of32},
		{"round of 32", Key1of16},
		{"round of 16", Key1of8},
	}
)

// Classify maps a stage's names onto a round key. Rules are checked in
// order over the lowercase concatenation of all three names; the first
// match wins.
func Classify(stageID int64, name, nameKZ, nameEN string) string {
	text := strings.ToLower(strings.TrimSpace(strings.Join([]string{name, nameKZ, nameEN}, " ")))

	if m := fractionRe.FindStringSubmatch(text); m != nil {
		return "1_" + m[1]
	}

	for _, p := range roundOfPairs {
		if strings.Contains(text, p.marker) {
			return p.key
		}
	}
	switch {
	case strings.Contains(text, "quarter"),
		strings.Contains(text, "четверть"),
		strings.Contains(text, "ширек"):
		return Key1of4
	case strings.Contains(text, "semi"),
		strings.Contains(text, "полуфин"),
		strings.Contains(text, "жартылай"):
		return Key1of2
	}

	if isThirdPlace(text) {
		return Key3rdPlace
	}

	// Cyrillic "финал" needs token matching: regexp's \b is ASCII-only and
	// would also hit the tail of "полуфинал".
	if finalWordRe.MatchString(text) || hasTokenWithPrefix(text, "финал") {
		return KeyFinal
	}

	if m := tourRe.FindStringSubmatch(text); m != nil {
		return "group_" + m[1]
	}
	if m := groupRe.FindStringSubmatch(text); m != nil {
		return "group_" + m[1]
	}

	// Only the primary name is slugged; the other languages are spelling
	// variants of it, not fallbacks.
	for _, n := range []string{name, nameKZ, nameEN} {
		if strings.TrimSpace(n) == "" {
			continue
		}
		if slug := strings.Trim(slugStripRe.ReplaceAllString(strings.ToLower(n), "_"), "_"); slug != "" {
			return slug
		}
		break
	}
	return fmt.Sprintf("stage_%d", stageID)
}

func isThirdPlace(text string) bool {
	if strings.Contains(text, "3rd") || strings.Contains(text, "third place") {
		return true
	}
	if strings.Contains(text, "за 3") {
		return true
	}
	if strings.Contains(text, "3") && strings.Contains(text, "мест") {
		return true
	}
	return strings.Contains(text, "үшінші орын")
}

func hasTokenWithPrefix(text, prefix string) bool {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	return false
}

// playoffOrder is the canonical display order of knockout rounds.
var playoffOrder = []string{Key1of32, Key1of16, Key1of8, Key1of4, Key1of2, Key3rdPlace, KeyFinal}

// PlayoffOrder returns the canonical knockout round order, earliest first.
func PlayoffOrder() []string {
	out := make([]string, len(playoffOrder))
	copy(out, playoffOrder)
	return out
}

// IsPlayoffKey reports whether key names a knockout round.
func IsPlayoffKey(key string) bool {
	switch key {
	case Key1of32, Key1of16, Key1of8, Key1of4, Key1of2, Key3rdPlace, KeyFinal:
		return true
	}
	return false
}

// labels are the Russian display names for knockout rounds.
var labels = map[string]string{
	Key1of32:    "1/32 финала",
	Key1of16:    "1/16 финала",
	Key1of8:     "1/8 финала",
	Key1of4:     "Четвертьфинал",
	Key1of2:     "Полуфинал",
	KeyFinal:    "Финал",
	Key3rdPlace: "За 3-е место",
}

// Label returns the display name for a knockout round key, or the key
// itself when it has no canonical label.
func Label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}
