// Package i18n selects the right localized variant of a trilingual field.
//
// Records carry a default (Russian) value plus optional Kazakh and English
// variants. An empty variant falls back to the default value.
package i18n

import "strings"

const (
	LangKZ = "kz"
	LangRU = "ru"
	LangEN = "en"

	DefaultLang = LangKZ
)

// Supported reports whether lang is one of the serving languages.
func Supported(lang string) bool {
	switch lang {
	case LangKZ, LangRU, LangEN:
		return true
	default:
		return false
	}
}

// Normalize lowercases lang and substitutes the default for unknown values.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !Supported(lang) {
		return DefaultLang
	}
	return lang
}

// Field picks the variant for lang, falling back to the default value.
// The default value is the Russian one, matching the upstream data source.
func Field(value, valueKZ, valueEN, lang string) string {
	switch Normalize(lang) {
	case LangKZ:
		if valueKZ != "" {
			return valueKZ
		}
	case LangEN:
		if valueEN != "" {
			return valueEN
		}
	}
	return value
}
