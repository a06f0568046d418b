package locale

import "strings"

const (
	LanguageHebrew  = "he"
	LanguageEnglish = "en"
)

// Preference carries everything a template needs to render for a language,
// including text direction: the site is RTL-first.
type Preference struct {
	Language string
	Locale   string
	HTMLLang string
	Dir      string
}

func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "he") || strings.HasPrefix(trimmed, "iw") {
		return LanguageHebrew
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

func LanguageFromAcceptLanguage(header string) string {
	trimmed := strings.ToLower(strings.TrimSpace(header))
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "he") || strings.Contains(trimmed, "iw") {
		return LanguageHebrew
	}
	if strings.Contains(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

func PreferenceForLanguage(language string) Preference {
	if NormalizeLanguage(language) == LanguageEnglish {
		return Preference{Language: LanguageEnglish, Locale: "en_US", HTMLLang: "en-US", Dir: "ltr"}
	}
	return Preference{Language: LanguageHebrew, Locale: "he_IL", HTMLLang: "he-IL", Dir: "rtl"}
}
