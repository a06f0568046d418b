package locale

// Pick returns the text matching the request language, defaulting to Hebrew.
func Pick(language, hebrew, english string) string {
	if NormalizeLanguage(language) == LanguageEnglish {
		if english != "" {
			return english
		}
		return hebrew
	}
	if hebrew != "" {
		return hebrew
	}
	return english
}
