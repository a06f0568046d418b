package locale

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"he":    LanguageHebrew,
		"he-IL": LanguageHebrew,
		"iw":    LanguageHebrew,
		"HE":    LanguageHebrew,
		"en":    LanguageEnglish,
		"en-US": LanguageEnglish,
		"fr":    "",
		"":      "",
	}
	for raw, want := range cases {
		if got := NormalizeLanguage(raw); got != want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestLanguageFromAcceptLanguage(t *testing.T) {
	if got := LanguageFromAcceptLanguage("he-IL,he;q=0.9,en-US;q=0.8"); got != LanguageHebrew {
		t.Fatalf("expected Hebrew, got %q", got)
	}
	if got := LanguageFromAcceptLanguage("en-GB,en;q=0.9"); got != LanguageEnglish {
		t.Fatalf("expected English, got %q", got)
	}
	if got := LanguageFromAcceptLanguage(""); got != "" {
		t.Fatalf("expected no preference, got %q", got)
	}
}

func TestPreferenceForLanguageDefaultsToRTLHebrew(t *testing.T) {
	pref := PreferenceForLanguage("")
	if pref.Language != LanguageHebrew || pref.Dir != "rtl" {
		t.Fatalf("expected RTL Hebrew default, got %+v", pref)
	}

	pref = PreferenceForLanguage("fr")
	if pref.Language != LanguageHebrew {
		t.Fatalf("unknown language should fall back to Hebrew, got %+v", pref)
	}
}

func TestPreferenceForEnglish(t *testing.T) {
	pref := PreferenceForLanguage("en")
	if pref.Dir != "ltr" || pref.HTMLLang != "en-US" {
		t.Fatalf("unexpected English preference: %+v", pref)
	}
}
