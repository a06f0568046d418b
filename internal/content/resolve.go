package content

import (
	"encoding/json"
	"strings"
)

// pick returns the matching block with the lowest Order, ties broken by the
// original slice position. title == "" matches any title.
func pick(blocks []Block, page, section, title string) (Block, bool) {
	var best Block
	found := false
	for _, b := range blocks {
		if b.Page != page || b.Section != section {
			continue
		}
		if title != "" && b.Title != title {
			continue
		}
		if !found || b.Order < best.Order {
			best = b
			found = true
		}
	}
	return best, found
}

// Resolve returns the stored content for (page, section, title), or fallback
// when no record matches. A matched record with empty content also falls
// back: the admin panel never distinguishes "unset" from "set to nothing".
// Resolve is pure; resolving the same inputs twice yields the same output.
func Resolve(blocks []Block, page, section, title, fallback string) string {
	b, ok := pick(blocks, page, section, title)
	if !ok || b.Content == "" {
		return fallback
	}
	return b.Content
}

// ResolveJSON decodes a structured-family payload into T. Absence or decode
// failure substitutes fallback wholesale; there is no partial recovery of
// individual fields and no error is ever surfaced.
func ResolveJSON[T any](blocks []Block, page, section, title string, fallback T) T {
	b, ok := pick(blocks, page, section, title)
	if !ok || strings.TrimSpace(b.Content) == "" {
		return fallback
	}
	var decoded T
	if err := json.Unmarshal([]byte(b.Content), &decoded); err != nil {
		return fallback
	}
	return decoded
}

// ResolveListHTML resolves a list-family section to canonical HTML. A missing
// or empty record yields the defaults wrapped as a list; an empty default
// yields the empty canonical wrapping, never an error.
func ResolveListHTML(blocks []Block, page, section string, fallbackItems []string) string {
	b, ok := pick(blocks, page, section, "")
	if !ok || b.Content == "" {
		return WrapList(fallbackItems)
	}
	return ClassifyList(b.Content).HTML
}

// ResolveCompany overlays a stored company payload on the compiled-in default
// field by field: a record supplying only some fields keeps the default for
// the rest.
func ResolveCompany(blocks []Block, def CompanyInfo) CompanyInfo {
	stored := ResolveJSON(blocks, "about", "company", "", CompanyInfo{})
	return stored.withDefaults(def)
}

// ResolveEducation resolves the education entries wholesale: absence or any
// decode problem substitutes the full default sequence.
func ResolveEducation(blocks []Block, def []EducationEntry) []EducationEntry {
	return ResolveJSON(blocks, "about", "education", "", def)
}
