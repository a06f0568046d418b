package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PayloadKind discriminates the two list-family payload encodings.
type PayloadKind int

const (
	// PayloadLegacyList is the superseded JSON-array-of-strings encoding.
	PayloadLegacyList PayloadKind = iota
	// PayloadCanonicalHTML is the current encoding: a single HTML string
	// containing a list element.
	PayloadCanonicalHTML
)

// ListContent is the result of classifying a list-family payload. HTML always
// holds the canonical form regardless of how the payload was stored.
type ListContent struct {
	Kind PayloadKind
	HTML string
}

// ClassifyList probes a stored list-family payload and normalizes it to
// canonical HTML. A JSON sequence is the legacy encoding and gets wrapped
// item by item; a JSON string is the canonical HTML as the editor saved it;
// anything else, including strings that are not valid JSON at all, is taken
// as raw HTML. Items pass through verbatim so inline markup survives.
func ClassifyList(raw string) ListContent {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return ListContent{Kind: PayloadCanonicalHTML, HTML: raw}
	}

	switch v := decoded.(type) {
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
				continue
			}
			items = append(items, fmt.Sprint(item))
		}
		return ListContent{Kind: PayloadLegacyList, HTML: WrapList(items)}
	case string:
		return ListContent{Kind: PayloadCanonicalHTML, HTML: v}
	default:
		return ListContent{Kind: PayloadCanonicalHTML, HTML: raw}
	}
}

// WrapList synthesizes the canonical HTML list from plain items, preserving
// order. Items are not escaped: limited inline HTML such as emphasis tags
// must survive the migration byte for byte.
func WrapList(items []string) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(item)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// NormalizeListPayload performs the one-way read-side migration: whatever the
// stored encoding, the result is the canonical HTML string. Applying it to an
// already-canonical payload is a no-op, so a payload saved once never reverts
// to the legacy array form.
func NormalizeListPayload(raw string) string {
	return ClassifyList(raw).HTML
}

// EncodeListPayload serializes canonical HTML for storage. The store column
// always holds JSON, so the HTML string is JSON-encoded; the legacy array
// form is never written.
func EncodeListPayload(html string) string {
	encoded, err := json.Marshal(html)
	if err != nil {
		// Marshalling a string cannot fail; keep the raw HTML as a safety net.
		return html
	}
	return string(encoded)
}

// EncodeStructuredPayload serializes a structured-family value for storage.
func EncodeStructuredPayload(v any) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode structured payload: %w", err)
	}
	return string(encoded), nil
}
