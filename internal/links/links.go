// Package links maps logical link targets picked in the admin editor to
// canonical internal URLs, and rewrites internal links inside stored rich
// HTML so they stay relative to the serving host.
package links

import (
	"html"
	"net/url"
	"strings"
)

// ServiceTargetPrefix tags a service reference in a link-target selection.
const ServiceTargetPrefix = "service:"

// staticPages enumerates the fixed targets offered by the link picker.
var staticPages = map[string]string{
	"Home":     "/",
	"About":    "/about",
	"Services": "/services",
	"Contact":  "/contact",
}

// ServiceDetailPath builds the public detail URL for a service. The literal
// slug travels as a query parameter, never the numeric id.
func ServiceDetailPath(slug string) string {
	return "/service-detail?id=" + url.QueryEscape(slug)
}

// ResolveTarget maps a selection — a static page identifier or a tagged
// service reference ("service:<slug>") — to its canonical root-relative URL.
func ResolveTarget(selection string) (string, bool) {
	if strings.HasPrefix(selection, ServiceTargetPrefix) {
		slug := strings.TrimPrefix(selection, ServiceTargetPrefix)
		if slug == "" {
			return "", false
		}
		return ServiceDetailPath(slug), true
	}
	target, ok := staticPages[selection]
	return target, ok
}

// StaticTargets lists the fixed pages for the picker, in display order.
func StaticTargets() []struct{ Name, Label string } {
	return []struct{ Name, Label string }{
		{"Home", "דף הבית"},
		{"About", "אודות"},
		{"Services", "תחומי התמחות"},
		{"Contact", "יצירת קשר"},
	}
}

// BuildAnchor produces the anchor element to insert into the rich-text
// payload. An empty selection or empty label yields no insertion; that is a
// validation gate, not an error.
func BuildAnchor(label, selection string) (string, bool) {
	if strings.TrimSpace(label) == "" {
		return "", false
	}
	href, ok := ResolveTarget(selection)
	if !ok {
		return "", false
	}
	return `<a href="` + href + `">` + html.EscapeString(label) + `</a>`, true
}
