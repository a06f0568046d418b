package links

import (
	"regexp"
	"strings"
)

var (
	absoluteHrefPattern = regexp.MustCompile(`href="(https?://[^/"]+)(/[^"]*)?"`)
	blankTargetPattern  = regexp.MustCompile(`(<a\b[^>]*?)\s+target="_blank"([^>]*>)`)
)

// RewriteInternal converts absolute hrefs that point at any of the given
// hosts into root-relative paths and strips target="_blank" from those links,
// so content authored against an old deployment domain keeps working. hosts
// entries are bare host names, e.g. "www.biochemsafety.com".
func RewriteInternal(htmlStr string, hosts ...string) string {
	if htmlStr == "" {
		return htmlStr
	}

	hostSet := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		h = strings.TrimSpace(strings.ToLower(h))
		if h != "" {
			hostSet[h] = struct{}{}
		}
	}
	if len(hostSet) == 0 {
		return htmlStr
	}

	result := absoluteHrefPattern.ReplaceAllStringFunc(htmlStr, func(match string) string {
		groups := absoluteHrefPattern.FindStringSubmatch(match)
		origin, path := groups[1], groups[2]
		host := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://"))
		if _, ok := hostSet[host]; !ok {
			return match
		}
		if path == "" {
			path = "/"
		}
		return `href="` + path + `"`
	})

	// Internal links open in place; only links that stayed absolute keep
	// their target attribute.
	result = blankTargetPattern.ReplaceAllStringFunc(result, func(match string) string {
		if strings.Contains(match, `href="http://`) || strings.Contains(match, `href="https://`) {
			return match
		}
		return blankTargetPattern.ReplaceAllString(match, "$1$2")
	})

	return result
}
