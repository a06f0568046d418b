package links

import (
	"strings"
	"testing"
)

func TestResolveTargetStaticPages(t *testing.T) {
	cases := map[string]string{
		"Home":     "/",
		"About":    "/about",
		"Services": "/services",
		"Contact":  "/contact",
	}
	for name, want := range cases {
		got, ok := ResolveTarget(name)
		if !ok || got != want {
			t.Fatalf("ResolveTarget(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}
}

func TestResolveTargetService(t *testing.T) {
	got, ok := ResolveTarget("service:chemical-safety")
	if !ok {
		t.Fatal("expected a resolved target")
	}
	if got != "/service-detail?id=chemical-safety" {
		t.Fatalf("unexpected service target: %q", got)
	}
}

func TestResolveTargetUnknown(t *testing.T) {
	if _, ok := ResolveTarget("Blog"); ok {
		t.Fatal("unknown selection should not resolve")
	}
	if _, ok := ResolveTarget("service:"); ok {
		t.Fatal("empty service slug should not resolve")
	}
}

func TestServiceDetailPathEscapesSlug(t *testing.T) {
	got := ServiceDetailPath("a b/c")
	if got != "/service-detail?id=a+b%2Fc" {
		t.Fatalf("slug not escaped: %q", got)
	}
}

func TestBuildAnchor(t *testing.T) {
	anchor, ok := BuildAnchor("לחצו כאן", "service:chemical-safety")
	if !ok {
		t.Fatal("expected an anchor")
	}
	if !strings.Contains(anchor, `href="/service-detail?id=chemical-safety"`) {
		t.Fatalf("missing href: %q", anchor)
	}
	if !strings.Contains(anchor, ">לחצו כאן<") {
		t.Fatalf("missing label: %q", anchor)
	}
}

func TestBuildAnchorEscapesLabel(t *testing.T) {
	anchor, ok := BuildAnchor(`<script>`, "Home")
	if !ok {
		t.Fatal("expected an anchor")
	}
	if strings.Contains(anchor, "<script>") {
		t.Fatalf("label not escaped: %q", anchor)
	}
}

func TestBuildAnchorEmptyGates(t *testing.T) {
	if _, ok := BuildAnchor("", "Home"); ok {
		t.Fatal("empty label must not insert")
	}
	if _, ok := BuildAnchor("   ", "Home"); ok {
		t.Fatal("blank label must not insert")
	}
	if _, ok := BuildAnchor("תווית", ""); ok {
		t.Fatal("empty selection must not insert")
	}
}

func TestRewriteInternalRelativizesKnownHosts(t *testing.T) {
	in := `<a href="https://www.biochemsafety.com/services" target="_blank">שירותים</a>`
	got := RewriteInternal(in, "www.biochemsafety.com")

	if !strings.Contains(got, `href="/services"`) {
		t.Fatalf("internal href not relativized: %q", got)
	}
	if strings.Contains(got, `target="_blank"`) {
		t.Fatalf("internal link kept target: %q", got)
	}
}

func TestRewriteInternalLeavesExternalLinks(t *testing.T) {
	in := `<a href="https://example.org/page" target="_blank">חיצוני</a>`
	got := RewriteInternal(in, "www.biochemsafety.com")

	if got != in {
		t.Fatalf("external link modified: %q", got)
	}
}

func TestRewriteInternalBareOrigin(t *testing.T) {
	in := `<a href="https://www.biochemsafety.com">בית</a>`
	got := RewriteInternal(in, "www.biochemsafety.com")

	if !strings.Contains(got, `href="/"`) {
		t.Fatalf("bare origin not rewritten to root: %q", got)
	}
}

func TestRewriteInternalNoHosts(t *testing.T) {
	in := `<a href="https://www.biochemsafety.com/services">שירותים</a>`
	if got := RewriteInternal(in); got != in {
		t.Fatalf("rewrite without hosts changed payload: %q", got)
	}
}
