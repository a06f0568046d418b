package content

import "testing"

func TestLoadDefaultsContactInfo(t *testing.T) {
	defaults, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults returned error: %v", err)
	}

	if got := defaults.Text("global", "contact-info", "phone"); got != "053-735-8888" {
		t.Fatalf("unexpected default phone: %q", got)
	}
	if got := defaults.Text("global", "contact-info", "email"); got == "" {
		t.Fatal("expected a default email")
	}
}

func TestLoadDefaultsHeroFields(t *testing.T) {
	defaults, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults returned error: %v", err)
	}

	for _, title := range []string{"שם מלא", "שם חברה", "תפקיד 1", "תפקיד 2", "תפקיד 3", "תפקיד 4"} {
		if defaults.Text("home", "hero", title) == "" {
			t.Fatalf("missing hero default for %q", title)
		}
	}
}

func TestLoadDefaultsAboutSections(t *testing.T) {
	defaults, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults returned error: %v", err)
	}

	company := defaults.Company()
	if company.Name == "" || company.Founder == "" {
		t.Fatalf("incomplete company defaults: %+v", company)
	}

	if len(defaults.Items("about", "services")) == 0 {
		t.Fatal("expected default service items")
	}
	if len(defaults.Items("about", "professionalism")) == 0 {
		t.Fatal("expected default professionalism items")
	}
	if len(defaults.Education()) == 0 {
		t.Fatal("expected default education entries")
	}
}
