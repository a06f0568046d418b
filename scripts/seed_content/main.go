package main

import (
	"context"
	"fmt"
	"log"

	"github.com/biochemsafety/site/internal/config"
	"github.com/biochemsafety/site/internal/content"
	"github.com/biochemsafety/site/internal/db"
	"github.com/biochemsafety/site/internal/service"
)

// Seeds the store with the compiled-in fallback content and a starter set of
// specialty areas, so a fresh deployment has editable records instead of an
// empty panel. Existing records are left alone.
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("database init failed:", err)
	}

	defaults, err := content.LoadDefaults()
	if err != nil {
		log.Fatal("load fallback content:", err)
	}

	ctx := context.Background()
	contentService := service.NewContentService(db.DB)
	catalog := service.NewServiceCatalog(db.DB)

	seedContact(ctx, contentService, defaults)
	seedAbout(ctx, contentService, defaults)
	seedServices(ctx, catalog)

	fmt.Println("seed complete")
}

func seedContact(ctx context.Context, svc *service.ContentService, defaults *content.Defaults) {
	for _, field := range []string{"phone", "email", "whatsapp", "linkedin"} {
		value := defaults.Text("global", "contact-info", field)
		if value == "" {
			continue
		}
		if _, err := svc.SaveField(ctx, "global", "contact-info", field, value); err != nil {
			log.Fatalf("seed contact field %s: %v", field, err)
		}
	}
}

func seedAbout(ctx context.Context, svc *service.ContentService, defaults *content.Defaults) {
	if _, err := svc.SaveStructuredSection(ctx, "about", "company", defaults.Company()); err != nil {
		log.Fatal("seed company section:", err)
	}
	for _, section := range []string{"services", "professionalism"} {
		html := content.WrapList(defaults.Items("about", section))
		if _, err := svc.SaveListSection(ctx, "about", section, html); err != nil {
			log.Fatalf("seed %s section: %v", section, err)
		}
	}
	if _, err := svc.SaveStructuredSection(ctx, "about", "education", defaults.Education()); err != nil {
		log.Fatal("seed education section:", err)
	}
}

func seedServices(ctx context.Context, catalog *service.ServiceCatalog) {
	existing, err := catalog.List(ctx)
	if err != nil {
		log.Fatal("list services:", err)
	}
	if len(existing) > 0 {
		fmt.Println("services already present, skipping")
		return
	}

	starters := []service.ServiceInput{
		{
			Slug:             "occupational-safety",
			Title:            "ממונה בטיחות בעבודה",
			ShortDescription: "<p>ליווי שוטף של מפעלים ואתרי עבודה בניהול הבטיחות.</p>",
			Order:            1,
		},
		{
			Slug:             "chemical-safety",
			Title:            "בטיחות כימית",
			ShortDescription: "<p>הערכת סיכונים כימיים, גיליונות בטיחות והדרכות עובדים.</p>",
			Order:            2,
		},
		{
			Slug:             "risk-surveys",
			Title:            "סקרי סיכונים",
			ShortDescription: "<p>סקרי סיכונים תעסוקתיים בהתאם לדרישות התקנות.</p>",
			Order:            3,
		},
	}
	for _, input := range starters {
		if _, err := catalog.Create(ctx, input); err != nil {
			log.Fatalf("seed service %s: %v", input.Slug, err)
		}
	}
	fmt.Printf("created %d starter services\n", len(starters))
}
