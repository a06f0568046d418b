package handler

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/biochemsafety/site/internal/content"
	"github.com/biochemsafety/site/internal/links"
	"github.com/biochemsafety/site/internal/locale"
	"github.com/biochemsafety/site/internal/service"
	"github.com/gin-gonic/gin"
)

// blocksFor fetches the blocks backing a page or section. A store failure on
// the read path degrades to the compiled-in defaults rather than erroring
// the page.
func (a *API) blocksFor(c *gin.Context, page, section string) []content.Block {
	records, err := a.content.List(c.Request.Context(), page, section)
	if err != nil {
		a.log.Error().Err(err).Str("page", page).Str("section", section).Msg("content fetch failed, rendering defaults")
		return nil
	}
	return service.Blocks(records)
}

func (a *API) pagePreference(c *gin.Context) locale.Preference {
	lang := locale.NormalizeLanguage(c.Query("lang"))
	if lang == "" {
		lang = locale.LanguageFromAcceptLanguage(c.GetHeader("Accept-Language"))
	}
	return locale.PreferenceForLanguage(lang)
}

type contactView struct {
	Phone    string
	Email    string
	WhatsApp string
	LinkedIn string
}

func (a *API) contactInfo(c *gin.Context) contactView {
	blocks := a.blocksFor(c, "global", "contact-info")
	get := func(key string) string {
		return content.Resolve(blocks, "global", "contact-info", key, a.defaults.Text("global", "contact-info", key))
	}
	return contactView{
		Phone:    get("phone"),
		Email:    get("email"),
		WhatsApp: get("whatsapp"),
		LinkedIn: get("linkedin"),
	}
}

// ShowHome renders the landing page: hero, services grid and contact strip.
func (a *API) ShowHome(c *gin.Context) {
	hero := a.blocksFor(c, "home", "hero")
	heroField := func(title string) string {
		return content.Resolve(hero, "home", "hero", title, a.defaults.Text("home", "hero", title))
	}

	home := a.blocksFor(c, "home", "")
	contactTitle := content.Resolve(home, "home", "contact-title", "", a.defaults.Text("home", "contact-title", ""))
	contactSubtitle := content.Resolve(home, "home", "contact-subtitle", "", a.defaults.Text("home", "contact-subtitle", ""))

	services, err := a.catalog.List(c.Request.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("service list failed on home page")
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":           heroField("שם חברה"),
		"pref":            a.pagePreference(c),
		"fullName":        heroField("שם מלא"),
		"companyName":     heroField("שם חברה"),
		"roles":           []string{heroField("תפקיד 1"), heroField("תפקיד 2"), heroField("תפקיד 3"), heroField("תפקיד 4")},
		"contact":         a.contactInfo(c),
		"contactTitle":    contactTitle,
		"contactSubtitle": contactSubtitle,
		"services":        services,
	})
}

// ShowAbout renders the about page with full dual-format handling.
func (a *API) ShowAbout(c *gin.Context) {
	blocks := a.blocksFor(c, "about", "")

	company := content.ResolveCompany(blocks, a.defaults.Company())
	servicesHTML := content.ResolveListHTML(blocks, "about", "services", a.defaults.Items("about", "services"))
	professionalismHTML := content.ResolveListHTML(blocks, "about", "professionalism", a.defaults.Items("about", "professionalism"))
	education := content.ResolveEducation(blocks, a.defaults.Education())

	c.HTML(http.StatusOK, "about.html", gin.H{
		"title":               "אודות",
		"pref":                a.pagePreference(c),
		"company":             company,
		"servicesHTML":        template.HTML(servicesHTML),
		"professionalismHTML": template.HTML(professionalismHTML),
		"education":           education,
	})
}

// ShowServices renders the specialty-area listing.
func (a *API) ShowServices(c *gin.Context) {
	services, err := a.catalog.List(c.Request.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("service list failed")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title": "שגיאה",
			"pref":  a.pagePreference(c),
			"error": "טעינת תחומי ההתמחות נכשלה",
		})
		return
	}

	c.HTML(http.StatusOK, "services.html", gin.H{
		"title":    "תחומי התמחות",
		"pref":     a.pagePreference(c),
		"services": services,
	})
}

// ShowServiceDetail renders one specialty area, addressed by slug through
// the id query parameter.
func (a *API) ShowServiceDetail(c *gin.Context) {
	slug := strings.TrimSpace(c.Query("id"))
	if slug == "" {
		a.renderServiceNotFound(c)
		return
	}

	svc, err := a.catalog.BySlug(c.Request.Context(), slug)
	if err != nil {
		if err != service.ErrServiceNotFound {
			a.log.Error().Err(err).Str("slug", slug).Msg("service lookup failed")
		}
		a.renderServiceNotFound(c)
		return
	}

	c.HTML(http.StatusOK, "service_detail.html", gin.H{
		"title":     svc.Title,
		"pref":      a.pagePreference(c),
		"service":   svc,
		"shortHTML": template.HTML(links.RewriteInternal(svc.ShortDescription, a.legacyHosts...)),
		"fullHTML":  template.HTML(links.RewriteInternal(svc.FullDescription, a.legacyHosts...)),
		"benefits":  splitBenefits(svc.Benefits),
	})
}

func (a *API) renderServiceNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "service_not_found.html", gin.H{
		"title": "השירות לא נמצא",
		"pref":  a.pagePreference(c),
	})
}

// ShowContact renders the contact page.
func (a *API) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title":   "יצירת קשר",
		"pref":    a.pagePreference(c),
		"contact": a.contactInfo(c),
	})
}

// splitBenefits turns the newline-delimited benefits text into clean lines,
// dropping blanks and any author-typed leading bullet.
func splitBenefits(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		trimmed = strings.TrimSpace(strings.TrimLeft(trimmed, "•-"))
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// WhatsAppLink converts a local phone number into a wa.me link: dashes are
// stripped and the leading zero becomes the country prefix.
func WhatsAppLink(phone string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(phone), "-", "")
	digits = strings.ReplaceAll(digits, " ", "")
	if strings.HasPrefix(digits, "0") {
		digits = "972" + digits[1:]
	}
	return "https://wa.me/" + digits
}
