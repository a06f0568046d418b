package handler

import (
	"net/url"

	"github.com/biochemsafety/site/internal/auth"
	"github.com/biochemsafety/site/internal/content"
	"github.com/biochemsafety/site/internal/service"
	"github.com/biochemsafety/site/internal/storage"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	content  *service.ContentService
	catalog  *service.ServiceCatalog
	store    storage.ObjectStore
	defaults *content.Defaults
	notifier *auth.Notifier
	log      zerolog.Logger

	serviceEdits *service.EditManager[service.ServiceDraft]
	aboutEdits   *service.EditManager[service.AboutSectionDraft]
	contactEdits *service.EditManager[service.ContactDraft]

	legacyHosts []string
}

// Options carries the optional collaborators for NewAPI.
type Options struct {
	Store       storage.ObjectStore
	Notifier    *auth.Notifier
	Logger      zerolog.Logger
	SiteBaseURL string
	LegacyHosts []string
}

// NewAPI constructs a handler set with shared services. The edit managers
// hold their auth subscription until Close.
func NewAPI(gdb *gorm.DB, defaults *content.Defaults, opts Options) *API {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = auth.NewNotifier()
	}

	contentService := service.NewContentService(gdb)
	contentService.SetLogger(opts.Logger)

	api := &API{
		db:       gdb,
		content:  contentService,
		catalog:  service.NewServiceCatalog(gdb),
		store:    opts.Store,
		defaults: defaults,
		notifier: notifier,
		log:      opts.Logger,

		serviceEdits: service.NewEditManager(service.CloneServiceDraft),
		aboutEdits:   service.NewEditManager(service.CloneAboutSectionDraft),
		contactEdits: service.NewEditManager(service.CloneContactDraft),

		legacyHosts: internalHosts(opts.SiteBaseURL, opts.LegacyHosts),
	}

	for _, bind := range []interface{ Bind(*auth.Notifier) }{
		api.serviceEdits, api.aboutEdits, api.contactEdits,
	} {
		bind.Bind(notifier)
	}
	api.serviceEdits.SetLogger(opts.Logger)
	api.aboutEdits.SetLogger(opts.Logger)
	api.contactEdits.SetLogger(opts.Logger)

	return api
}

// Close releases the edit managers' auth subscriptions.
func (a *API) Close() {
	a.serviceEdits.Close()
	a.aboutEdits.Close()
	a.contactEdits.Close()
}

// ContentService exposes the content service for tests and scripts.
func (a *API) ContentService() *service.ContentService {
	return a.content
}

// Notifier exposes the auth-state notifier.
func (a *API) Notifier() *auth.Notifier {
	return a.notifier
}

func internalHosts(siteBaseURL string, legacy []string) []string {
	hosts := append([]string(nil), legacy...)
	if parsed, err := url.Parse(siteBaseURL); err == nil && parsed.Host != "" {
		hosts = append(hosts, parsed.Host)
	}
	return hosts
}
