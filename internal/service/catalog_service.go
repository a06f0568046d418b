package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/biochemsafety/site/internal/db"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceFieldsMissing = errors.New("title, slug and short description are required")
)

// ServiceInput carries admin-entered service fields. Rich-text fields arrive
// as editor HTML and are sanitized before storage.
type ServiceInput struct {
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	FullDescription  string `json:"full_description"`
	Benefits         string `json:"benefits"`
	Process          string `json:"process"`
	IconURL          string `json:"icon_url"`
	ImageURL         string `json:"image_url"`
	Order            int    `json:"order"`
}

// ServiceCatalog provides access to the offered specialty areas. The public
// site only reads; all mutations come from the management panel.
type ServiceCatalog struct {
	db *gorm.DB
}

// NewServiceCatalog returns a new ServiceCatalog instance.
func NewServiceCatalog(gdb *gorm.DB) *ServiceCatalog {
	return &ServiceCatalog{db: gdb}
}

// List returns every service in display order, ties broken by id.
func (c *ServiceCatalog) List(ctx context.Context) ([]db.Service, error) {
	var services []db.Service
	if err := c.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// BySlug fetches a service for a given slug. Slug uniqueness is not enforced
// by the store, so duplicates resolve to the first match in display order.
func (c *ServiceCatalog) BySlug(ctx context.Context, slug string) (*db.Service, error) {
	var svc db.Service
	if err := c.db.WithContext(ctx).
		Where("slug = ?", slug).
		Order("display_order ASC, id ASC").
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("load service %q: %w", slug, err)
	}
	return &svc, nil
}

// ByID fetches a service by its store identity.
func (c *ServiceCatalog) ByID(ctx context.Context, id uint) (*db.Service, error) {
	var svc db.Service
	if err := c.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("load service %d: %w", id, err)
	}
	return &svc, nil
}

// Create validates and stores a new service.
func (c *ServiceCatalog) Create(ctx context.Context, input ServiceInput) (*db.Service, error) {
	sanitized, err := sanitizeServiceInput(input)
	if err != nil {
		return nil, err
	}

	svc := db.Service{
		Slug:             sanitized.Slug,
		Title:            sanitized.Title,
		ShortDescription: sanitized.ShortDescription,
		FullDescription:  sanitized.FullDescription,
		Benefits:         sanitized.Benefits,
		Process:          sanitized.Process,
		IconURL:          sanitized.IconURL,
		ImageURL:         sanitized.ImageURL,
		Order:            sanitized.Order,
	}
	if err := c.db.WithContext(ctx).Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &svc, nil
}

// Update mutates an existing service in place.
func (c *ServiceCatalog) Update(ctx context.Context, id uint, input ServiceInput) (*db.Service, error) {
	svc, err := c.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sanitized, err := sanitizeServiceInput(input)
	if err != nil {
		return nil, err
	}

	svc.Slug = sanitized.Slug
	svc.Title = sanitized.Title
	svc.ShortDescription = sanitized.ShortDescription
	svc.FullDescription = sanitized.FullDescription
	svc.Benefits = sanitized.Benefits
	svc.Process = sanitized.Process
	svc.IconURL = sanitized.IconURL
	svc.ImageURL = sanitized.ImageURL
	svc.Order = sanitized.Order

	if err := c.db.WithContext(ctx).Save(svc).Error; err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return svc, nil
}

// Delete removes a service permanently.
func (c *ServiceCatalog) Delete(ctx context.Context, id uint) error {
	svc, err := c.ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := c.db.WithContext(ctx).Unscoped().Delete(svc).Error; err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func sanitizeServiceInput(input ServiceInput) (ServiceInput, error) {
	out := input
	out.Slug = strings.TrimSpace(input.Slug)
	out.Title = strings.TrimSpace(input.Title)
	out.ShortDescription = SanitizeRichText(input.ShortDescription)
	out.FullDescription = SanitizeRichText(input.FullDescription)

	if out.Title == "" || out.Slug == "" || strings.TrimSpace(out.ShortDescription) == "" {
		return ServiceInput{}, ErrServiceFieldsMissing
	}
	return out, nil
}
