package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/biochemsafety/site/internal/content"
	"github.com/biochemsafety/site/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrContentBlockNotFound = errors.New("content block not found")
	ErrContentFieldsMissing = errors.New("page and section are required")
)

// richTextPolicy scrubs incoming editor HTML on the write path. Lists,
// emphasis and relative links pass through untouched.
var richTextPolicy = bluemonday.UGCPolicy()

// SanitizeRichText scrubs an HTML payload produced by the rich-text editor.
func SanitizeRichText(html string) string {
	return richTextPolicy.Sanitize(html)
}

// ContentBlockInput carries admin-entered content block fields.
type ContentBlockInput struct {
	Page    string `json:"page"`
	Section string `json:"section"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// ContentService is the only mutation path for content blocks. Reads go
// through an optional Redis cache keyed by (page, section); every write
// invalidates the touched section key and the page-wide key wholesale.
type ContentService struct {
	db       *gorm.DB
	cache    *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewContentService constructs a ContentService without caching.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb, cacheTTL: 5 * time.Minute, log: zerolog.Nop()}
}

// SetCache attaches a Redis read cache; nil disables caching.
func (s *ContentService) SetCache(client *redis.Client) {
	s.cache = client
}

// SetLogger replaces the no-op logger.
func (s *ContentService) SetLogger(log zerolog.Logger) {
	s.log = log
}

func cacheKey(page, section string) string {
	return fmt.Sprintf("content:%s:%s", page, section)
}

// List returns the blocks matching page (and section when non-empty) in
// ascending order, ties broken by id, which is insertion order.
func (s *ContentService) List(ctx context.Context, page, section string) ([]db.ContentBlock, error) {
	if cached, ok := s.cacheGet(ctx, cacheKey(page, section)); ok {
		return cached, nil
	}

	query := s.db.WithContext(ctx).Where("page = ?", page)
	if section != "" {
		query = query.Where("section = ?", section)
	}

	var records []db.ContentBlock
	if err := query.Order("display_order ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list content blocks: %w", err)
	}

	s.cacheSet(ctx, cacheKey(page, section), records)
	return records, nil
}

// ListAll returns every block for the raw admin editor, grouped by key.
func (s *ContentService) ListAll(ctx context.Context) ([]db.ContentBlock, error) {
	var records []db.ContentBlock
	if err := s.db.WithContext(ctx).
		Order("page ASC, section ASC, display_order ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list content blocks: %w", err)
	}
	return records, nil
}

// Create stores a new block. Page and section are required.
func (s *ContentService) Create(ctx context.Context, input ContentBlockInput) (*db.ContentBlock, error) {
	if strings.TrimSpace(input.Page) == "" || strings.TrimSpace(input.Section) == "" {
		return nil, ErrContentFieldsMissing
	}

	record := db.ContentBlock{
		Page:    strings.TrimSpace(input.Page),
		Section: strings.TrimSpace(input.Section),
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
		Order:   input.Order,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create content block: %w", err)
	}

	s.invalidate(ctx, record.Page, record.Section)
	return &record, nil
}

// Update mutates an existing block in place.
func (s *ContentService) Update(ctx context.Context, id uint, input ContentBlockInput) (*db.ContentBlock, error) {
	record, err := s.byID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPage, oldSection := record.Page, record.Section
	if strings.TrimSpace(input.Page) != "" {
		record.Page = strings.TrimSpace(input.Page)
	}
	if strings.TrimSpace(input.Section) != "" {
		record.Section = strings.TrimSpace(input.Section)
	}
	record.Title = strings.TrimSpace(input.Title)
	record.Content = input.Content
	record.Order = input.Order

	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, fmt.Errorf("update content block: %w", err)
	}

	s.invalidate(ctx, oldPage, oldSection)
	s.invalidate(ctx, record.Page, record.Section)
	return record, nil
}

// UpdateContent replaces only the payload of an existing block.
func (s *ContentService) UpdateContent(ctx context.Context, id uint, payload string) (*db.ContentBlock, error) {
	record, err := s.byID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Content = payload
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, fmt.Errorf("update content block: %w", err)
	}

	s.invalidate(ctx, record.Page, record.Section)
	return record, nil
}

// Delete removes a block. Blocks are only ever deleted explicitly.
func (s *ContentService) Delete(ctx context.Context, id uint) error {
	record, err := s.byID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Unscoped().Delete(record).Error; err != nil {
		return fmt.Errorf("delete content block: %w", err)
	}

	s.invalidate(ctx, record.Page, record.Section)
	return nil
}

// SaveField creates or updates the block addressed by (page, section, title).
// A previously-unset field is only created when a value was actually entered;
// the returned block is nil when nothing needed saving.
func (s *ContentService) SaveField(ctx context.Context, page, section, title, value string) (*db.ContentBlock, error) {
	existing, err := s.firstMatch(ctx, page, section, title)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return s.UpdateContent(ctx, existing.ID, value)
	}
	if value == "" {
		return nil, nil
	}
	return s.Create(ctx, ContentBlockInput{Page: page, Section: section, Title: title, Content: value})
}

// SaveListSection persists a list-family section. Whatever the caller hands
// in is normalized to the canonical HTML string first, so a legacy JSON-array
// payload migrates on its first save and never comes back.
func (s *ContentService) SaveListSection(ctx context.Context, page, section, payload string) (*db.ContentBlock, error) {
	canonical := SanitizeRichText(content.NormalizeListPayload(payload))
	return s.saveSection(ctx, page, section, content.EncodeListPayload(canonical))
}

// SaveStructuredSection persists a structured-family section as JSON.
func (s *ContentService) SaveStructuredSection(ctx context.Context, page, section string, v any) (*db.ContentBlock, error) {
	encoded, err := content.EncodeStructuredPayload(v)
	if err != nil {
		return nil, err
	}
	return s.saveSection(ctx, page, section, encoded)
}

func (s *ContentService) saveSection(ctx context.Context, page, section, payload string) (*db.ContentBlock, error) {
	existing, err := s.firstMatch(ctx, page, section, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.UpdateContent(ctx, existing.ID, payload)
	}
	return s.Create(ctx, ContentBlockInput{Page: page, Section: section, Title: section, Content: payload})
}

func (s *ContentService) byID(ctx context.Context, id uint) (*db.ContentBlock, error) {
	var record db.ContentBlock
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentBlockNotFound
		}
		return nil, fmt.Errorf("load content block: %w", err)
	}
	return &record, nil
}

// firstMatch picks the lowest-order block for a key, nil when absent.
func (s *ContentService) firstMatch(ctx context.Context, page, section, title string) (*db.ContentBlock, error) {
	query := s.db.WithContext(ctx).Where("page = ? AND section = ?", page, section)
	if title != "" {
		query = query.Where("title = ?", title)
	}

	var record db.ContentBlock
	if err := query.Order("display_order ASC, id ASC").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find content block: %w", err)
	}
	return &record, nil
}

// Cache plumbing. The cache is best effort: any Redis problem degrades to a
// direct store read and is logged, never surfaced.

func (s *ContentService) cacheGet(ctx context.Context, key string) ([]db.ContentBlock, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Debug().Err(err).Str("key", key).Msg("content cache read failed")
		}
		return nil, false
	}

	var records []db.ContentBlock
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("content cache entry malformed")
		return nil, false
	}
	return records, true
}

func (s *ContentService) cacheSet(ctx context.Context, key string, records []db.ContentBlock) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("content cache write failed")
	}
}

func (s *ContentService) invalidate(ctx context.Context, page, section string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey(page, section), cacheKey(page, "")).Err(); err != nil {
		s.log.Debug().Err(err).Str("page", page).Str("section", section).Msg("content cache invalidation failed")
	}
}

// Blocks converts store records to the resolver's view, preserving order.
func Blocks(records []db.ContentBlock) []content.Block {
	blocks := make([]content.Block, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, content.Block{
			ID:      r.ID,
			Page:    r.Page,
			Section: r.Section,
			Title:   r.Title,
			Content: r.Content,
			Order:   r.Order,
		})
	}
	return blocks
}
