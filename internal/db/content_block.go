package db

import "gorm.io/gorm"

// ContentBlock is a page/section/title-addressed unit of editable content.
// Content is an opaque string: plain text, a JSON-encoded structure, or HTML.
// The (page, section, title) tuple is the lookup key but uniqueness is not
// enforced; readers must pick the lowest Order among duplicates.
type ContentBlock struct {
	gorm.Model
	Page    string `gorm:"size:50;not null;index:idx_content_page_section" json:"page"`
	Section string `gorm:"size:80;not null;index:idx_content_page_section" json:"section"`
	Title   string `gorm:"size:120" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Order   int    `gorm:"column:display_order;default:0" json:"order"`
}

// TableName keeps the table name aligned with the original store schema.
func (ContentBlock) TableName() string {
	return "content_blocks"
}
