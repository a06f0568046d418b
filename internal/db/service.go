package db

import "gorm.io/gorm"

// Service describes one offered specialty area shown on the public site.
// Slug is intended to be unique but the store does not enforce it; readers
// take the first match ordered by Order.
type Service struct {
	gorm.Model
	Slug             string `gorm:"size:120;not null;index" json:"slug"`
	Title            string `gorm:"size:200;not null" json:"title"`
	ShortDescription string `gorm:"type:text;not null" json:"short_description"`
	FullDescription  string `gorm:"type:text" json:"full_description"`
	Benefits         string `gorm:"type:text" json:"benefits"`
	Process          string `gorm:"type:text" json:"process"`
	IconURL          string `gorm:"size:500" json:"icon_url"`
	ImageURL         string `gorm:"size:500" json:"image_url"`
	Order            int    `gorm:"column:display_order;default:0" json:"order"`
}
