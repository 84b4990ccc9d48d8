package models

import "gorm.io/gorm"

type Tag struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	NameSlug string `json:"name_slug" gorm:"index;not null"`
	Color    string `json:"color" gorm:"default:''"`
}

// TagSnapshot is the frozen copy of a tag stored on a course at creation
// time. Later tag edits do not change a published course's displayed tags.
type TagSnapshot struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	NameSlug string `json:"name_slug"`
	Color    string `json:"color"`
}
