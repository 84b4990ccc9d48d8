package models

import "gorm.io/gorm"

const (
	CategoryStatusActive   = "active"
	CategoryStatusInactive = "inactive"
	CategoryStatusDeleted  = "deleted"
)

// Category doubles as a subcategory when ParentID references another row.
type Category struct {
	gorm.Model
	Name           string `json:"name" gorm:"not null"`
	NameSlug       string `json:"name_slug" gorm:"index;not null"`
	Description    string `json:"description" gorm:"default:''"`
	Image          string `json:"image" gorm:"default:''"`
	ParentID       uint   `json:"parent_id" gorm:"default:0"` // 0 = top-level
	CoursesCount   int    `json:"courses_count" gorm:"default:0"`
	PreferredOrder int    `json:"preferred_order" gorm:"default:0"`
	Status         string `json:"status" gorm:"default:'active'"`
	CreatedBy      uint   `json:"created_by"`
}
