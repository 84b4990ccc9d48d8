package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Section is one unit of a course curriculum. Lessons are stored as an
// opaque nested structure; TotalLessons is recomputed from it on create.
type Section struct {
	gorm.Model
	CourseID      uint           `json:"course_id" gorm:"index;not null"`
	Title         string         `json:"title" gorm:"not null"`
	Lessons       datatypes.JSON `json:"lessons"`
	TotalDuration int            `json:"totalDuration" gorm:"default:0"` // seconds
	TotalLessons  int            `json:"totalLessons" gorm:"default:0"`
}
