package models

import "gorm.io/gorm"

// CourseInstructor links an instructor to a course. The course creator (or
// an admin-designated alternate) always holds one row.
type CourseInstructor struct {
	gorm.Model
	CourseID     uint `json:"course_id" gorm:"index;not null"`
	InstructorID uint `json:"instructor_id" gorm:"index;not null"`
}
