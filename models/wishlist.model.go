package models

import "gorm.io/gorm"

type Wishlist struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Course   Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
