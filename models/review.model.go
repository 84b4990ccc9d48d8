package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Rating    int    `json:"rating" gorm:"not null"`
	Review    string `json:"review" gorm:"default:''"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
	User      User   `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
