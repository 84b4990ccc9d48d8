package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CourseStatusDraft       = "Draft"
	CourseStatusUnderReview = "Under Review"
	CourseStatusPublished   = "Published"
	CourseStatusArchived    = "Archived"
	CourseStatusUnpublished = "Unpublished"
	CourseStatusDeleted     = "Deleted"

	CourseTypeFree = "free"
	CourseTypePaid = "paid"
)

// CourseStatuses lists every status a caller may set through the status endpoint.
// Deleted is reserved for the soft-delete operation.
func CourseStatuses() []string {
	return []string{
		CourseStatusPublished,
		CourseStatusDraft,
		CourseStatusArchived,
		CourseStatusUnderReview,
		CourseStatusUnpublished,
	}
}

// CourseLevels lists the accepted difficulty levels
func CourseLevels() []string {
	return []string{"Beginner", "Intermediate", "Advanced", "All Levels"}
}

type Course struct {
	gorm.Model
	Title            string         `json:"title" gorm:"not null"`
	Subtitle         string         `json:"subtitle" gorm:"default:''"`
	TitleSlug        string         `json:"title_slug" gorm:"index;not null"`
	Rating           float64        `json:"rating" gorm:"default:0"`
	ReviewCount      int            `json:"reviewCount" gorm:"default:0"`
	EnrollmentCount  int            `json:"enrollmentCount" gorm:"default:0"`
	Tags             datatypes.JSON `json:"tags"` // frozen snapshots, not foreign keys
	CategoryID       uint           `json:"category_id" gorm:"index;not null"`
	SubcategoryID    uint           `json:"subcategory_id" gorm:"default:0"` // 0 = none
	CourseType       string         `json:"course_type" gorm:"default:'free'"`
	Level            string         `json:"level" gorm:"default:''"`
	TotalDuration    int            `json:"totalDuration" gorm:"default:0"` // seconds
	TotalLessons     int            `json:"totalLessons" gorm:"default:0"`
	OriginalPrice    int            `json:"originalPrice" gorm:"default:0"`
	Price            int            `json:"price" gorm:"default:0"`
	WhatYouWillLearn datatypes.JSON `json:"what_you_will_learn"`
	Requirements     datatypes.JSON `json:"requirements"`
	Features         datatypes.JSON `json:"features"`
	Description      datatypes.JSON `json:"description"`
	CourseDuration   int            `json:"course_duration" gorm:"default:0"`
	CreatedBy        uint           `json:"created_by" gorm:"index"`
	Status           string         `json:"status" gorm:"default:'Unpublished'"`
}
