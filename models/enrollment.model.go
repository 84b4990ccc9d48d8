package models

import (
	"gorm.io/gorm"
)

const (
	EnrollmentStatusEnrolled  = "Enrolled"
	EnrollmentStatusPending   = "Pending"
	EnrollmentStatusCancelled = "Cancelled"
)

// ActiveEnrollmentStatuses are the statuses that count as an active
// enrollment. At most one row per (user, course) may carry one of them.
func ActiveEnrollmentStatuses() []string {
	return []string{EnrollmentStatusEnrolled, EnrollmentStatusPending}
}

type Enrollment struct {
	gorm.Model
	Reference     string `json:"reference" gorm:"index"`
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Status        string `json:"status" gorm:"default:'Pending'"`
	AmountPayable int    `json:"amountPayable" gorm:"default:0"` // course price at enrollment time
	AmountOffered int    `json:"amountOffered" gorm:"default:0"`
	SectionsCount int    `json:"sectionsCount" gorm:"default:0"`
	LessonsCount  int    `json:"lessonsCount" gorm:"default:0"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
	User          User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course        Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
