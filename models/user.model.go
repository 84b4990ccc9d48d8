package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage    string     `json:"profile_image" gorm:"default:''"`
	Firstname       string     `json:"firstname" gorm:"default:''"`
	Lastname        string     `json:"lastname" gorm:"default:''"`
	Username        string     `json:"username" gorm:"default:''"`
	Email           string     `json:"email" gorm:"unique;not null"`
	Role            string     `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	Password        string     `json:"-" gorm:"not null"`
	CoursesCount    int        `json:"courses_count" gorm:"default:0"`
	IsEmailVerified bool       `json:"is_email_verified" gorm:"default:false"`
	LastLogin       *time.Time `json:"last_login"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
}
