package models

import (
	"time"

	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeFreelancer UserType = "freelancer"
	UserTypeClient     UserType = "client"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	return t == UserTypeFreelancer || t == UserTypeClient
}

type User struct {
	ID           string         `gorm:"primarykey;type:varchar(64)" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Avatar       string         `gorm:"type:varchar(512)" json:"avatar"`
	UserType     UserType       `gorm:"type:varchar(20);not null;index" json:"user_type"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	FreelancerProfile    *FreelancerProfile    `gorm:"foreignKey:UserID" json:"-"`
	ClientProfile        *ClientProfile        `gorm:"foreignKey:UserID" json:"-"`
	NotificationSettings *NotificationSettings `gorm:"foreignKey:UserID" json:"-"`
}

func (u User) IsFreelancer() bool {
	return u.UserType == UserTypeFreelancer
}

func (u User) IsClient() bool {
	return u.UserType == UserTypeClient
}
