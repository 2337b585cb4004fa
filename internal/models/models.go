package models

import (
	"time"
)

// Application status values. The original flow never enforces a terminal
// state, so a decided application can still be flipped later.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password []byte `gorm:"not null" json:"-"`
	// URL of the logo on the media host.
	Image string `json:"image"`

	Jobs []Job `json:"jobs,omitempty"`
}

// User mirrors an account at the identity provider; the ID is the provider's
// id, so it is a string primary key and never generated locally.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Name   string `gorm:"not null" json:"name"`
	Email  string `gorm:"uniqueIndex;not null" json:"email"`
	Image  string `json:"image"`
	Resume string `json:"resume"`

	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Bio        string `json:"bio"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	CompanyID uint    `gorm:"index" json:"company_id"`
	Company   Company `json:"company,omitempty"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Salary      int64  `gorm:"check:salary >= 0" json:"salary"`
	// Set true on create; a default tag would make gorm drop explicit false
	// values from inserts.
	Visible  bool      `json:"visible"`
	PostedAt time.Time `json:"date"`
}

type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Composite unique index backs up the apply-time duplicate pre-check, so
	// a concurrent double apply loses at the database.
	UserID string `gorm:"uniqueIndex:idx_user_job;not null" json:"user_id"`
	JobID  uint   `gorm:"uniqueIndex:idx_user_job;not null" json:"job_id"`
	// Denormalized from the job at apply time.
	CompanyID uint `gorm:"index" json:"company_id"`

	User    User    `json:"user,omitempty"`
	Job     Job     `json:"job,omitempty"`
	Company Company `json:"company,omitempty"`

	Status    string    `json:"status"`
	AppliedAt time.Time `json:"date"`
}
