package models

import (
	"time"

	"github.com/google/uuid"
)

type CourseStatus string

const (
	CourseStatusOpen     CourseStatus = "OPEN"
	CourseStatusFinished CourseStatus = "FINISHED"
)

// Course is one occurrence Hugo can be late to. OPEN -> FINISHED is the
// only transition; once FINISHED the course and its bets are an immutable
// historical record. Times of day are stored as minutes since midnight.
type Course struct {
	ID               uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Subject          string       `gorm:"not null" json:"subject"`
	Professor        string       `gorm:"not null" json:"professor"`
	ScheduledMinutes int          `gorm:"not null" json:"scheduled_minutes"`
	Status           CourseStatus `gorm:"size:20;not null;default:OPEN;index" json:"status"`
	ActualMinutes    *int         `json:"actual_minutes"`
	Bets             []Bet        `gorm:"constraint:OnDelete:CASCADE" json:"bets,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// CreateCourseRequest represents an admin request to open a new course
type CreateCourseRequest struct {
	Subject   string `json:"subject" binding:"required,min=2"`
	Professor string `json:"professor" binding:"required,min=2"`
	StartTime string `json:"start_time" binding:"required"`
}

// ResolveCourseRequest carries the admin-entered actual arrival time
type ResolveCourseRequest struct {
	ActualTime string `json:"actual_time" binding:"required"`
}

// CourseResponse renders a course with HH:mm clock strings at the boundary
type CourseResponse struct {
	ID              string    `json:"id"`
	Subject         string    `json:"subject"`
	Professor       string    `json:"professor"`
	ScheduledStart  string    `json:"scheduled_start_time"`
	Status          string    `json:"status"`
	ActualArrival   *string   `json:"actual_arrival_time"`
	BetCount        int       `json:"bet_count"`
	AverageEstimate *string   `json:"average_estimate,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
