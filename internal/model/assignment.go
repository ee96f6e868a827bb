package model

import "time"

// Assignment 作业表，对应 assignments
type Assignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	UserID       string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	CourseID     string    `gorm:"type:uuid;not null;index"                       json:"course_id"`
	Title        string    `gorm:"type:varchar(255);not null"                     json:"title"`
	DueDate      time.Time `gorm:"type:timestamptz;not null"                      json:"due_date"`
	IsComplete   bool      `gorm:"not null;default:false"                         json:"is_complete"`
	SoftDeleteModel

	// 关联
	User   *User   `gorm:"foreignKey:UserID;references:UserID"     json:"user,omitempty"`
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }
