package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User       UserRepository
	Semester   SemesterRepository
	Course     CourseRepository
	Assignment AssignmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Semester:   NewSemesterRepo(db),
		Course:     NewCourseRepo(db),
		Assignment: NewAssignmentRepo(db),
	}
}
