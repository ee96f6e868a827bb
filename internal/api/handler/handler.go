package handler

import "github.com/williampettit/scholarsphere-sub001/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Semester   *SemesterHandler
	Course     *CourseHandler
	Assignment *AssignmentHandler
	Dashboard  *DashboardHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Semester:   NewSemesterHandler(svc.Semester),
		Course:     NewCourseHandler(svc.Course),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Export:     NewExportHandler(svc.Export),
	}
}
