package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/williampettit/scholarsphere-sub001/internal/service"
	"github.com/williampettit/scholarsphere-sub001/pkg/response"
)

// DashboardHandler 仪表盘模块 HTTP 处理器（只读）
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// GetSummary 获取仪表盘聚合视图
// GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	summary, err := h.dashboardSvc.Summary(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

// GetGPA 获取绩点汇总
// GET /api/v1/dashboard/gpa
func (h *DashboardHandler) GetGPA(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	gpa, err := h.dashboardSvc.GPASummary(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gpa)
}

// GetCredits 获取学分汇总
// GET /api/v1/dashboard/credits
func (h *DashboardHandler) GetCredits(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	credits, err := h.dashboardSvc.CreditSummary(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, credits)
}

// GetUpcomingAssignments 获取即将到期作业
// GET /api/v1/dashboard/assignments
func (h *DashboardHandler) GetUpcomingAssignments(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignments, err := h.dashboardSvc.UpcomingAssignments(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, assignments)
}

// GetActiveCourses 获取活动课程列表
// GET /api/v1/dashboard/courses/active
func (h *DashboardHandler) GetActiveCourses(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	courses, err := h.dashboardSvc.ActiveCourses(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, courses)
}
