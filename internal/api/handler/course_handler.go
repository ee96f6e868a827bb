package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/williampettit/scholarsphere-sub001/internal/dto"
	"github.com/williampettit/scholarsphere-sub001/internal/service"
	"github.com/williampettit/scholarsphere-sub001/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 获取课程列表（含派生状态）
// GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	courses, err := h.courseSvc.List(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": courses})
}

// GetCourse 获取课程详情
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), callerID, id)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// CreateCourse 创建课程
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, course)
}

// UpdateCourse 更新课程
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), callerID, id, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// DeleteCourse 删除课程
// DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), callerID, id); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCourseError 统一处理课程模块业务错误
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	case errors.Is(err, service.ErrCourseGradeInvalid):
		response.BadRequest(c, 13002, "成绩超出 0-100 范围")
	case errors.Is(err, service.ErrCourseCreditsInvalid):
		response.BadRequest(c, 13003, "学分必须为正整数")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 12001, "学期不存在")
	default:
		response.InternalError(c)
	}
}
