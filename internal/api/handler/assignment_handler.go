package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/williampettit/scholarsphere-sub001/internal/dto"
	"github.com/williampettit/scholarsphere-sub001/internal/service"
	"github.com/williampettit/scholarsphere-sub001/pkg/response"
)

// AssignmentHandler 作业模块 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// ListAssignments 获取作业列表（按截止时间升序）
// GET /api/v1/assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignments, err := h.assignmentSvc.List(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// ListCourseAssignments 获取某课程下的作业列表
// GET /api/v1/courses/:id/assignments
func (h *AssignmentHandler) ListCourseAssignments(c *gin.Context) {
	courseID := c.Param("id")
	if courseID == "" {
		response.BadRequest(c, 10001, "课程ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignments, err := h.assignmentSvc.ListByCourse(c.Request.Context(), callerID, courseID)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// GetAssignment 获取作业详情
// GET /api/v1/assignments/:id
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "作业ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.GetByID(c.Request.Context(), callerID, id)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignment)
}

// CreateAssignment 创建作业
// POST /api/v1/assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.Created(c, assignment)
}

// UpdateAssignment 更新作业（含标记完成）
// PUT /api/v1/assignments/:id
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "作业ID不能为空")
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.Update(c.Request.Context(), callerID, id, &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, assignment)
}

// DeleteAssignment 删除作业
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "作业ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.assignmentSvc.Delete(c.Request.Context(), callerID, id); err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAssignmentError 统一处理作业模块业务错误
func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 14001, "作业不存在")
	case errors.Is(err, service.ErrAssignmentDueInvalid):
		response.BadRequest(c, 14002, "截止时间格式无效")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	default:
		response.InternalError(c)
	}
}
