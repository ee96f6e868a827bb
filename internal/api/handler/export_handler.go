package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/williampettit/scholarsphere-sub001/internal/service"
	"github.com/williampettit/scholarsphere-sub001/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportCourses 导出课程表（Excel）
// GET /api/v1/export/courses
func (h *ExportHandler) ExportCourses(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportCourses(c.Request.Context(), callerID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// ExportAssignmentsICS 导出作业截止日历（iCalendar）
// GET /api/v1/export/assignments.ics
func (h *ExportHandler) ExportAssignmentsICS(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportAssignmentsICS(c.Request.Context(), callerID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentTypeICS, buf.Bytes())
}

// handleExportError 统一处理导出模块业务错误
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoCourses):
		response.NotFound(c, 15001, "暂无课程可导出")
	case errors.Is(err, service.ErrExportNoAssignments):
		response.NotFound(c, 15002, "暂无作业可导出")
	default:
		response.InternalError(c)
	}
}
