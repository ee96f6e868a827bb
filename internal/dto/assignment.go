package dto

// ── 作业模块 DTO ──

// CreateAssignmentRequest 创建作业请求
type CreateAssignmentRequest struct {
	Title    string `json:"title"     binding:"required,min=1,max=255"`
	DueDate  string `json:"due_date"  binding:"required"` // RFC3339，如 "2026-03-05T23:59:00Z"
	CourseID string `json:"course_id" binding:"required,uuid"`
}

// UpdateAssignmentRequest 更新作业请求
type UpdateAssignmentRequest struct {
	Title      *string `json:"title"    binding:"omitempty,min=1,max=255"`
	DueDate    *string `json:"due_date"`
	IsComplete *bool   `json:"is_complete"`
}

// AssignmentResponse 作业信息响应
type AssignmentResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	DueDate    string `json:"due_date"`
	IsComplete bool   `json:"is_complete"`
	CourseID   string `json:"course_id"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
