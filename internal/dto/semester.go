package dto

// ── 学期模块 DTO ──

// CreateSemesterRequest 创建学期请求
type CreateSemesterRequest struct {
	Name      string `json:"name"       binding:"required,min=1,max=100"`
	StartDate string `json:"start_date" binding:"required"` // "2026-08-20"
	EndDate   string `json:"end_date"   binding:"required"` // "2026-12-15"
}

// UpdateSemesterRequest 更新学期请求
type UpdateSemesterRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=1,max=100"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// SemesterResponse 学期信息响应
type SemesterResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"` // 派生状态标签，不落库
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
