package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Name         string  `json:"name"          binding:"required,min=1,max=100"`
	ShortID      string  `json:"short_id"      binding:"required,min=1,max=20"`
	Description  *string `json:"description"`
	CreditHours  int     `json:"credit_hours"  binding:"required,gt=0"`
	CurrentGrade float64 `json:"current_grade" binding:"gte=0,lte=100"`
	SemesterID   *string `json:"semester_id"`
}

// UpdateCourseRequest 更新课程请求
type UpdateCourseRequest struct {
	Name         *string  `json:"name"          binding:"omitempty,min=1,max=100"`
	ShortID      *string  `json:"short_id"      binding:"omitempty,min=1,max=20"`
	Description  *string  `json:"description"`
	CreditHours  *int     `json:"credit_hours"  binding:"omitempty,gt=0"`
	CurrentGrade *float64 `json:"current_grade" binding:"omitempty,gte=0,lte=100"`
	SemesterID   *string  `json:"semester_id"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ShortID      string  `json:"short_id"`
	Description  *string `json:"description,omitempty"`
	CreditHours  int     `json:"credit_hours"`
	CurrentGrade float64 `json:"current_grade"`
	SemesterID   *string `json:"semester_id,omitempty"`
	Status       string  `json:"status"` // 派生状态标签
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
