package dto

// ── 仪表盘只读 DTO ──
//
// 字段名与既有 API 消费方约定保持一致。
// "tenative_gpa" 的拼写是历史遗留的线上契约，保持原样，不要更正。

// GPASummaryResponse 绩点汇总
type GPASummaryResponse struct {
	CompletedGPA float64 `json:"completed_gpa"`
	TenativeGPA  float64 `json:"tenative_gpa"`
}

// CreditSummaryResponse 学分汇总（五个互斥桶）
type CreditSummaryResponse struct {
	AttemptedCredits  int `json:"attempted_credits"`
	PassedCredits     int `json:"passed_credits"`
	InProgressCredits int `json:"in_progress_credits"`
	PlannedCredits    int `json:"planned_credits"`
	NotPlannedCredits int `json:"not_planned_credits"`
}

// UpcomingAssignment 即将到期作业条目
type UpcomingAssignment struct {
	Title   string `json:"title"`
	Course  string `json:"course"` // 所属课程名
	DueDate string `json:"due_date"`
}

// UpcomingAssignmentsResponse 即将到期作业列表（按截止时间升序）
type UpcomingAssignmentsResponse struct {
	UpcomingAssignments []UpcomingAssignment `json:"upcoming_assignments"`
}

// ActiveCourse 活动课程条目
type ActiveCourse struct {
	Name         string  `json:"name"`
	ShortID      string  `json:"short_id"`
	Status       string  `json:"status"` // 稳定字符串标签，而非枚举序号
	CreditHours  int     `json:"credit_hours"`
	CurrentGrade float64 `json:"current_grade"`
}

// ActiveCoursesResponse 活动课程列表
type ActiveCoursesResponse struct {
	ActiveCourses []ActiveCourse `json:"active_courses"`
}

// DashboardSummaryResponse 仪表盘聚合视图（单次计算的完整输出）
type DashboardSummaryResponse struct {
	GPA                 GPASummaryResponse    `json:"gpa"`
	Credits             CreditSummaryResponse `json:"credits"`
	EarnedCredits       int                   `json:"earned_credits"`
	ActiveCourses       []ActiveCourse        `json:"active_courses"`
	NumPlannedCourses   int                   `json:"num_planned_courses"`
	NumPlannedSemesters int                   `json:"num_planned_semesters"`
	UpcomingAssignments []UpcomingAssignment  `json:"upcoming_assignments"`
	RecentlyCompleted   []UpcomingAssignment  `json:"recently_completed_assignments"`
}
