package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/williampettit/scholarsphere-sub001/internal/dto"
	"github.com/williampettit/scholarsphere-sub001/internal/model"
	"github.com/williampettit/scholarsphere-sub001/internal/progress"
	"github.com/williampettit/scholarsphere-sub001/internal/repository"
)

// DashboardService 仪表盘只读业务接口
//
// 每次请求读取一份新快照、捕获一个参考时刻、做一趟聚合；
// 不缓存、不跨请求共享累加器状态。
type DashboardService interface {
	Summary(ctx context.Context, userID string) (*dto.DashboardSummaryResponse, error)
	GPASummary(ctx context.Context, userID string) (*dto.GPASummaryResponse, error)
	CreditSummary(ctx context.Context, userID string) (*dto.CreditSummaryResponse, error)
	UpcomingAssignments(ctx context.Context, userID string) (*dto.UpcomingAssignmentsResponse, error)
	ActiveCourses(ctx context.Context, userID string) (*dto.ActiveCoursesResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 测试中可替换
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ────────────────────── Summary ──────────────────────

func (s *dashboardService) Summary(ctx context.Context, userID string) (*dto.DashboardSummaryResponse, error) {
	summary, courseNames, err := s.summarize(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		GPA:                 *toGPASummary(summary),
		Credits:             *toCreditSummary(summary),
		EarnedCredits:       summary.EarnedCredits,
		ActiveCourses:       toActiveCourses(summary),
		NumPlannedCourses:   summary.NumPlannedCourses,
		NumPlannedSemesters: summary.NumPlannedSemesters,
		UpcomingAssignments: toAssignmentEntries(summary.UpcomingAssignments, courseNames),
		RecentlyCompleted:   toAssignmentEntries(summary.RecentlyCompleted, courseNames),
	}, nil
}

// ────────────────────── GPASummary ──────────────────────

func (s *dashboardService) GPASummary(ctx context.Context, userID string) (*dto.GPASummaryResponse, error) {
	summary, _, err := s.summarize(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toGPASummary(summary), nil
}

// ────────────────────── CreditSummary ──────────────────────

func (s *dashboardService) CreditSummary(ctx context.Context, userID string) (*dto.CreditSummaryResponse, error) {
	summary, _, err := s.summarize(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCreditSummary(summary), nil
}

// ────────────────────── UpcomingAssignments ──────────────────────

func (s *dashboardService) UpcomingAssignments(ctx context.Context, userID string) (*dto.UpcomingAssignmentsResponse, error) {
	summary, courseNames, err := s.summarize(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UpcomingAssignmentsResponse{
		UpcomingAssignments: toAssignmentEntries(summary.UpcomingAssignments, courseNames),
	}, nil
}

// ────────────────────── ActiveCourses ──────────────────────

func (s *dashboardService) ActiveCourses(ctx context.Context, userID string) (*dto.ActiveCoursesResponse, error) {
	summary, _, err := s.summarize(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ActiveCoursesResponse{ActiveCourses: toActiveCourses(summary)}, nil
}

// ── 内部辅助方法 ──

// summarize 加载用户全量快照并做单趟聚合。
// 参考时刻只在这里捕获一次，贯穿整趟计算。
func (s *dashboardService) summarize(ctx context.Context, userID string) (*progress.Summary, map[string]string, error) {
	courses, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, nil, err
	}
	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出学期失败", zap.Error(err))
		return nil, nil, err
	}
	assignments, err := s.repo.Assignment.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出作业失败", zap.Error(err))
		return nil, nil, err
	}

	courseNames := make(map[string]string, len(courses))
	for _, c := range courses {
		courseNames[c.CourseID] = c.Name
	}

	return progress.Summarize(courses, semesters, assignments, s.now()), courseNames, nil
}

func toGPASummary(summary *progress.Summary) *dto.GPASummaryResponse {
	return &dto.GPASummaryResponse{
		CompletedGPA: summary.CompletedGPA,
		TenativeGPA:  summary.TentativeGPA,
	}
}

func toCreditSummary(summary *progress.Summary) *dto.CreditSummaryResponse {
	return &dto.CreditSummaryResponse{
		AttemptedCredits:  summary.Credits.Attempted,
		PassedCredits:     summary.Credits.Passed,
		InProgressCredits: summary.Credits.InProgress,
		PlannedCredits:    summary.Credits.Planned,
		NotPlannedCredits: summary.Credits.NotPlanned,
	}
}

func toActiveCourses(summary *progress.Summary) []dto.ActiveCourse {
	result := make([]dto.ActiveCourse, 0, len(summary.ActiveCourses))
	for _, c := range summary.ActiveCourses {
		result = append(result, dto.ActiveCourse{
			Name:         c.Name,
			ShortID:      c.ShortID,
			Status:       progress.StatusInProgress.String(),
			CreditHours:  c.CreditHours,
			CurrentGrade: c.CurrentGrade,
		})
	}
	return result
}

func toAssignmentEntries(assignments []model.Assignment, courseNames map[string]string) []dto.UpcomingAssignment {
	result := make([]dto.UpcomingAssignment, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, dto.UpcomingAssignment{
			Title:   a.Title,
			Course:  courseNames[a.CourseID],
			DueDate: a.DueDate.UTC().Format(time.RFC3339),
		})
	}
	return result
}
