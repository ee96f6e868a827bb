package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/williampettit/scholarsphere-sub001/internal/dto"
	"github.com/williampettit/scholarsphere-sub001/internal/model"
	"github.com/williampettit/scholarsphere-sub001/internal/repository"
)

// ── 作业模块业务错误 ──

var (
	ErrAssignmentNotFound   = errors.New("作业不存在")
	ErrAssignmentDueInvalid = errors.New("作业截止时间格式无效")
)

// AssignmentService 作业业务接口
type AssignmentService interface {
	Create(ctx context.Context, userID string, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetByID(ctx context.Context, userID, id string) (*dto.AssignmentResponse, error)
	List(ctx context.Context, userID string) ([]dto.AssignmentResponse, error)
	ListByCourse(ctx context.Context, userID, courseID string) ([]dto.AssignmentResponse, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *assignmentService) Create(ctx context.Context, userID string, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return nil, ErrAssignmentDueInvalid
	}

	// 归属课程必须存在且属于当前用户
	if err := s.checkCourseRef(ctx, userID, req.CourseID); err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		UserID:   userID,
		CourseID: req.CourseID,
		Title:    req.Title,
		DueDate:  dueDate,
	}

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("创建作业失败", zap.Error(err))
		return nil, err
	}

	return s.toAssignmentResponse(assignment), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *assignmentService) GetByID(ctx context.Context, userID, id string) (*dto.AssignmentResponse, error) {
	assignment, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.toAssignmentResponse(assignment), nil
}

// ────────────────────── List ──────────────────────

func (s *assignmentService) List(ctx context.Context, userID string) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.Assignment.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出作业失败", zap.Error(err))
		return nil, err
	}
	return s.toAssignmentResponses(assignments), nil
}

// ────────────────────── ListByCourse ──────────────────────

func (s *assignmentService) ListByCourse(ctx context.Context, userID, courseID string) ([]dto.AssignmentResponse, error) {
	if err := s.checkCourseRef(ctx, userID, courseID); err != nil {
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("列出课程作业失败", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return s.toAssignmentResponses(assignments), nil
}

// ────────────────────── Update ──────────────────────

func (s *assignmentService) Update(ctx context.Context, userID, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			return nil, ErrAssignmentDueInvalid
		}
		assignment.DueDate = dueDate
	}
	if req.IsComplete != nil {
		assignment.IsComplete = *req.IsComplete
	}

	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("更新作业失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toAssignmentResponse(assignment), nil
}

// ────────────────────── Delete ──────────────────────

func (s *assignmentService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Assignment.Delete(ctx, id); err != nil {
		s.logger.Error("删除作业失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *assignmentService) getOwned(ctx context.Context, userID, id string) (*model.Assignment, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询作业失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if assignment.UserID != userID {
		return nil, ErrAssignmentNotFound
	}
	return assignment, nil
}

func (s *assignmentService) checkCourseRef(ctx context.Context, userID, courseID string) error {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", courseID), zap.Error(err))
		return err
	}
	if course.UserID != userID {
		return ErrCourseNotFound
	}
	return nil
}

func (s *assignmentService) toAssignmentResponses(assignments []model.Assignment) []dto.AssignmentResponse {
	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, *s.toAssignmentResponse(&assignments[i]))
	}
	return result
}

func (s *assignmentService) toAssignmentResponse(assignment *model.Assignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		ID:         assignment.AssignmentID,
		Title:      assignment.Title,
		DueDate:    assignment.DueDate.UTC().Format(time.RFC3339),
		IsComplete: assignment.IsComplete,
		CourseID:   assignment.CourseID,
		CreatedAt:  assignment.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  assignment.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
