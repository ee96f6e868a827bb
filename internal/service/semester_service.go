package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/williampettit/scholarsphere-sub001/internal/dto"
	"github.com/williampettit/scholarsphere-sub001/internal/model"
	"github.com/williampettit/scholarsphere-sub001/internal/progress"
	"github.com/williampettit/scholarsphere-sub001/internal/repository"
)

// ── 学期模块业务错误 ──

var (
	ErrSemesterNotFound    = errors.New("学期不存在")
	ErrSemesterDateInvalid = errors.New("学期结束日期必须晚于开始日期")
)

const semesterDateLayout = "2006-01-02"

// SemesterService 学期业务接口
type SemesterService interface {
	Create(ctx context.Context, userID string, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	GetByID(ctx context.Context, userID, id string) (*dto.SemesterResponse, error)
	List(ctx context.Context, userID string) ([]dto.SemesterResponse, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type semesterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSemesterService 创建 SemesterService 实例
func NewSemesterService(repo *repository.Repository, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *semesterService) Create(ctx context.Context, userID string, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	startDate, err := time.Parse(semesterDateLayout, req.StartDate)
	if err != nil {
		return nil, ErrSemesterDateInvalid
	}
	endDate, err := time.Parse(semesterDateLayout, req.EndDate)
	if err != nil {
		return nil, ErrSemesterDateInvalid
	}
	if !endDate.After(startDate) {
		return nil, ErrSemesterDateInvalid
	}

	semester := &model.Semester{
		UserID:    userID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := s.repo.Semester.Create(ctx, semester); err != nil {
		s.logger.Error("创建学期失败", zap.Error(err))
		return nil, err
	}

	return s.toSemesterResponse(semester), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *semesterService) GetByID(ctx context.Context, userID, id string) (*dto.SemesterResponse, error) {
	semester, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.toSemesterResponse(semester), nil
}

// ────────────────────── List ──────────────────────

func (s *semesterService) List(ctx context.Context, userID string) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出学期失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		result = append(result, *s.toSemesterResponse(&semesters[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *semesterService) Update(ctx context.Context, userID, id string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	semester, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		semester.Name = *req.Name
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(semesterDateLayout, *req.StartDate)
		if err != nil {
			return nil, ErrSemesterDateInvalid
		}
		semester.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(semesterDateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrSemesterDateInvalid
		}
		semester.EndDate = endDate
	}
	if !semester.EndDate.After(semester.StartDate) {
		return nil, ErrSemesterDateInvalid
	}

	if err := s.repo.Semester.Update(ctx, semester); err != nil {
		s.logger.Error("更新学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSemesterResponse(semester), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 软删除学期。已关联该学期的课程保留悬空引用，
// 聚合时按“无学期”处理（not_planned），与录入边界的约定一致。
func (s *semesterService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Semester.Delete(ctx, id); err != nil {
		s.logger.Error("删除学期失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

// getOwned 查询学期并校验归属；他人记录按不存在处理，避免泄露存在性
func (s *semesterService) getOwned(ctx context.Context, userID, id string) (*model.Semester, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if semester.UserID != userID {
		return nil, ErrSemesterNotFound
	}
	return semester, nil
}

func (s *semesterService) toSemesterResponse(semester *model.Semester) *dto.SemesterResponse {
	return &dto.SemesterResponse{
		ID:        semester.SemesterID,
		Name:      semester.Name,
		StartDate: semester.StartDate.Format(semesterDateLayout),
		EndDate:   semester.EndDate.Format(semesterDateLayout),
		Status:    progress.StatusAt(semester, time.Now().UTC()).String(),
		CreatedAt: semester.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: semester.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
