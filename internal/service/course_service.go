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

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound       = errors.New("课程不存在")
	ErrCourseGradeInvalid   = errors.New("成绩必须在 0-100 之间")
	ErrCourseCreditsInvalid = errors.New("学分必须为正整数")
)

// CourseService 课程业务接口
//
// 成绩与学分的取值校验在这里完成（录入边界），
// 聚合引擎假定输入已校验，不再重复检查。
type CourseService interface {
	Create(ctx context.Context, userID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetByID(ctx context.Context, userID, id string) (*dto.CourseResponse, error)
	List(ctx context.Context, userID string) ([]dto.CourseResponse, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, userID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if req.CreditHours <= 0 {
		return nil, ErrCourseCreditsInvalid
	}
	if req.CurrentGrade < 0 || req.CurrentGrade > 100 {
		return nil, ErrCourseGradeInvalid
	}
	if req.SemesterID != nil {
		if err := s.checkSemesterRef(ctx, userID, *req.SemesterID); err != nil {
			return nil, err
		}
	}

	course := &model.Course{
		UserID:       userID,
		Name:         req.Name,
		ShortID:      req.ShortID,
		Description:  req.Description,
		CreditHours:  req.CreditHours,
		CurrentGrade: req.CurrentGrade,
		SemesterID:   req.SemesterID,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return s.toCourseResponse(ctx, course), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *courseService) GetByID(ctx context.Context, userID, id string) (*dto.CourseResponse, error) {
	course, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.toCourseResponse(ctx, course), nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context, userID string) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	// 一次性取学期快照，所有课程用同一参考时刻判定状态
	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出学期失败", zap.Error(err))
		return nil, err
	}
	semIndex := make(map[string]*model.Semester, len(semesters))
	for i := range semesters {
		semIndex[semesters[i].SemesterID] = &semesters[i]
	}
	now := time.Now().UTC()

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		course := &courses[i]
		var sem *model.Semester
		if course.SemesterID != nil {
			sem = semIndex[*course.SemesterID]
		}
		resp := s.buildCourseResponse(course, progress.StatusAt(sem, now))
		result = append(result, *resp)
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, userID, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.ShortID != nil {
		course.ShortID = *req.ShortID
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.CreditHours != nil {
		if *req.CreditHours <= 0 {
			return nil, ErrCourseCreditsInvalid
		}
		course.CreditHours = *req.CreditHours
	}
	if req.CurrentGrade != nil {
		if *req.CurrentGrade < 0 || *req.CurrentGrade > 100 {
			return nil, ErrCourseGradeInvalid
		}
		course.CurrentGrade = *req.CurrentGrade
	}
	if req.SemesterID != nil {
		if *req.SemesterID == "" {
			course.SemesterID = nil // 解除学期关联
		} else {
			if err := s.checkSemesterRef(ctx, userID, *req.SemesterID); err != nil {
				return nil, err
			}
			course.SemesterID = req.SemesterID
		}
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("更新课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toCourseResponse(ctx, course), nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *courseService) getOwned(ctx context.Context, userID, id string) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if course.UserID != userID {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// checkSemesterRef 校验目标学期存在且属于当前用户
func (s *courseService) checkSemesterRef(ctx context.Context, userID, semesterID string) error {
	semester, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.String("id", semesterID), zap.Error(err))
		return err
	}
	if semester.UserID != userID {
		return ErrSemesterNotFound
	}
	return nil
}

// toCourseResponse 单条响应：按需解析学期引用后判定状态。
// 悬空引用（学期已删除）视同无学期。
func (s *courseService) toCourseResponse(ctx context.Context, course *model.Course) *dto.CourseResponse {
	var sem *model.Semester
	if course.SemesterID != nil {
		if found, err := s.repo.Semester.GetByID(ctx, *course.SemesterID); err == nil {
			sem = found
		}
	}
	return s.buildCourseResponse(course, progress.StatusAt(sem, time.Now().UTC()))
}

func (s *courseService) buildCourseResponse(course *model.Course, status progress.CourseStatus) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:           course.CourseID,
		Name:         course.Name,
		ShortID:      course.ShortID,
		Description:  course.Description,
		CreditHours:  course.CreditHours,
		CurrentGrade: course.CurrentGrade,
		SemesterID:   course.SemesterID,
		Status:       status.String(),
		CreatedAt:    course.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    course.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
