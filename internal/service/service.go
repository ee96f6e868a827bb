package service

import (
	"go.uber.org/zap"

	"github.com/williampettit/scholarsphere-sub001/config"
	"github.com/williampettit/scholarsphere-sub001/internal/repository"
	"github.com/williampettit/scholarsphere-sub001/pkg/jwt"
	"github.com/williampettit/scholarsphere-sub001/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Semester   SemesterService
	Course     CourseService
	Assignment AssignmentService
	Dashboard  DashboardService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Semester:   NewSemesterService(repo, logger),
		Course:     NewCourseService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		Dashboard:  NewDashboardService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
