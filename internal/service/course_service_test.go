package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/williampettit/scholarsphere-sub001/internal/dto"
	"github.com/williampettit/scholarsphere-sub001/internal/model"
)

// ── 测试辅助 ──

func setupTestCourseService() (CourseService, *mockSemesterRepo, *mockCourseRepo) {
	repo, _, semesterRepo, courseRepo, _ := newMockRepository()
	svc := NewCourseService(repo, zap.NewNop())
	return svc, semesterRepo, courseRepo
}

func ptrStr(s string) *string   { return &s }
func ptrInt(n int) *int         { return &n }
func ptrF64(f float64) *float64 { return &f }

// ── Create 测试 ──

func TestCourseService_Create_Success(t *testing.T) {
	svc, _, _ := setupTestCourseService()

	req := &dto.CreateCourseRequest{
		Name:         "数据结构",
		ShortID:      "CS-3345",
		CreditHours:  3,
		CurrentGrade: 100,
	}

	result, err := svc.Create(context.Background(), "user-001", req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Name != "数据结构" || result.ShortID != "CS-3345" {
		t.Errorf("课程信息回显错误: %+v", result)
	}
	// 无学期关联的课程恒为 not_planned
	if result.Status != "not_planned" {
		t.Errorf("期望 Status=not_planned，实际=%s", result.Status)
	}
}

func TestCourseService_Create_InvalidCredits(t *testing.T) {
	svc, _, _ := setupTestCourseService()

	req := &dto.CreateCourseRequest{
		Name:         "数据结构",
		ShortID:      "CS-3345",
		CreditHours:  0,
		CurrentGrade: 90,
	}

	_, err := svc.Create(context.Background(), "user-001", req)
	if !errors.Is(err, ErrCourseCreditsInvalid) {
		t.Errorf("期望 ErrCourseCreditsInvalid，实际: %v", err)
	}
}

func TestCourseService_Create_InvalidGrade(t *testing.T) {
	svc, _, _ := setupTestCourseService()

	req := &dto.CreateCourseRequest{
		Name:         "数据结构",
		ShortID:      "CS-3345",
		CreditHours:  3,
		CurrentGrade: 120,
	}

	_, err := svc.Create(context.Background(), "user-001", req)
	if !errors.Is(err, ErrCourseGradeInvalid) {
		t.Errorf("期望 ErrCourseGradeInvalid，实际: %v", err)
	}
}

func TestCourseService_Create_SemesterNotOwned(t *testing.T) {
	svc, semesterRepo, _ := setupTestCourseService()
	semesterRepo.semesters["sem-001"] = &model.Semester{
		SemesterID: "sem-001",
		UserID:     "user-002",
		Name:       "别人的学期",
	}

	req := &dto.CreateCourseRequest{
		Name:         "数据结构",
		ShortID:      "CS-3345",
		CreditHours:  3,
		CurrentGrade: 100,
		SemesterID:   ptrStr("sem-001"),
	}

	_, err := svc.Create(context.Background(), "user-001", req)
	if !errors.Is(err, ErrSemesterNotFound) {
		t.Errorf("期望 ErrSemesterNotFound，实际: %v", err)
	}
}

// ── GetByID / 状态派生 测试 ──

func TestCourseService_GetByID_StatusDerived(t *testing.T) {
	svc, semesterRepo, courseRepo := setupTestCourseService()
	// 一个已结束的学期
	semesterRepo.semesters["sem-past"] = &model.Semester{
		SemesterID: "sem-past",
		UserID:     "user-001",
		StartDate:  time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2020, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	courseRepo.courses["course-001"] = &model.Course{
		CourseID:     "course-001",
		UserID:       "user-001",
		Name:         "操作系统",
		ShortID:      "CS-4348",
		CreditHours:  3,
		CurrentGrade: 92,
		SemesterID:   ptrStr("sem-past"),
	}

	result, err := svc.GetByID(context.Background(), "user-001", "course-001")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.Status != "completed" {
		t.Errorf("期望 Status=completed，实际=%s", result.Status)
	}
}

// 悬空学期引用视同无学期
func TestCourseService_GetByID_DanglingSemester(t *testing.T) {
	svc, _, courseRepo := setupTestCourseService()
	courseRepo.courses["course-001"] = &model.Course{
		CourseID:     "course-001",
		UserID:       "user-001",
		Name:         "操作系统",
		ShortID:      "CS-4348",
		CreditHours:  3,
		CurrentGrade: 92,
		SemesterID:   ptrStr("sem-deleted"),
	}

	result, err := svc.GetByID(context.Background(), "user-001", "course-001")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.Status != "not_planned" {
		t.Errorf("悬空引用期望 Status=not_planned，实际=%s", result.Status)
	}
}

func TestCourseService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := setupTestCourseService()

	_, err := svc.GetByID(context.Background(), "user-001", "nonexistent")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestCourseService_Update_Success(t *testing.T) {
	svc, _, courseRepo := setupTestCourseService()
	courseRepo.courses["course-001"] = &model.Course{
		CourseID:     "course-001",
		UserID:       "user-001",
		Name:         "操作系统",
		ShortID:      "CS-4348",
		CreditHours:  3,
		CurrentGrade: 92,
	}

	req := &dto.UpdateCourseRequest{
		CurrentGrade: ptrF64(88.5),
		CreditHours:  ptrInt(4),
	}

	result, err := svc.Update(context.Background(), "user-001", "course-001", req)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.CurrentGrade != 88.5 || result.CreditHours != 4 {
		t.Errorf("更新未生效: %+v", result)
	}
}

func TestCourseService_Update_InvalidGrade(t *testing.T) {
	svc, _, courseRepo := setupTestCourseService()
	courseRepo.courses["course-001"] = &model.Course{
		CourseID:     "course-001",
		UserID:       "user-001",
		CreditHours:  3,
		CurrentGrade: 92,
	}

	req := &dto.UpdateCourseRequest{CurrentGrade: ptrF64(-5)}

	_, err := svc.Update(context.Background(), "user-001", "course-001", req)
	if !errors.Is(err, ErrCourseGradeInvalid) {
		t.Errorf("期望 ErrCourseGradeInvalid，实际: %v", err)
	}
}

// 传空字符串解除学期关联
func TestCourseService_Update_DetachSemester(t *testing.T) {
	svc, semesterRepo, courseRepo := setupTestCourseService()
	semesterRepo.semesters["sem-001"] = &model.Semester{
		SemesterID: "sem-001",
		UserID:     "user-001",
		StartDate:  time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	courseRepo.courses["course-001"] = &model.Course{
		CourseID:     "course-001",
		UserID:       "user-001",
		CreditHours:  3,
		CurrentGrade: 92,
		SemesterID:   ptrStr("sem-001"),
	}

	req := &dto.UpdateCourseRequest{SemesterID: ptrStr("")}

	result, err := svc.Update(context.Background(), "user-001", "course-001", req)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.SemesterID != nil {
		t.Errorf("学期关联应已解除，实际=%v", *result.SemesterID)
	}
	if result.Status != "not_planned" {
		t.Errorf("解除关联后期望 Status=not_planned，实际=%s", result.Status)
	}
}

// ── Delete 测试 ──

func TestCourseService_Delete_Success(t *testing.T) {
	svc, _, courseRepo := setupTestCourseService()
	courseRepo.courses["course-001"] = &model.Course{
		CourseID: "course-001",
		UserID:   "user-001",
	}

	if err := svc.Delete(context.Background(), "user-001", "course-001"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := courseRepo.courses["course-001"]; ok {
		t.Error("课程应已删除")
	}
}

func TestCourseService_Delete_OtherUser(t *testing.T) {
	svc, _, courseRepo := setupTestCourseService()
	courseRepo.courses["course-001"] = &model.Course{
		CourseID: "course-001",
		UserID:   "user-002",
	}

	err := svc.Delete(context.Background(), "user-001", "course-001")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}
