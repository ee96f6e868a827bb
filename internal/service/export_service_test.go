package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/williampettit/scholarsphere-sub001/internal/model"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockSemesterRepo, *mockCourseRepo, *mockAssignmentRepo) {
	repo, _, semesterRepo, courseRepo, assignmentRepo := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())
	return svc, semesterRepo, courseRepo, assignmentRepo
}

// ── ExportCourses 测试 ──

func TestExportService_ExportCourses_Empty(t *testing.T) {
	svc, _, _, _ := setupTestExportService()

	_, _, err := svc.ExportCourses(context.Background(), "user-001")
	if !errors.Is(err, ErrExportNoCourses) {
		t.Errorf("期望 ErrExportNoCourses，实际: %v", err)
	}
}

func TestExportService_ExportCourses_Success(t *testing.T) {
	svc, semesterRepo, courseRepo, _ := setupTestExportService()
	semesterRepo.semesters["sem-001"] = &model.Semester{
		SemesterID: "sem-001", UserID: "user-001", Name: "2024 春",
		StartDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	courseRepo.courses["course-001"] = &model.Course{
		CourseID: "course-001", UserID: "user-001", Name: "操作系统", ShortID: "CS-4348",
		CreditHours: 3, CurrentGrade: 92, SemesterID: ptrStr("sem-001"),
	}

	buf, filename, err := svc.ExportCourses(context.Background(), "user-001")
	if err != nil {
		t.Fatalf("ExportCourses 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("导出内容不应为空")
	}
	if !strings.HasPrefix(filename, "courses_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式错误: %s", filename)
	}
}

// ── ExportAssignmentsICS 测试 ──

func TestExportService_ExportAssignmentsICS_Empty(t *testing.T) {
	svc, _, _, _ := setupTestExportService()

	_, _, err := svc.ExportAssignmentsICS(context.Background(), "user-001")
	if !errors.Is(err, ErrExportNoAssignments) {
		t.Errorf("期望 ErrExportNoAssignments，实际: %v", err)
	}
}

func TestExportService_ExportAssignmentsICS_Success(t *testing.T) {
	svc, _, courseRepo, assignmentRepo := setupTestExportService()
	courseRepo.courses["course-001"] = &model.Course{
		CourseID: "course-001", UserID: "user-001", Name: "操作系统",
	}
	assignmentRepo.assignments["assign-001"] = &model.Assignment{
		AssignmentID: "assign-001", UserID: "user-001", CourseID: "course-001",
		Title:   "实验二",
		DueDate: time.Date(2024, 3, 20, 23, 59, 0, 0, time.UTC),
	}
	assignmentRepo.assignments["assign-002"] = &model.Assignment{
		AssignmentID: "assign-002", UserID: "user-001", CourseID: "course-001",
		Title:      "实验一",
		DueDate:    time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC),
		IsComplete: true,
	}

	buf, filename, err := svc.ExportAssignmentsICS(context.Background(), "user-001")
	if err != nil {
		t.Fatalf("ExportAssignmentsICS 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名格式错误: %s", filename)
	}

	serialized := buf.String()
	if !strings.Contains(serialized, "BEGIN:VCALENDAR") {
		t.Error("输出应为 iCalendar 格式")
	}
	// UID 取作业 ID，每条作业一个 VEVENT
	if !strings.Contains(serialized, "UID:assign-001") || !strings.Contains(serialized, "UID:assign-002") {
		t.Errorf("缺少作业事件: %s", serialized)
	}
	// 已完成/未完成映射为不同的事件状态
	if !strings.Contains(serialized, "STATUS:COMPLETED") || !strings.Contains(serialized, "STATUS:CONFIRMED") {
		t.Error("事件状态映射错误")
	}
}
