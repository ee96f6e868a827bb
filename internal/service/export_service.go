package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/williampettit/scholarsphere-sub001/internal/model"
	"github.com/williampettit/scholarsphere-sub001/internal/progress"
	"github.com/williampettit/scholarsphere-sub001/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoCourses     = errors.New("暂无课程可导出")
	ErrExportNoAssignments = errors.New("暂无作业可导出")
	ErrExportGenerateFail  = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 课程表导出为 Excel (.xlsx)，含派生状态列
//   - 作业截止日期导出为 iCalendar (.ics)，可被日历应用订阅
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	ExportCourses(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	ExportAssignmentsICS(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportCourses ──────────────────────

// ExportCourses 导出课程表为 Excel。
// 状态列与仪表盘口径一致：整趟导出共享同一参考时刻。
func (s *exportService) ExportCourses(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	courses, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, "", err
	}
	if len(courses) == 0 {
		return nil, "", ErrExportNoCourses
	}

	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出学期失败", zap.Error(err))
		return nil, "", err
	}
	semIndex := make(map[string]*model.Semester, len(semesters))
	for i := range semesters {
		semIndex[semesters[i].SemesterID] = &semesters[i]
	}
	now := time.Now().UTC()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Courses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"名称", "代号", "学分", "当前成绩", "状态", "学期"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			s.logger.Error("写入表头失败", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, course := range courses {
		var sem *model.Semester
		semesterName := ""
		if course.SemesterID != nil {
			if found := semIndex[*course.SemesterID]; found != nil {
				sem = found
				semesterName = found.Name
			}
		}
		status := progress.StatusAt(sem, now)

		values := []interface{}{
			course.Name,
			course.ShortID,
			course.CreditHours,
			course.CurrentGrade,
			status.String(),
			semesterName,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				s.logger.Error("写入单元格失败", zap.Error(err))
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("courses_%s.xlsx", now.Format("20060102"))
	return buf, filename, nil
}

// ────────────────────── ExportAssignmentsICS ──────────────────────

// ExportAssignmentsICS 将全部作业的截止时间导出为 iCalendar 日历。
// 每条作业一个 VEVENT，UID 取作业 ID，保证重复导入幂等。
func (s *exportService) ExportAssignmentsICS(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	assignments, err := s.repo.Assignment.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出作业失败", zap.Error(err))
		return nil, "", err
	}
	if len(assignments) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	courses, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, "", err
	}
	courseNames := make(map[string]string, len(courses))
	for _, c := range courses {
		courseNames[c.CourseID] = c.Name
	}

	now := time.Now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//scholarsphere//assignments//EN")

	for _, a := range assignments {
		event := cal.AddEvent(a.AssignmentID)
		event.SetCreatedTime(a.CreatedAt)
		event.SetDtStampTime(now)
		event.SetStartAt(a.DueDate)
		event.SetEndAt(a.DueDate)
		event.SetSummary(a.Title)
		if name, ok := courseNames[a.CourseID]; ok {
			event.SetDescription(name)
		}
		if a.IsComplete {
			event.SetStatus(ics.ObjectStatusCompleted)
		} else {
			event.SetStatus(ics.ObjectStatusConfirmed)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("assignments_%s.ics", now.Format("20060102"))
	return buf, filename, nil
}
