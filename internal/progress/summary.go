package progress

import (
	"time"

	"github.com/williampettit/scholarsphere-sub001/internal/model"
)

// Summary 一次完整聚合的输出，供仪表盘与只读 API 使用。
type Summary struct {
	CompletedGPA        float64            // 仅 completed 课程
	TentativeGPA        float64            // completed + in_progress 课程（预测值）
	ActiveCourses       []model.Course     // in_progress 课程
	NumPlannedCourses   int                // planned 课程数
	NumPlannedSemesters int                // planned 课程涉及的去重学期数
	Credits             CreditTotals       // 五桶学分
	EarnedCredits       int                // completed GPA 口径下的已获得学分
	UpcomingAssignments []model.Assignment // 活动课程中即将到期的未完成作业
	RecentlyCompleted   []model.Assignment // 活动课程中窗口内已完成的作业
}

// Summarize 对用户全量课程/学期/作业快照做单趟聚合。
//
// now 在调用方捕获一次并贯穿全部状态判定，保证同一份汇总中所有课程
// 以同一时刻为基准（避免学期边界上中途翻转状态）。
// 课程引用的学期在快照中不存在时视同无学期（not_planned），不报错。
// 复杂度 O(课程数 + 作业数)。
func Summarize(courses []model.Course, semesters []model.Semester, assignments []model.Assignment, now time.Time) *Summary {
	semIndex := make(map[string]*model.Semester, len(semesters))
	for i := range semesters {
		semIndex[semesters[i].SemesterID] = &semesters[i]
	}

	assignmentsByCourse := make(map[string][]model.Assignment, len(courses))
	for _, a := range assignments {
		assignmentsByCourse[a.CourseID] = append(assignmentsByCourse[a.CourseID], a)
	}

	completedGPA := NewGPA()
	tentativeGPA := NewGPA()
	summary := &Summary{}
	plannedSemesters := make(map[string]struct{})

	// 活动课程的作业汇入同一个候选池，最后统一过窗口筛选
	var activeAssignments []model.Assignment

	for _, course := range courses {
		var sem *model.Semester
		if course.SemesterID != nil {
			sem = semIndex[*course.SemesterID]
		}
		status := StatusAt(sem, now)

		summary.Credits.Add(status, course.CurrentGrade, course.CreditHours)

		switch status {
		case StatusCompleted:
			completedGPA.AddCourse(course.CurrentGrade, course.CreditHours)
			tentativeGPA.AddCourse(course.CurrentGrade, course.CreditHours)
		case StatusInProgress:
			tentativeGPA.AddCourse(course.CurrentGrade, course.CreditHours)
			summary.ActiveCourses = append(summary.ActiveCourses, course)
			activeAssignments = append(activeAssignments, assignmentsByCourse[course.CourseID]...)
		case StatusPlanned:
			summary.NumPlannedCourses++
			if course.SemesterID != nil {
				plannedSemesters[*course.SemesterID] = struct{}{}
			}
		}
	}

	summary.CompletedGPA = completedGPA.Value()
	summary.TentativeGPA = tentativeGPA.Value()
	summary.EarnedCredits = completedGPA.EarnedCredits()
	summary.NumPlannedSemesters = len(plannedSemesters)
	summary.UpcomingAssignments = DueWithin(activeAssignments, now, false)
	summary.RecentlyCompleted = DueWithin(activeAssignments, now, true)

	return summary
}
