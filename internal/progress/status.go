package progress

import (
	"time"

	"github.com/williampettit/scholarsphere-sub001/internal/model"
)

// CourseStatus 课程生命周期状态（由学期日期区间派生，不落库）
type CourseStatus int

const (
	StatusCompleted CourseStatus = iota
	StatusPlanned
	StatusNotPlanned
	StatusInProgress
)

// String 返回稳定的字符串标签（API 输出使用标签而非序号）
func (s CourseStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusPlanned:
		return "planned"
	case StatusNotPlanned:
		return "not_planned"
	case StatusInProgress:
		return "in_progress"
	default:
		return "unknown"
	}
}

// StatusAt 根据学期日期区间与参考时刻 now 判定课程状态。
//
// 判定顺序（区间为 [start, end)）：
//  1. 无学期 → not_planned
//  2. now >= endDate → completed
//  3. now < startDate → planned
//  4. 其余 → in_progress
//
// now 必须由调用方传入：一次聚合中的所有判定共享同一参考时刻。
// start == end 的零长度学期到达 start 后恒为 completed，不会出现 in_progress。
func StatusAt(sem *model.Semester, now time.Time) CourseStatus {
	if sem == nil {
		return StatusNotPlanned
	}
	if !now.Before(sem.EndDate) {
		return StatusCompleted
	}
	if now.Before(sem.StartDate) {
		return StatusPlanned
	}
	return StatusInProgress
}
