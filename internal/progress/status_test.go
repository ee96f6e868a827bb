package progress

import (
	"testing"
	"time"

	"github.com/williampettit/scholarsphere-sub001/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── StatusAt 测试 ──

func TestStatusAt_NoSemester(t *testing.T) {
	if got := StatusAt(nil, date(2024, 3, 1)); got != StatusNotPlanned {
		t.Errorf("无学期应为 not_planned，实际=%v", got)
	}
}

func TestStatusAt_Boundaries(t *testing.T) {
	sem := &model.Semester{
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 5, 1),
	}

	cases := []struct {
		name string
		now  time.Time
		want CourseStatus
	}{
		{"开始之前", date(2023, 12, 1), StatusPlanned},
		{"开始当天（含）", date(2024, 1, 1), StatusInProgress},
		{"结束前一天", date(2024, 4, 30), StatusInProgress},
		{"结束当天（含）", date(2024, 5, 1), StatusCompleted},
		{"结束之后", date(2024, 6, 1), StatusCompleted},
	}

	for _, tc := range cases {
		if got := StatusAt(sem, tc.now); got != tc.want {
			t.Errorf("%s: 期望 %v，实际 %v", tc.name, tc.want, got)
		}
	}
}

// 零长度学期：到达 start 后恒为 completed，任何时刻都观察不到 in_progress
func TestStatusAt_ZeroLengthSemester(t *testing.T) {
	sem := &model.Semester{
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 1),
	}

	if got := StatusAt(sem, date(2024, 2, 1)); got != StatusPlanned {
		t.Errorf("开始前应为 planned，实际=%v", got)
	}
	if got := StatusAt(sem, date(2024, 3, 1)); got != StatusCompleted {
		t.Errorf("start==end 当天应为 completed，实际=%v", got)
	}
	if got := StatusAt(sem, date(2024, 4, 1)); got != StatusCompleted {
		t.Errorf("之后应为 completed，实际=%v", got)
	}

	for day := 0; day < 120; day++ {
		now := date(2024, 1, 1).AddDate(0, 0, day)
		if got := StatusAt(sem, now); got == StatusInProgress {
			t.Fatalf("零长度学期在 %v 被判定为 in_progress", now)
		}
	}
}

func TestCourseStatus_String(t *testing.T) {
	cases := map[CourseStatus]string{
		StatusCompleted:  "completed",
		StatusPlanned:    "planned",
		StatusNotPlanned: "not_planned",
		StatusInProgress: "in_progress",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("期望标签 %q，实际 %q", want, got)
		}
	}
}
