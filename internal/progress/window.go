package progress

import (
	"sort"
	"time"

	"github.com/williampettit/scholarsphere-sub001/internal/model"
)

// AssignmentHorizon 作业展望窗口。
// 行为上固定为 14 天；个别界面文案写的是 30 天，以 14 天为准，未经产品确认不要改。
const AssignmentHorizon = 14 * 24 * time.Hour

// DueWithin 从候选作业中筛选 dueDate <= now + AssignmentHorizon 且完成标记等于
// isComplete 的作业，按截止时间升序返回。
//
// 没有时间下界：已逾期的未完成作业同样入选。
func DueWithin(assignments []model.Assignment, now time.Time, isComplete bool) []model.Assignment {
	cutoff := now.Add(AssignmentHorizon)

	selected := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.IsComplete != isComplete {
			continue
		}
		if a.DueDate.After(cutoff) {
			continue
		}
		selected = append(selected, a)
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].DueDate.Before(selected[j].DueDate)
	})

	return selected
}
