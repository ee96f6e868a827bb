package progress

// PassingGrade 学分结算的及格线。
// 与 GPA 累加器“获得学分”的口径（成绩 >= 60）不同，二者是独立的产品概念。
const PassingGrade = 70.0

// CreditTotals 按课程状态划分的学分桶，五个桶互斥。
type CreditTotals struct {
	Attempted  int // completed 课程全部学分（含不及格）
	Passed     int // completed 且成绩 >= PassingGrade 的学分
	InProgress int // in_progress 课程学分
	Planned    int // planned 课程学分
	NotPlanned int // not_planned 课程学分
}

// Add 按课程状态将学分计入对应桶
func (c *CreditTotals) Add(status CourseStatus, grade float64, creditHours int) {
	switch status {
	case StatusCompleted:
		c.Attempted += creditHours
		if grade >= PassingGrade {
			c.Passed += creditHours
		}
	case StatusInProgress:
		c.InProgress += creditHours
	case StatusPlanned:
		c.Planned += creditHours
	case StatusNotPlanned:
		c.NotPlanned += creditHours
	}
}
