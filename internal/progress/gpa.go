package progress

import "math"

// GPA 学分加权绩点累加器。
//
// 每次计算新建实例，绝不跨请求复用。
// 注意“获得学分”的口径是绩点 > 0（即成绩 >= 60），
// 与 CreditTotals 的及格口径（成绩 >= 70）是两个独立概念，不要合并。
type GPA struct {
	attemptedCredits int     // 参与绩点计算的学分总数
	qualityPoints    float64 // 绩点 × 学分 的累计
	earnedCredits    int     // 绩点 > 0 的课程学分累计
}

// NewGPA 创建空的绩点累加器
func NewGPA() *GPA {
	return &GPA{}
}

// AddCourse 累入一门课程的成绩与学分
func (g *GPA) AddCourse(grade float64, creditHours int) {
	points := GradePoints(grade)
	g.attemptedCredits += creditHours
	g.qualityPoints += points * float64(creditHours)
	if points > 0 {
		g.earnedCredits += creditHours
	}
}

// Value 返回加权平均绩点，四舍五入（远离零方向）保留两位小数。
// 未累入任何课程时返回 0，不会出现 NaN。
func (g *GPA) Value() float64 {
	if g.attemptedCredits == 0 {
		return 0
	}
	gpa := g.qualityPoints / float64(g.attemptedCredits)
	return math.Round(gpa*100) / 100
}

// EarnedCredits 返回已获得学分总数
func (g *GPA) EarnedCredits() int {
	return g.earnedCredits
}
