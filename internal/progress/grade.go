package progress

// GradePoints 将百分制成绩映射为 4.0 制绩点。
//
// 阶梯函数，下界闭合，不做插值：
// >=90 → 4.0，>=80 → 3.0，>=70 → 2.0，>=60 → 1.0，其余 → 0.0。
// 对全体实数有定义；区间外取值的校验由录入边界负责，这里只做优雅降级。
func GradePoints(grade float64) float64 {
	switch {
	case grade >= 90:
		return 4.0
	case grade >= 80:
		return 3.0
	case grade >= 70:
		return 2.0
	case grade >= 60:
		return 1.0
	default:
		return 0.0
	}
}
