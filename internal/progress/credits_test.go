package progress

import "testing"

// ── CreditTotals 测试 ──

func TestCreditTotals_Buckets(t *testing.T) {
	var c CreditTotals
	c.Add(StatusCompleted, 95, 3)
	c.Add(StatusCompleted, 50, 4) // 不及格：只进 attempted
	c.Add(StatusInProgress, 88, 3)
	c.Add(StatusPlanned, 100, 4)
	c.Add(StatusNotPlanned, 100, 2)

	if c.Attempted != 7 {
		t.Errorf("期望 Attempted=7，实际=%d", c.Attempted)
	}
	if c.Passed != 3 {
		t.Errorf("期望 Passed=3，实际=%d", c.Passed)
	}
	if c.InProgress != 3 {
		t.Errorf("期望 InProgress=3，实际=%d", c.InProgress)
	}
	if c.Planned != 4 {
		t.Errorf("期望 Planned=4，实际=%d", c.Planned)
	}
	if c.NotPlanned != 2 {
		t.Errorf("期望 NotPlanned=2，实际=%d", c.NotPlanned)
	}
}

// 及格线边界：70 及格，69.9 不及格
func TestCreditTotals_PassBoundary(t *testing.T) {
	var c CreditTotals
	c.Add(StatusCompleted, 70, 3)
	c.Add(StatusCompleted, 69.9, 4)

	if c.Attempted != 7 {
		t.Errorf("期望 Attempted=7，实际=%d", c.Attempted)
	}
	if c.Passed != 3 {
		t.Errorf("期望 Passed=3，实际=%d", c.Passed)
	}
}

// 两套口径各自独立：成绩 65 的已完成课程在学分桶里不及格（< 70），
// 在 GPA 累加器里却获得学分（>= 60）——两个结论必须同时成立。
func TestCreditTotals_ThresholdsIndependentFromGPA(t *testing.T) {
	var c CreditTotals
	c.Add(StatusCompleted, 65, 3)

	if c.Attempted != 3 {
		t.Errorf("期望 Attempted=3，实际=%d", c.Attempted)
	}
	if c.Passed != 0 {
		t.Errorf("成绩 65 不应计入 Passed，实际=%d", c.Passed)
	}

	g := NewGPA()
	g.AddCourse(65, 3)
	if g.EarnedCredits() != 3 {
		t.Errorf("同一门课在 GPA 口径下应获得学分 3，实际=%d", g.EarnedCredits())
	}
}
