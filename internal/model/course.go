package model

// Course 课程表，对应 courses
//
// semester_id 可为空：未关联学期的课程状态恒为 not_planned。
type Course struct {
	CourseID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	UserID       string  `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	ShortID      string  `gorm:"type:varchar(20);not null"                      json:"short_id"` // 课程代号，如 CS-4337
	Description  *string `gorm:"type:text"                                      json:"description,omitempty"`
	CreditHours  int     `gorm:"type:smallint;not null"                         json:"credit_hours"`
	CurrentGrade float64 `gorm:"type:numeric(5,2);not null;default:100"         json:"current_grade"` // 百分制 0-100
	SemesterID   *string `gorm:"type:uuid;index"                                json:"semester_id,omitempty"`
	SoftDeleteModel

	// 关联
	User     *User     `gorm:"foreignKey:UserID;references:UserID"         json:"user,omitempty"`
	Semester *Semester `gorm:"foreignKey:SemesterID;references:SemesterID" json:"semester,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
