package model

import "time"

// Semester 学期表，对应 semesters
//
// 日期区间约定 end_date 晚于 start_date，由录入边界校验；
// 引擎对异常区间也有确定的判定结果，不在此处强制。
type Semester struct {
	SemesterID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"semester_id"`
	UserID     string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Name       string    `gorm:"type:varchar(100);not null"                     json:"name"`
	StartDate  time.Time `gorm:"type:timestamptz;not null"                      json:"start_date"`
	EndDate    time.Time `gorm:"type:timestamptz;not null"                      json:"end_date"`
	SoftDeleteModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }
