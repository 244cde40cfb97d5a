package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stargate/backend/internal/dto"
	"stargate/backend/internal/service"
	"stargate/backend/pkg/response"
)

// PersonHandler 人员模块 HTTP 处理器
type PersonHandler struct {
	personSvc service.PersonService
}

// NewPersonHandler 创建 PersonHandler
func NewPersonHandler(personSvc service.PersonService) *PersonHandler {
	return &PersonHandler{personSvc: personSvc}
}

// CreatePerson 创建人员
// POST /api/v1/persons
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	id, err := h.personSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePersonError(c, err)
		return
	}

	response.Created(c, &dto.CreatePersonResponse{ID: id})
}

// GetPerson 按姓名查询人员概要
// GET /api/v1/persons/:name
// 查无此人时 person 为 null，success 仍为 true（查询语义）
func (h *PersonHandler) GetPerson(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "name must not be blank")
		return
	}

	person, err := h.personSvc.GetByName(c.Request.Context(), name)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.OK(c, &dto.GetPersonResponse{Person: person})
}

// ListPeople 获取人员列表
// GET /api/v1/persons
func (h *PersonHandler) ListPeople(c *gin.Context) {
	people, err := h.personSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.OK(c, &dto.ListPeopleResponse{People: people})
}

// handlePersonError 统一处理人员模块业务错误
func (h *PersonHandler) handlePersonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBlankName):
		response.BadRequest(c, "name must not be blank")
	case errors.Is(err, service.ErrPersonExists):
		response.Conflict(c, "person already exists with that name")
	default:
		response.InternalError(c, err.Error())
	}
}
