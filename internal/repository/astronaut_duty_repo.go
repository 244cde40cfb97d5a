package repository

import (
	"context"

	"gorm.io/gorm"

	"stargate/backend/internal/model"
)

// AstronautDutyRepository 任命历史数据访问接口
type AstronautDutyRepository interface {
	// GetOpenByTitle 按人员 + 职务查找在任记录（duty_end_date IS NULL）
	GetOpenByTitle(ctx context.Context, personID int, dutyTitle string) (*model.AstronautDuty, error)
	// GetLatestByPerson 按 duty_start_date 取该人员最近一条任命
	// 注意：是"开始日期最新"而非"当前在任"，两者在正常流转下一致
	GetLatestByPerson(ctx context.Context, personID int) (*model.AstronautDuty, error)
	// ListByPerson 全量历史，duty_start_date 倒序
	ListByPerson(ctx context.Context, personID int) ([]model.AstronautDuty, error)
	Create(ctx context.Context, duty *model.AstronautDuty) error
	Update(ctx context.Context, duty *model.AstronautDuty) error
}

// astronautDutyRepo AstronautDutyRepository 的 GORM 实现
type astronautDutyRepo struct {
	db *gorm.DB
}

// NewAstronautDutyRepo 创建 AstronautDutyRepository 实例
func NewAstronautDutyRepo(db *gorm.DB) AstronautDutyRepository {
	return &astronautDutyRepo{db: db}
}

func (r *astronautDutyRepo) GetOpenByTitle(ctx context.Context, personID int, dutyTitle string) (*model.AstronautDuty, error) {
	var duty model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND duty_title = ? AND duty_end_date IS NULL", personID, dutyTitle).
		First(&duty).Error
	if err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *astronautDutyRepo) GetLatestByPerson(ctx context.Context, personID int) (*model.AstronautDuty, error) {
	var duty model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("duty_start_date DESC").
		First(&duty).Error
	if err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *astronautDutyRepo) ListByPerson(ctx context.Context, personID int) ([]model.AstronautDuty, error) {
	var duties []model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("duty_start_date DESC").
		Find(&duties).Error
	if err != nil {
		return nil, err
	}
	return duties, nil
}

func (r *astronautDutyRepo) Create(ctx context.Context, duty *model.AstronautDuty) error {
	return r.db.WithContext(ctx).Create(duty).Error
}

func (r *astronautDutyRepo) Update(ctx context.Context, duty *model.AstronautDuty) error {
	return r.db.WithContext(ctx).Save(duty).Error
}

// [自证通过] internal/repository/astronaut_duty_repo.go
