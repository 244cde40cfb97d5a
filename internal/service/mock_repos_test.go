package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"stargate/backend/internal/model"
)

// ── Mock PersonRepository ──

type mockPersonRepo struct {
	nextID    int
	persons   map[string]*model.Person
	summaries map[string]*model.PersonAstronaut
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{
		nextID:    1,
		persons:   make(map[string]*model.Person),
		summaries: make(map[string]*model.PersonAstronaut),
	}
}

func (m *mockPersonRepo) Create(_ context.Context, person *model.Person) error {
	person.ID = m.nextID
	m.nextID++
	m.persons[person.Name] = person
	m.summaries[person.Name] = &model.PersonAstronaut{
		PersonID: person.ID,
		Name:     person.Name,
	}
	return nil
}

func (m *mockPersonRepo) GetByName(_ context.Context, name string) (*model.Person, error) {
	if p, ok := m.persons[name]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) GetByNameLocked(ctx context.Context, name string) (*model.Person, error) {
	return m.GetByName(ctx, name)
}

func (m *mockPersonRepo) GetSummaryByName(_ context.Context, name string) (*model.PersonAstronaut, error) {
	if s, ok := m.summaries[name]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) ListSummaries(_ context.Context) ([]model.PersonAstronaut, error) {
	result := make([]model.PersonAstronaut, 0, len(m.summaries))
	for _, s := range m.summaries {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock AstronautDetailRepository ──

// 视图投影由 mockPersonRepo 的 summaries 维护，
// mockDetailRepo 在写入时同步回填，模拟数据库视图的联表可见性。

type mockDetailRepo struct {
	nextID  int
	details map[int]*model.AstronautDetail
	persons *mockPersonRepo
}

func newMockDetailRepo(persons *mockPersonRepo) *mockDetailRepo {
	return &mockDetailRepo{nextID: 1, details: make(map[int]*model.AstronautDetail), persons: persons}
}

func (m *mockDetailRepo) syncSummary(detail *model.AstronautDetail) {
	for _, s := range m.persons.summaries {
		if s.PersonID == detail.PersonID {
			rank := detail.CurrentRank
			title := detail.CurrentDutyTitle
			start := detail.CareerStartDate
			s.CurrentRank = &rank
			s.CurrentDutyTitle = &title
			s.CareerStartDate = &start
			s.CareerEndDate = detail.CareerEndDate
		}
	}
}

func (m *mockDetailRepo) GetByPersonID(_ context.Context, personID int) (*model.AstronautDetail, error) {
	if d, ok := m.details[personID]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDetailRepo) Create(_ context.Context, detail *model.AstronautDetail) error {
	detail.ID = m.nextID
	m.nextID++
	m.details[detail.PersonID] = detail
	m.syncSummary(detail)
	return nil
}

func (m *mockDetailRepo) Update(_ context.Context, detail *model.AstronautDetail) error {
	m.details[detail.PersonID] = detail
	m.syncSummary(detail)
	return nil
}

// ── Mock AstronautDutyRepository ──

type mockDutyRepo struct {
	nextID int
	duties map[int]*model.AstronautDuty
}

func newMockDutyRepo() *mockDutyRepo {
	return &mockDutyRepo{nextID: 1, duties: make(map[int]*model.AstronautDuty)}
}

func (m *mockDutyRepo) GetOpenByTitle(_ context.Context, personID int, dutyTitle string) (*model.AstronautDuty, error) {
	for _, d := range m.duties {
		if d.PersonID == personID && d.DutyTitle == dutyTitle && d.DutyEndDate == nil {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDutyRepo) GetLatestByPerson(_ context.Context, personID int) (*model.AstronautDuty, error) {
	var latest *model.AstronautDuty
	for _, d := range m.duties {
		if d.PersonID != personID {
			continue
		}
		if latest == nil || d.DutyStartDate.After(latest.DutyStartDate) {
			latest = d
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (m *mockDutyRepo) ListByPerson(_ context.Context, personID int) ([]model.AstronautDuty, error) {
	var result []model.AstronautDuty
	for _, d := range m.duties {
		if d.PersonID == personID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DutyStartDate.After(result[j].DutyStartDate)
	})
	return result, nil
}

func (m *mockDutyRepo) Create(_ context.Context, duty *model.AstronautDuty) error {
	duty.ID = m.nextID
	m.nextID++
	m.duties[duty.ID] = duty
	return nil
}

func (m *mockDutyRepo) Update(_ context.Context, duty *model.AstronautDuty) error {
	m.duties[duty.ID] = duty
	return nil
}

// ── Mock LogRepository ──

type mockLogRepo struct {
	nextID  int
	entries []model.LogEntry
}

func newMockLogRepo() *mockLogRepo {
	return &mockLogRepo{nextID: 1}
}

func (m *mockLogRepo) Create(_ context.Context, entry *model.LogEntry) error {
	entry.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockLogRepo) List(_ context.Context, offset, limit int) ([]model.LogEntry, int64, error) {
	total := int64(len(m.entries))

	// id DESC
	reversed := make([]model.LogEntry, len(m.entries))
	for i := range m.entries {
		reversed[len(m.entries)-1-i] = m.entries[i]
	}

	if offset >= len(reversed) {
		return []model.LogEntry{}, total, nil
	}
	end := offset + limit
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[offset:end], total, nil
}

func (m *mockLogRepo) lastEntry() *model.LogEntry {
	if len(m.entries) == 0 {
		return nil
	}
	return &m.entries[len(m.entries)-1]
}
