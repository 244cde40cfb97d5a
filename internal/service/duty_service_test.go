package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"stargate/backend/internal/dto"
	"stargate/backend/internal/model"
	"stargate/backend/internal/repository"
)

// ── 测试辅助 ──

type dutyTestEnv struct {
	svc        DutyService
	personRepo *mockPersonRepo
	detailRepo *mockDetailRepo
	dutyRepo   *mockDutyRepo
	logRepo    *mockLogRepo
}

func setupTestDutyService() *dutyTestEnv {
	personRepo := newMockPersonRepo()
	detailRepo := newMockDetailRepo(personRepo)
	dutyRepo := newMockDutyRepo()
	logRepo := newMockLogRepo()
	repo := &repository.Repository{
		Person: personRepo,
		Detail: detailRepo,
		Duty:   dutyRepo,
		Log:    logRepo,
	}
	logger := zap.NewNop()
	audit := NewAuditRecorder(repo, logger)
	return &dutyTestEnv{
		svc:        NewDutyService(repo, audit, nil, logger),
		personRepo: personRepo,
		detailRepo: detailRepo,
		dutyRepo:   dutyRepo,
		logRepo:    logRepo,
	}
}

func (e *dutyTestEnv) addPerson(t *testing.T, name string) *model.Person {
	t.Helper()
	p := &model.Person{Name: name}
	if err := e.personRepo.Create(context.Background(), p); err != nil {
		t.Fatalf("创建测试人员失败: %v", err)
	}
	return p
}

func (e *dutyTestEnv) assign(t *testing.T, name, rank, title, start string) int {
	t.Helper()
	id, err := e.svc.Assign(context.Background(), &dto.CreateAstronautDutyRequest{
		Name:          name,
		Rank:          rank,
		DutyTitle:     title,
		DutyStartDate: start,
	})
	if err != nil {
		t.Fatalf("Assign 应成功: %v", err)
	}
	return id
}

// ── Assign 测试 ──

func TestDutyService_Assign_FirstAssignment(t *testing.T) {
	env := setupTestDutyService()
	p := env.addPerson(t, "Mark Watney")

	id := env.assign(t, "Mark Watney", "Specialist", "Botanist", "2020-01-01")
	if id == 0 {
		t.Error("应返回新任命记录主键")
	}

	// 首次任命建档：career_start = 任命日，career_end 为空
	detail, err := env.detailRepo.GetByPersonID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("应已创建状态快照: %v", err)
	}
	if detail.CurrentRank != "Specialist" || detail.CurrentDutyTitle != "Botanist" {
		t.Errorf("快照内容错误: rank=%s title=%s", detail.CurrentRank, detail.CurrentDutyTitle)
	}
	if got := detail.CareerStartDate.Format("2006-01-02"); got != "2020-01-01" {
		t.Errorf("期望 career_start=2020-01-01，实际=%s", got)
	}
	if detail.CareerEndDate != nil {
		t.Error("非退役任命不应设置 career_end_date")
	}

	// 新记录在任
	duty := env.dutyRepo.duties[id]
	if duty == nil || !duty.IsOpen() {
		t.Fatal("新任命记录应在任（duty_end_date 为空）")
	}

	// 审计成功留痕
	last := env.logRepo.lastEntry()
	if last == nil || !last.IsSuccess {
		t.Error("应写入成功审计日志")
	}
}

func TestDutyService_Assign_EndDatesPreviousDuty(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")

	firstID := env.assign(t, "Mark Watney", "Specialist", "Botanist", "2020-01-01")
	newID := env.assign(t, "Mark Watney", "Commander", "Commander", "2020-06-01")

	// 既有记录封口：end = 新任命日前一天
	first := env.dutyRepo.duties[firstID]
	if first.DutyEndDate == nil {
		t.Fatal("既有任命应被封口")
	}
	if got := first.DutyEndDate.Format("2006-01-02"); got != "2020-05-31" {
		t.Errorf("期望封口日期=2020-05-31，实际=%s", got)
	}

	// 新记录在任，快照更新
	if !env.dutyRepo.duties[newID].IsOpen() {
		t.Error("新任命记录应在任")
	}
	detail, _ := env.detailRepo.GetByPersonID(context.Background(), 1)
	if detail.CurrentDutyTitle != "Commander" {
		t.Errorf("快照应更新为 Commander，实际=%s", detail.CurrentDutyTitle)
	}
	// 快照的 career_start 保持首次任命日
	if got := detail.CareerStartDate.Format("2006-01-02"); got != "2020-01-01" {
		t.Errorf("career_start 不应随后续任命变化，实际=%s", got)
	}
}

func TestDutyService_Assign_PersonNotFound(t *testing.T) {
	env := setupTestDutyService()

	_, err := env.svc.Assign(context.Background(), &dto.CreateAstronautDutyRequest{
		Name:          "Nobody",
		Rank:          "Specialist",
		DutyTitle:     "Botanist",
		DutyStartDate: "2020-01-01",
	})
	if !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("期望 ErrPersonNotFound，实际: %v", err)
	}

	// 无任何业务写入，但失败审计留痕
	if len(env.dutyRepo.duties) != 0 || len(env.detailRepo.details) != 0 {
		t.Error("人员不存在时不应产生业务写入")
	}
	last := env.logRepo.lastEntry()
	if last == nil || last.IsSuccess {
		t.Error("应写入失败审计日志")
	}
}

func TestDutyService_Assign_DuplicateOpenDuty(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")
	env.assign(t, "Mark Watney", "Specialist", "Botanist", "2020-01-01")

	dutyCount := len(env.dutyRepo.duties)

	// 同职务且在任 → 冲突
	_, err := env.svc.Assign(context.Background(), &dto.CreateAstronautDutyRequest{
		Name:          "Mark Watney",
		Rank:          "Senior Specialist",
		DutyTitle:     "Botanist",
		DutyStartDate: "2021-03-15",
	})
	if !errors.Is(err, ErrDutyAlreadyAssigned) {
		t.Errorf("期望 ErrDutyAlreadyAssigned，实际: %v", err)
	}

	// 冲突整体回滚：历史记录数不变，快照未被改写
	if len(env.dutyRepo.duties) != dutyCount {
		t.Error("冲突任命不应新增历史记录")
	}
	detail, _ := env.detailRepo.GetByPersonID(context.Background(), 1)
	if detail.CurrentRank != "Specialist" {
		t.Errorf("冲突任命不应改写快照，实际 rank=%s", detail.CurrentRank)
	}
	last := env.logRepo.lastEntry()
	if last == nil || last.IsSuccess {
		t.Error("应写入失败审计日志")
	}
}

func TestDutyService_Assign_SameTitleAfterClosed(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")
	env.assign(t, "Mark Watney", "Specialist", "Botanist", "2020-01-01")
	env.assign(t, "Mark Watney", "Commander", "Commander", "2020-06-01")

	// Botanist 已封口，再次任命同职务不算冲突
	env.assign(t, "Mark Watney", "Specialist", "Botanist", "2021-01-01")

	if len(env.dutyRepo.duties) != 3 {
		t.Errorf("期望 3 条历史记录，实际=%d", len(env.dutyRepo.duties))
	}
}

func TestDutyService_Assign_InvalidStartDate(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")

	_, err := env.svc.Assign(context.Background(), &dto.CreateAstronautDutyRequest{
		Name:          "Mark Watney",
		Rank:          "Specialist",
		DutyTitle:     "Botanist",
		DutyStartDate: "01/06/2020",
	})
	if !errors.Is(err, ErrInvalidStartDate) {
		t.Errorf("期望 ErrInvalidStartDate，实际: %v", err)
	}
}

// ── 退役任命测试 ──

func TestDutyService_Assign_RetiredOnFirstAssignment(t *testing.T) {
	env := setupTestDutyService()
	p := env.addPerson(t, "John Glenn")

	env.assign(t, "John Glenn", "Colonel", "RETIRED", "2020-01-01")

	// 首次任命即退役：career_end = 任命日当天
	detail, _ := env.detailRepo.GetByPersonID(context.Background(), p.ID)
	if detail.CareerEndDate == nil {
		t.Fatal("退役任命应设置 career_end_date")
	}
	if got := detail.CareerEndDate.Format("2006-01-02"); got != "2020-01-01" {
		t.Errorf("期望 career_end=2020-01-01，实际=%s", got)
	}
}

func TestDutyService_Assign_RetiredAfterService(t *testing.T) {
	env := setupTestDutyService()
	p := env.addPerson(t, "John Glenn")
	env.assign(t, "John Glenn", "Colonel", "Pilot", "2019-05-10")

	env.assign(t, "John Glenn", "Colonel", "RETIRED", "2020-01-01")

	// 在役后退役：career_end = 任命日前一天
	detail, _ := env.detailRepo.GetByPersonID(context.Background(), p.ID)
	if detail.CareerEndDate == nil {
		t.Fatal("退役任命应设置 career_end_date")
	}
	if got := detail.CareerEndDate.Format("2006-01-02"); got != "2019-12-31" {
		t.Errorf("期望 career_end=2019-12-31，实际=%s", got)
	}
	if detail.CurrentDutyTitle != model.DutyTitleRetired {
		t.Errorf("快照职务应为 RETIRED，实际=%s", detail.CurrentDutyTitle)
	}
}

func TestDutyService_Assign_RetiredIsCaseSensitive(t *testing.T) {
	env := setupTestDutyService()
	p := env.addPerson(t, "John Glenn")

	// 小写 "Retired" 不触发退役分支
	env.assign(t, "John Glenn", "Colonel", "Retired", "2020-01-01")

	detail, _ := env.detailRepo.GetByPersonID(context.Background(), p.ID)
	if detail.CareerEndDate != nil {
		t.Error("非精确匹配 RETIRED 不应设置 career_end_date")
	}
}

func TestDutyService_Assign_NonRetiredKeepsCareerEnd(t *testing.T) {
	env := setupTestDutyService()
	p := env.addPerson(t, "John Glenn")
	env.assign(t, "John Glenn", "Colonel", "Pilot", "2019-05-10")
	env.assign(t, "John Glenn", "Colonel", "RETIRED", "2020-01-01")

	// 退役后复出：career_end_date 保留既有值
	env.assign(t, "John Glenn", "Colonel", "Consultant", "2021-06-01")

	detail, _ := env.detailRepo.GetByPersonID(context.Background(), p.ID)
	if detail.CareerEndDate == nil {
		t.Fatal("非退役任命不应清除既有 career_end_date")
	}
	if got := detail.CareerEndDate.Format("2006-01-02"); got != "2019-12-31" {
		t.Errorf("career_end 应保持 2019-12-31，实际=%s", got)
	}
	if detail.CurrentDutyTitle != "Consultant" {
		t.Errorf("快照职务应更新为 Consultant，实际=%s", detail.CurrentDutyTitle)
	}
}

// ── GetDutiesByName 测试 ──

func TestDutyService_GetDutiesByName_Success(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")
	env.assign(t, "Mark Watney", "Specialist", "Botanist", "2020-01-01")
	env.assign(t, "Mark Watney", "Commander", "Commander", "2020-06-01")

	result, message, err := env.svc.GetDutiesByName(context.Background(), "Mark Watney")
	if err != nil {
		t.Fatalf("GetDutiesByName 应成功: %v", err)
	}
	if message != "" {
		t.Errorf("有历史时不应返回提示消息: %s", message)
	}
	if result.Person == nil || result.Person.Name != "Mark Watney" {
		t.Fatal("应返回人员概要")
	}
	if len(result.AstronautDuties) != 2 {
		t.Fatalf("期望 2 条历史，实际=%d", len(result.AstronautDuties))
	}

	// 开始日期倒序：最新在前
	if result.AstronautDuties[0].DutyTitle != "Commander" {
		t.Errorf("历史应按开始日期倒序，第一条=%s", result.AstronautDuties[0].DutyTitle)
	}
	if result.AstronautDuties[0].DutyEndDate != nil {
		t.Error("在任记录 end 应为空")
	}
	if result.AstronautDuties[1].DutyEndDate == nil || *result.AstronautDuties[1].DutyEndDate != "2020-05-31" {
		t.Error("封口记录 end 应为 2020-05-31")
	}
}

func TestDutyService_GetDutiesByName_NoDuties(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")

	result, message, err := env.svc.GetDutiesByName(context.Background(), "Mark Watney")
	if err != nil {
		t.Fatalf("GetDutiesByName 应成功: %v", err)
	}
	if len(result.AstronautDuties) != 0 {
		t.Errorf("期望空历史，实际=%d", len(result.AstronautDuties))
	}
	if message == "" {
		t.Error("历史为空时应返回提示消息")
	}
}

func TestDutyService_GetDutiesByName_PersonNotFound(t *testing.T) {
	env := setupTestDutyService()

	_, _, err := env.svc.GetDutiesByName(context.Background(), "Nobody")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("期望 ErrPersonNotFound，实际: %v", err)
	}

	last := env.logRepo.lastEntry()
	if last == nil || last.IsSuccess {
		t.Error("查无此人应写入失败审计日志")
	}
}

func TestDutyService_GetDutiesByName_TrimsName(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")
	env.assign(t, "Mark Watney", "Specialist", "Botanist", "2020-01-01")

	result, _, err := env.svc.GetDutiesByName(context.Background(), "  Mark Watney  ")
	if err != nil {
		t.Fatalf("带空白的姓名应可命中: %v", err)
	}
	if result.Person.Name != "Mark Watney" {
		t.Errorf("期望命中 Mark Watney，实际=%s", result.Person.Name)
	}
}

// 任命历史只增不减：封口 + 新增，旧记录保留
func TestDutyService_Assign_HistoryIsAppendOnly(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")

	dates := []string{"2019-01-01", "2019-07-01", "2020-02-01", "2020-09-01"}
	titles := []string{"Trainee", "Pilot", "Botanist", "Commander"}
	for i := range dates {
		env.assign(t, "Mark Watney", "Specialist", titles[i], dates[i])
	}

	if len(env.dutyRepo.duties) != 4 {
		t.Fatalf("期望 4 条历史记录，实际=%d", len(env.dutyRepo.duties))
	}

	// 有且仅有一条在任
	open := 0
	for _, d := range env.dutyRepo.duties {
		if d.IsOpen() {
			open++
		}
	}
	if open != 1 {
		t.Errorf("期望恰好 1 条在任记录，实际=%d", open)
	}
}

// 封口日期取"开始日期最近"一条
func TestDutyService_Assign_EndDatesLatestByStartDate(t *testing.T) {
	env := setupTestDutyService()
	env.addPerson(t, "Mark Watney")
	env.assign(t, "Mark Watney", "Specialist", "Botanist", "2020-01-01")

	newStart := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	env.assign(t, "Mark Watney", "Commander", "Commander", newStart.Format("2006-01-02"))

	latest, err := env.dutyRepo.GetLatestByPerson(context.Background(), 1)
	if err != nil {
		t.Fatalf("应存在任命记录: %v", err)
	}
	if !latest.DutyStartDate.Equal(newStart) {
		t.Errorf("最近一条应为新任命，实际 start=%s", latest.DutyStartDate.Format("2006-01-02"))
	}
}
