package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/jrsamyy/sami-work-v2/internal/dto"
	"github.com/jrsamyy/sami-work-v2/internal/repository"
)

func setupTestLeaveService() (LeaveService, *repository.Repository) {
	repo := newTestRepo()
	return NewLeaveService(repo, zap.NewNop()), repo
}

// ── 创建测试 ──

func TestCreateLeave_DaysInclusive(t *testing.T) {
	svc, _ := setupTestLeaveService()

	// 1月1日至1月5日，首尾均计入
	leave, err := svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if leave.Days != 5 {
		t.Errorf("期望 Days=5，实际=%d", leave.Days)
	}
}

func TestCreateLeave_SingleDay(t *testing.T) {
	svc, _ := setupTestLeaveService()

	leave, err := svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type:      "sick",
		StartDate: "2024-03-15",
		EndDate:   "2024-03-15",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if leave.Days != 1 {
		t.Errorf("单日请假期望 Days=1，实际=%d", leave.Days)
	}
}

func TestCreateLeave_InvalidType(t *testing.T) {
	svc, _ := setupTestLeaveService()

	_, err := svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type:      "vacation",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})
	if !errors.Is(err, ErrInvalidLeaveType) {
		t.Errorf("期望 ErrInvalidLeaveType，实际: %v", err)
	}
}

func TestCreateLeave_BadDateFormat(t *testing.T) {
	svc, _ := setupTestLeaveService()

	_, err := svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "01/01/2024",
		EndDate:   "2024-01-05",
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}

func TestCreateLeave_EndBeforeStart(t *testing.T) {
	svc, _ := setupTestLeaveService()

	_, err := svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2024-01-05",
		EndDate:   "2024-01-01",
	})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("期望 ErrInvalidDateRange，实际: %v", err)
	}
}

// ── 列表测试 ──

func TestListLeaves_RoundTrip(t *testing.T) {
	svc, _ := setupTestLeaveService()

	created, err := svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
		Note:      "新年假期",
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	list, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("期望 1 条记录，实际=%d", len(list))
	}

	got := list[0]
	if got.ID != created.ID {
		t.Errorf("ID 不一致: %d != %d", got.ID, created.ID)
	}
	if got.Type != "annual" || got.StartDate != "2024-01-01" || got.EndDate != "2024-01-05" {
		t.Errorf("字段往返不一致: %+v", got)
	}
	if got.Note != "新年假期" {
		t.Errorf("期望 Note=新年假期，实际=%s", got.Note)
	}
}

func TestListLeaves_ScopedToUser(t *testing.T) {
	svc, _ := setupTestLeaveService()

	_, _ = svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type: "annual", StartDate: "2024-01-01", EndDate: "2024-01-01",
	})
	_, _ = svc.Create(context.Background(), 2, &dto.CreateLeaveRequest{
		Type: "sick", StartDate: "2024-02-01", EndDate: "2024-02-01",
	})

	list, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("用户 1 期望仅见自己的 1 条记录，实际=%d", len(list))
	}
}

func TestListLeaves_Empty(t *testing.T) {
	svc, _ := setupTestLeaveService()

	list, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("空列表不应报错: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("期望空列表，实际=%d", len(list))
	}
}

// ── 删除测试 ──

func TestDeleteLeave_Twice(t *testing.T) {
	svc, _ := setupTestLeaveService()

	created, err := svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type: "annual", StartDate: "2024-01-01", EndDate: "2024-01-05",
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("首次删除应成功: %v", err)
	}
	// 幂等性：重复删除视作记录不存在
	if err := svc.Delete(context.Background(), 1, created.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("二次删除期望 ErrRecordNotFound，实际: %v", err)
	}
}

func TestDeleteLeave_NotOwned(t *testing.T) {
	svc, _ := setupTestLeaveService()

	created, err := svc.Create(context.Background(), 1, &dto.CreateLeaveRequest{
		Type: "annual", StartDate: "2024-01-01", EndDate: "2024-01-05",
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	// 他人的记录与不存在的记录不可区分
	if err := svc.Delete(context.Background(), 2, created.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("删除他人记录期望 ErrRecordNotFound，实际: %v", err)
	}
}
