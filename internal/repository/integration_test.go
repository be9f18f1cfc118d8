//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jrsamyy/sami-work-v2/internal/model"
	"github.com/jrsamyy/sami-work-v2/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=work_balance password=work_balance_password dbname=work_balance_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.LeaveRequest{},
		&model.OvertimeEntry{},
		&model.LieuEntry{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// setupTestUser 创建测试用户并返回清理函数
func setupTestUser(t *testing.T) (*model.User, func()) {
	t.Helper()
	ctx := context.Background()

	user := &model.User{
		Username:     fmt.Sprintf("user-%d", time.Now().UnixNano()),
		PasswordHash: "$2a$10$placeholder",
	}
	if err := testDB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	cleanup := func() {
		testDB.Where("user_id = ?", user.ID).Delete(&model.LeaveRequest{})
		testDB.Where("user_id = ?", user.ID).Delete(&model.OvertimeEntry{})
		testDB.Where("user_id = ?", user.ID).Delete(&model.LieuEntry{})
		testDB.Where("id = ?", user.ID).Delete(&model.User{})
	}
	return user, cleanup
}

// ═══════════════════════════════════════════════════════════
// UserRepository
// ═══════════════════════════════════════════════════════════

func TestUserRepo_UniqueUsername(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	user, cleanup := setupTestUser(t)
	defer cleanup()

	dup := &model.User{Username: user.Username, PasswordHash: "$2a$10$other"}
	if err := repo.User.Create(ctx, dup); err == nil {
		testDB.Where("id = ?", dup.ID).Delete(&model.User{})
		t.Error("重复用户名应触发唯一约束错误")
	}
}

func TestUserRepo_GetByUsername(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	user, cleanup := setupTestUser(t)
	defer cleanup()

	got, err := repo.User.GetByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("GetByUsername 失败: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("期望 ID=%d，实际=%d", user.ID, got.ID)
	}

	if _, err := repo.User.GetByUsername(ctx, "no-such-user"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// LeaveRepository
// ═══════════════════════════════════════════════════════════

func TestLeaveRepo_CRUD(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	user, cleanup := setupTestUser(t)
	defer cleanup()

	leave := &model.LeaveRequest{
		UserID:    user.ID,
		Type:      model.LeaveAnnual,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Days:      5,
		Note:      "集成测试",
	}
	if err := repo.Leave.Create(ctx, leave); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	got, err := repo.Leave.GetByID(ctx, leave.ID, user.ID)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if got.Days != 5 || got.Type != model.LeaveAnnual {
		t.Errorf("字段往返不一致: %+v", got)
	}

	// 归属校验：他人视角等同不存在
	if _, err := repo.Leave.GetByID(ctx, leave.ID, user.ID+1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("跨用户读取期望 ErrRecordNotFound，实际: %v", err)
	}

	list, err := repo.Leave.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser 失败: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("期望 1 条记录，实际=%d", len(list))
	}

	if err := repo.Leave.Delete(ctx, leave.ID, user.ID); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if err := repo.Leave.Delete(ctx, leave.ID, user.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("二次删除期望 ErrRecordNotFound，实际: %v", err)
	}
}

func TestLeaveRepo_ListOrderedByID(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	user, cleanup := setupTestUser(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		leave := &model.LeaveRequest{
			UserID:    user.ID,
			Type:      model.LeaveSick,
			StartDate: time.Date(2024, 3, 1+i, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 1+i, 0, 0, 0, 0, time.UTC),
			Days:      1,
		}
		if err := repo.Leave.Create(ctx, leave); err != nil {
			t.Fatalf("Create 失败: %v", err)
		}
	}

	list, err := repo.Leave.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser 失败: %v", err)
	}
	for i := 1; i < len(list); i++ {
		if list[i].ID < list[i-1].ID {
			t.Error("列表应按 ID 升序")
		}
	}
}

// ═══════════════════════════════════════════════════════════
// OvertimeRepository / LieuRepository
// ═══════════════════════════════════════════════════════════

func TestOvertimeRepo_SetPaid(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	user, cleanup := setupTestUser(t)
	defer cleanup()

	entry := &model.OvertimeEntry{
		UserID: user.ID,
		Date:   time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Hours:  2.5,
	}
	if err := repo.Overtime.Create(ctx, entry); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	if err := repo.Overtime.SetPaid(ctx, entry.ID, user.ID, true); err != nil {
		t.Fatalf("SetPaid 失败: %v", err)
	}
	got, _ := repo.Overtime.GetByID(ctx, entry.ID, user.ID)
	if !got.IsPaid {
		t.Error("IsPaid 应为 true")
	}

	// 跨用户更新无效
	if err := repo.Overtime.SetPaid(ctx, entry.ID, user.ID+1, false); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("跨用户更新期望 ErrRecordNotFound，实际: %v", err)
	}
}

func TestLieuRepo_SetUsed(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	user, cleanup := setupTestUser(t)
	defer cleanup()

	entry := &model.LieuEntry{
		UserID: user.ID,
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Days:   0.5,
	}
	if err := repo.Lieu.Create(ctx, entry); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	if err := repo.Lieu.SetUsed(ctx, entry.ID, user.ID, true); err != nil {
		t.Fatalf("SetUsed 失败: %v", err)
	}
	got, _ := repo.Lieu.GetByID(ctx, entry.ID, user.ID)
	if !got.IsUsed {
		t.Error("IsUsed 应为 true")
	}
}
