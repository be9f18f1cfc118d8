package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/jrsamyy/sami-work-v2/internal/model"
)

// ── Mock Repositories ──
// 基于内存 map 的仓储实现，ID 自增模拟数据库行为

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = user
	return nil
}

type mockLeaveRepo struct {
	leaves map[uint]*model.LeaveRequest
	nextID uint
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{leaves: make(map[uint]*model.LeaveRequest), nextID: 1}
}

func (m *mockLeaveRepo) Create(_ context.Context, leave *model.LeaveRequest) error {
	leave.ID = m.nextID
	m.nextID++
	m.leaves[leave.ID] = leave
	return nil
}

func (m *mockLeaveRepo) GetByID(_ context.Context, id, userID uint) (*model.LeaveRequest, error) {
	if l, ok := m.leaves[id]; ok && l.UserID == userID {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeaveRepo) ListByUser(_ context.Context, userID uint) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	// map 无序，按 ID 升序收集
	for id := uint(1); id < m.nextID; id++ {
		if l, ok := m.leaves[id]; ok && l.UserID == userID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) Delete(_ context.Context, id, userID uint) error {
	if l, ok := m.leaves[id]; ok && l.UserID == userID {
		delete(m.leaves, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

type mockOvertimeRepo struct {
	entries map[uint]*model.OvertimeEntry
	nextID  uint
}

func newMockOvertimeRepo() *mockOvertimeRepo {
	return &mockOvertimeRepo{entries: make(map[uint]*model.OvertimeEntry), nextID: 1}
}

func (m *mockOvertimeRepo) Create(_ context.Context, entry *model.OvertimeEntry) error {
	entry.ID = m.nextID
	m.nextID++
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockOvertimeRepo) GetByID(_ context.Context, id, userID uint) (*model.OvertimeEntry, error) {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOvertimeRepo) ListByUser(_ context.Context, userID uint) ([]model.OvertimeEntry, error) {
	var result []model.OvertimeEntry
	for id := uint(1); id < m.nextID; id++ {
		if e, ok := m.entries[id]; ok && e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockOvertimeRepo) SetPaid(_ context.Context, id, userID uint, isPaid bool) error {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		e.IsPaid = isPaid
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockOvertimeRepo) Delete(_ context.Context, id, userID uint) error {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		delete(m.entries, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

type mockLieuRepo struct {
	entries map[uint]*model.LieuEntry
	nextID  uint
}

func newMockLieuRepo() *mockLieuRepo {
	return &mockLieuRepo{entries: make(map[uint]*model.LieuEntry), nextID: 1}
}

func (m *mockLieuRepo) Create(_ context.Context, entry *model.LieuEntry) error {
	entry.ID = m.nextID
	m.nextID++
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockLieuRepo) GetByID(_ context.Context, id, userID uint) (*model.LieuEntry, error) {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLieuRepo) ListByUser(_ context.Context, userID uint) ([]model.LieuEntry, error) {
	var result []model.LieuEntry
	for id := uint(1); id < m.nextID; id++ {
		if e, ok := m.entries[id]; ok && e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockLieuRepo) SetUsed(_ context.Context, id, userID uint, isUsed bool) error {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		e.IsUsed = isUsed
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockLieuRepo) Delete(_ context.Context, id, userID uint) error {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		delete(m.entries, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}
