package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jrsamyy/sami-work-v2/internal/dto"
	"github.com/jrsamyy/sami-work-v2/internal/model"
	"github.com/jrsamyy/sami-work-v2/internal/repository"
)

// LieuService 调休业务接口
// days 采用半天粒度（0.5 步长），is_used 是唯一可变字段
type LieuService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateLieuRequest) (*dto.LieuResponse, error)
	List(ctx context.Context, userID uint) ([]dto.LieuResponse, error)
	SetUsed(ctx context.Context, userID, id uint, isUsed bool) (*dto.LieuResponse, error)
	Delete(ctx context.Context, userID, id uint) error
}

type lieuService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLieuService 创建 LieuService 实例
func NewLieuService(repo *repository.Repository, logger *zap.Logger) LieuService {
	return &lieuService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *lieuService) Create(ctx context.Context, userID uint, req *dto.CreateLieuRequest) (*dto.LieuResponse, error) {
	if !validHalfStep(req.Days) {
		return nil, ErrInvalidDays
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &model.LieuEntry{
		UserID: userID,
		Date:   date,
		Days:   req.Days,
		Note:   req.Note,
		IsUsed: false,
	}

	if err := s.repo.Lieu.Create(ctx, entry); err != nil {
		s.logger.Error("创建调休记录失败", zap.Error(err))
		return nil, err
	}

	return s.toLieuResponse(entry), nil
}

// ────────────────────── List ──────────────────────

func (s *lieuService) List(ctx context.Context, userID uint) ([]dto.LieuResponse, error) {
	entries, err := s.repo.Lieu.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询调休记录失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.LieuResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *s.toLieuResponse(&entries[i]))
	}
	return result, nil
}

// ────────────────────── SetUsed ──────────────────────

func (s *lieuService) SetUsed(ctx context.Context, userID, id uint, isUsed bool) (*dto.LieuResponse, error) {
	entry, err := s.repo.Lieu.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("查询调休记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	// 状态未变化时跳过写库
	if entry.IsUsed == isUsed {
		return s.toLieuResponse(entry), nil
	}

	if err := s.repo.Lieu.SetUsed(ctx, id, userID, isUsed); err != nil {
		s.logger.Error("更新调休使用状态失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	entry.IsUsed = isUsed
	return s.toLieuResponse(entry), nil
}

// ────────────────────── Delete ──────────────────────

func (s *lieuService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.repo.Lieu.GetByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		s.logger.Error("查询调休记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Lieu.Delete(ctx, id, userID); err != nil {
		s.logger.Error("删除调休记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *lieuService) toLieuResponse(entry *model.LieuEntry) *dto.LieuResponse {
	return &dto.LieuResponse{
		ID:        entry.ID,
		Date:      entry.Date.Format(dateLayout),
		Days:      entry.Days,
		Note:      entry.Note,
		IsUsed:    entry.IsUsed,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}
