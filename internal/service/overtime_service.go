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

// OvertimeService 加班业务接口
// is_paid 是唯一可变字段
type OvertimeService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateOvertimeRequest) (*dto.OvertimeResponse, error)
	List(ctx context.Context, userID uint) ([]dto.OvertimeResponse, error)
	SetPaid(ctx context.Context, userID, id uint, isPaid bool) (*dto.OvertimeResponse, error)
	Delete(ctx context.Context, userID, id uint) error
}

type overtimeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOvertimeService 创建 OvertimeService 实例
func NewOvertimeService(repo *repository.Repository, logger *zap.Logger) OvertimeService {
	return &overtimeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *overtimeService) Create(ctx context.Context, userID uint, req *dto.CreateOvertimeRequest) (*dto.OvertimeResponse, error) {
	if !validHalfStep(req.Hours) {
		return nil, ErrInvalidHours
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &model.OvertimeEntry{
		UserID: userID,
		Date:   date,
		Hours:  req.Hours,
		Note:   req.Note,
		IsPaid: false,
	}

	if err := s.repo.Overtime.Create(ctx, entry); err != nil {
		s.logger.Error("创建加班记录失败", zap.Error(err))
		return nil, err
	}

	return s.toOvertimeResponse(entry), nil
}

// ────────────────────── List ──────────────────────

func (s *overtimeService) List(ctx context.Context, userID uint) ([]dto.OvertimeResponse, error) {
	entries, err := s.repo.Overtime.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询加班记录失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.OvertimeResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *s.toOvertimeResponse(&entries[i]))
	}
	return result, nil
}

// ────────────────────── SetPaid ──────────────────────

func (s *overtimeService) SetPaid(ctx context.Context, userID, id uint, isPaid bool) (*dto.OvertimeResponse, error) {
	entry, err := s.repo.Overtime.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("查询加班记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	// 状态未变化时跳过写库
	if entry.IsPaid == isPaid {
		return s.toOvertimeResponse(entry), nil
	}

	if err := s.repo.Overtime.SetPaid(ctx, id, userID, isPaid); err != nil {
		s.logger.Error("更新加班支付状态失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	entry.IsPaid = isPaid
	return s.toOvertimeResponse(entry), nil
}

// ────────────────────── Delete ──────────────────────

func (s *overtimeService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.repo.Overtime.GetByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		s.logger.Error("查询加班记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Overtime.Delete(ctx, id, userID); err != nil {
		s.logger.Error("删除加班记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *overtimeService) toOvertimeResponse(entry *model.OvertimeEntry) *dto.OvertimeResponse {
	return &dto.OvertimeResponse{
		ID:        entry.ID,
		Date:      entry.Date.Format(dateLayout),
		Hours:     entry.Hours,
		Note:      entry.Note,
		IsPaid:    entry.IsPaid,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}
