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

// LeaveService 请假业务接口
// 请假记录只增不改：提交后若有误，删除重新提交
type LeaveService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateLeaveRequest) (*dto.LeaveResponse, error)
	List(ctx context.Context, userID uint) ([]dto.LeaveResponse, error)
	Delete(ctx context.Context, userID, id uint) error
}

type leaveService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeaveService 创建 LeaveService 实例
func NewLeaveService(repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *leaveService) Create(ctx context.Context, userID uint, req *dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	// 1. 类别校验（封闭枚举，不做任何文案子串匹配）
	leaveType := model.LeaveType(req.Type)
	if !leaveType.Valid() {
		return nil, ErrInvalidLeaveType
	}

	// 2. 日期解析与区间校验
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	// 3. 天数由服务端计算，保证 days == end-start+1 恒成立
	leave := &model.LeaveRequest{
		UserID:    userID,
		Type:      leaveType,
		StartDate: start,
		EndDate:   end,
		Days:      leaveDays(start, end),
		Note:      req.Note,
	}

	if err := s.repo.Leave.Create(ctx, leave); err != nil {
		s.logger.Error("创建请假记录失败", zap.Error(err))
		return nil, err
	}

	return s.toLeaveResponse(leave), nil
}

// ────────────────────── List ──────────────────────

func (s *leaveService) List(ctx context.Context, userID uint) ([]dto.LeaveResponse, error) {
	leaves, err := s.repo.Leave.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询请假记录失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		result = append(result, *s.toLeaveResponse(&leaves[i]))
	}
	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *leaveService) Delete(ctx context.Context, userID, id uint) error {
	// 先按 (id, user_id) 解析记录：他人的记录与不存在的记录同样返回 NotFound
	if _, err := s.repo.Leave.GetByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		s.logger.Error("查询请假记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Leave.Delete(ctx, id, userID); err != nil {
		s.logger.Error("删除请假记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *leaveService) toLeaveResponse(leave *model.LeaveRequest) *dto.LeaveResponse {
	return &dto.LeaveResponse{
		ID:        leave.ID,
		Type:      string(leave.Type),
		StartDate: leave.StartDate.Format(dateLayout),
		EndDate:   leave.EndDate.Format(dateLayout),
		Days:      leave.Days,
		Note:      leave.Note,
		CreatedAt: leave.CreatedAt.Format(time.RFC3339),
	}
}
