package i18n

import (
	"testing"

	"github.com/jrsamyy/sami-work-v2/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"en", LocaleEN},
		{"ar", LocaleAR},
		{"de", LocaleDE},
		{"AR", LocaleAR},
		{"de-DE", LocaleDE},
		{"", LocaleEN},
		{"fr", LocaleEN}, // 未支持语言回退英语
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q，期望 %q", tt.in, got, tt.want)
		}
	}
}

func TestLeaveTypeLabel_AllTypesAllLocales(t *testing.T) {
	// 每个类别在每种语言下都有非空且不同于枚举值本身的标签
	for _, locale := range []Locale{LocaleEN, LocaleAR, LocaleDE} {
		seen := make(map[string]bool)
		for _, lt := range model.LeaveTypes() {
			label := LeaveTypeLabel(locale, lt)
			if label == "" {
				t.Errorf("locale=%s type=%s 标签为空", locale, lt)
			}
			if seen[label] {
				t.Errorf("locale=%s 标签重复: %s", locale, label)
			}
			seen[label] = true
		}
	}
}

func TestLeaveTypeLabel_LocalesDiffer(t *testing.T) {
	en := LeaveTypeLabel(LocaleEN, model.LeaveAnnual)
	ar := LeaveTypeLabel(LocaleAR, model.LeaveAnnual)
	de := LeaveTypeLabel(LocaleDE, model.LeaveAnnual)
	if en == ar || en == de {
		t.Errorf("不同语言标签应不同: en=%s ar=%s de=%s", en, ar, de)
	}
}

func TestFieldLabel_UnknownKeyFallsBack(t *testing.T) {
	if got := FieldLabel(LocaleAR, "no_such_key"); got != "no_such_key" {
		t.Errorf("未知键应原样返回，实际: %s", got)
	}
}
