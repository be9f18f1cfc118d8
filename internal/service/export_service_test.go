package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jrsamyy/sami-work-v2/internal/dto"
	"github.com/jrsamyy/sami-work-v2/internal/repository"
	"github.com/jrsamyy/sami-work-v2/pkg/i18n"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, LeaveService, OvertimeService, LieuService, *repository.Repository) {
	repo := newTestRepo()
	logger := zap.NewNop()
	balance := NewBalanceService(repo, logger)
	return NewExportService(repo, balance, logger),
		NewLeaveService(repo, logger),
		NewOvertimeService(repo, logger),
		NewLieuService(repo, logger),
		repo
}

// ── ExportRecords 测试 ──

func TestExportRecords_Structure(t *testing.T) {
	exportSvc, leaveSvc, overtimeSvc, lieuSvc, _ := setupTestExportService()
	ctx := context.Background()

	if _, err := leaveSvc.Create(ctx, 1, &dto.CreateLeaveRequest{
		Type: "annual", StartDate: "2024-01-01", EndDate: "2024-01-05", Note: "新年假期",
	}); err != nil {
		t.Fatalf("创建请假失败: %v", err)
	}
	if _, err := overtimeSvc.Create(ctx, 1, &dto.CreateOvertimeRequest{Date: "2024-03-01", Hours: 2.5}); err != nil {
		t.Fatalf("创建加班失败: %v", err)
	}
	if _, err := lieuSvc.Create(ctx, 1, &dto.CreateLieuRequest{Date: "2024-03-02", Days: 1}); err != nil {
		t.Fatalf("创建调休失败: %v", err)
	}

	buf, filename, err := exportSvc.ExportRecords(ctx, 1, i18n.LocaleEN)
	if err != nil {
		t.Fatalf("ExportRecords 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾: %s", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("导出文件应可被 excelize 解析: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Leaves", "Overtime", "Lieu", "Balance"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Errorf("缺少 Sheet: %s", sheet)
		}
	}

	// 数据行校验
	start, err := f.GetCellValue("Leaves", "B2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if start != "2024-01-01" {
		t.Errorf("期望开始日期 2024-01-01，实际=%s", start)
	}

	// 余额 Sheet：21−5=16
	remaining, _ := f.GetCellValue("Balance", "B1")
	if remaining != "16" {
		t.Errorf("期望年假剩余 16，实际=%s", remaining)
	}
}

func TestExportRecords_LocalizedHeaders(t *testing.T) {
	exportSvc, _, _, _, _ := setupTestExportService()
	ctx := context.Background()

	buf, _, err := exportSvc.ExportRecords(ctx, 1, i18n.LocaleAR)
	if err != nil {
		t.Fatalf("ExportRecords 应成功: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("解析导出文件失败: %v", err)
	}
	defer f.Close()

	header, _ := f.GetCellValue("Leaves", "A1")
	if header != i18n.FieldLabel(i18n.LocaleAR, i18n.KeyType) {
		t.Errorf("表头应为阿拉伯语标签，实际=%s", header)
	}
}

// ── ExportCalendar 测试 ──

func TestExportCalendar_AllDayEvents(t *testing.T) {
	exportSvc, leaveSvc, _, _, _ := setupTestExportService()
	ctx := context.Background()

	if _, err := leaveSvc.Create(ctx, 1, &dto.CreateLeaveRequest{
		Type: "annual", StartDate: "2024-01-01", EndDate: "2024-01-05",
	}); err != nil {
		t.Fatalf("创建请假失败: %v", err)
	}

	buf, filename, err := exportSvc.ExportCalendar(ctx, 1)
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名应以 .ics 结尾: %s", filename)
	}

	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "END:VCALENDAR") {
		t.Error("缺少 VCALENDAR 包裹")
	}
	if !strings.Contains(content, "BEGIN:VEVENT") {
		t.Error("应包含 VEVENT")
	}
	if !strings.Contains(content, "DTSTART;VALUE=DATE:20240101") {
		t.Errorf("应为 20240101 开始的全天事件:\n%s", content)
	}
	// DTEND 开区间：最后一天的次日
	if !strings.Contains(content, "DTEND;VALUE=DATE:20240106") {
		t.Errorf("DTEND 应为 20240106:\n%s", content)
	}
}

func TestExportCalendar_Empty(t *testing.T) {
	exportSvc, _, _, _, _ := setupTestExportService()

	buf, _, err := exportSvc.ExportCalendar(context.Background(), 1)
	if err != nil {
		t.Fatalf("无记录时导出不应报错: %v", err)
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Error("无记录时不应包含 VEVENT")
	}
}
