package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jrsamyy/sami-work-v2/internal/repository"
	"github.com/jrsamyy/sami-work-v2/pkg/i18n"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出包含三类记录各一个 Sheet，外加余额汇总 Sheet，表头按 locale 查表
//   - 日历导出仅包含请假记录，生成全天事件的 ICS
//   - 均以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportRecords 导出个人全部记录与余额为 Excel
	ExportRecords(ctx context.Context, userID uint, locale i18n.Locale) (*bytes.Buffer, string, error)
	// ExportCalendar 导出请假记录为 ICS 日历
	ExportCalendar(ctx context.Context, userID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo    *repository.Repository
	balance BalanceService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, balance BalanceService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, balance: balance, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportRecords — 导出记录与余额为 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportRecords(ctx context.Context, userID uint, locale i18n.Locale) (*bytes.Buffer, string, error) {
	// 1. 加载三类记录
	leaves, err := s.repo.Leave.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询请假记录失败", zap.Error(err))
		return nil, "", err
	}
	overtime, err := s.repo.Overtime.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询加班记录失败", zap.Error(err))
		return nil, "", err
	}
	lieu, err := s.repo.Lieu.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询调休记录失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 余额汇总（与记录同一口径，即时重算）
	balance, err := s.balance.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	label := func(key string) string { return i18n.FieldLabel(locale, key) }

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// ── Sheet: Leaves ──
	sheet := "Leaves"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "E", 16)
	writeHeader(f, sheet, headerStyle, []string{
		label(i18n.KeyType), label(i18n.KeyStart), label(i18n.KeyEnd),
		label(i18n.KeyDays), label(i18n.KeyNote),
	})
	for i := range leaves {
		row := i + 2
		l := &leaves[i]
		f.SetCellValue(sheet, cell("A", row), i18n.LeaveTypeLabel(locale, l.Type))
		f.SetCellValue(sheet, cell("B", row), l.StartDate.Format(dateLayout))
		f.SetCellValue(sheet, cell("C", row), l.EndDate.Format(dateLayout))
		f.SetCellValue(sheet, cell("D", row), l.Days)
		f.SetCellValue(sheet, cell("E", row), l.Note)
	}

	// ── Sheet: Overtime ──
	sheet = "Overtime"
	f.NewSheet(sheet)
	f.SetColWidth(sheet, "A", "D", 16)
	writeHeader(f, sheet, headerStyle, []string{
		label(i18n.KeyDate), label(i18n.KeyHours), label(i18n.KeyPaid), label(i18n.KeyNote),
	})
	for i := range overtime {
		row := i + 2
		e := &overtime[i]
		f.SetCellValue(sheet, cell("A", row), e.Date.Format(dateLayout))
		f.SetCellValue(sheet, cell("B", row), e.Hours)
		f.SetCellValue(sheet, cell("C", row), e.IsPaid)
		f.SetCellValue(sheet, cell("D", row), e.Note)
	}

	// ── Sheet: Lieu ──
	sheet = "Lieu"
	f.NewSheet(sheet)
	f.SetColWidth(sheet, "A", "D", 16)
	writeHeader(f, sheet, headerStyle, []string{
		label(i18n.KeyDate), label(i18n.KeyDays), label(i18n.KeyUsed), label(i18n.KeyNote),
	})
	for i := range lieu {
		row := i + 2
		e := &lieu[i]
		f.SetCellValue(sheet, cell("A", row), e.Date.Format(dateLayout))
		f.SetCellValue(sheet, cell("B", row), e.Days)
		f.SetCellValue(sheet, cell("C", row), e.IsUsed)
		f.SetCellValue(sheet, cell("D", row), e.Note)
	}

	// ── Sheet: Balance ──
	sheet = "Balance"
	f.NewSheet(sheet)
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetCellValue(sheet, "A1", label(i18n.KeyAnnualRemaining))
	f.SetCellValue(sheet, "B1", balance.AnnualRemaining)
	f.SetCellValue(sheet, "A2", label(i18n.KeyOvertimePending))
	f.SetCellValue(sheet, "B2", balance.OvertimePendingHours)
	f.SetCellValue(sheet, "A3", label(i18n.KeyLieuUnused))
	f.SetCellValue(sheet, "B3", balance.LieuUnusedDays)

	// 4. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("work_balance_%s.xlsx", time.Now().Format(dateLayout))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 导出请假记录为 ICS 日历
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportCalendar(ctx context.Context, userID uint) (*bytes.Buffer, string, error) {
	leaves, err := s.repo.Leave.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询请假记录失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//work-balance//EN")

	now := time.Now()
	for i := range leaves {
		l := &leaves[i]
		event := cal.AddEvent(fmt.Sprintf("leave-%d@work-balance", l.ID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		// 全天事件：DTEND 为开区间，需加一天
		event.SetAllDayStartAt(l.StartDate)
		event.SetAllDayEndAt(l.EndDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s (%dd)", i18n.LeaveTypeLabel(i18n.LocaleEN, l.Type), l.Days))
		if l.Note != "" {
			event.SetDescription(l.Note)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("leaves_%s.ics", time.Now().Format(dateLayout))
	return buf, filename, nil
}

// ── 辅助函数 ──

func writeHeader(f *excelize.File, sheet string, style int, headers []string) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, cell(col, 1), h)
		f.SetCellStyle(sheet, cell(col, 1), cell(col, 1), style)
	}
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
