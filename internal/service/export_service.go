package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hungryangel/early-childhood-auto-doc/internal/model"
	"github.com/hungryangel/early-childhood-auto-doc/internal/schedule"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/apperr"
	"github.com/hungryangel/early-childhood-auto-doc/pkg/dateutil"
)

// ExportService 주간 보육일지导出业务接口
//
// 设计说明：
//   - 以一周（周一至周五）为单位导出保育日志表格
//   - 行：固定日程各行；列：星期一 ~ 星期五
//   - 单元格：활동명，已记录실행결과时追加 "(o)" 等标注
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportWeekly 导出某周的保育日志为 Excel
	ExportWeekly(ctx context.Context, startDate, endDate string, classID *int) (*bytes.Buffer, string, error)
}

type exportService struct {
	logs   ChildcareLogService
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(logs ChildcareLogService, logger *zap.Logger) ExportService {
	return &exportService{logs: logs, logger: logger}
}

// 星期列名（周一起）
var weekdayNames = []string{"월", "화", "수", "목", "금"}

// ════════════════════════════════════════════════════════════
// ExportWeekly — 导出주간 보육일지为 Excel
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportWeekly(ctx context.Context, startDate, endDate string, classID *int) (*bytes.Buffer, string, error) {
	logs, err := s.logs.Weekly(ctx, startDate, endDate, classID)
	if err != nil {
		return nil, "", err
	}

	// 按日期索引；同日取最新一条（Weekly 已按 created_at 倒序）
	byDate := make(map[string]*model.ChildcareLog)
	for i := range logs {
		log := &logs[i]
		if _, ok := byDate[log.Date]; !ok {
			byDate[log.Date] = log
		}
	}

	// 周一起的 5 个工作日
	monday := dateutil.StartOfWeek(dateutil.MustParse(startDate))
	days := make([]string, 5)
	for i := 0; i < 5; i++ {
		days[i] = monday.AddDate(0, 0, i).Format(dateutil.Layout)
	}

	// 行骨架：默认固定日程的各行标签
	template := schedule.DefaultTemplate("")
	rowLabels := make([]string, 0, len(template))
	for _, item := range template {
		rowLabels = append(rowLabels, schedule.BaseLabel(item.Label))
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "주간보육일지"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", apperr.Internal("EXPORT_FAILED", "Failed to generate export file")
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 26)
	for i := 0; i < 5; i++ {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetColWidth(sheetName, col, col, 28)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("주간 보육일지 (%s ~ %s)", days[0], days[4]))
	f.MergeCell(sheetName, "A1", cell(colName(5), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头：시간 | 월 (날짜) ... 금 (날짜)
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "시간")
	for i, name := range weekdayNames {
		f.SetCellValue(sheetName, cell(colName(1+i), row), fmt.Sprintf("%s (%s)", name, days[i]))
	}

	// 日程行：标签 × 每日活动
	row = 3
	for _, label := range rowLabels {
		f.SetCellValue(sheetName, cell("A", row), label)
		for i, day := range days {
			f.SetCellValue(sheetName, cell(colName(1+i), row), s.cellText(byDate[day], label))
		}
		row++
	}

	// 摘要行：키워드 / 평가
	f.SetCellValue(sheetName, cell("A", row), "놀이 키워드")
	for i, day := range days {
		if log, ok := byDate[day]; ok {
			f.SetCellValue(sheetName, cell(colName(1+i), row), log.Keywords)
		}
	}
	row++
	f.SetCellValue(sheetName, cell("A", row), "평가 및 지원계획")
	for i, day := range days {
		if log, ok := byDate[day]; ok {
			f.SetCellValue(sheetName, cell(colName(1+i), row), log.SupportPlan)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", apperr.Internal("EXPORT_FAILED", "Failed to generate export file")
	}

	filename := fmt.Sprintf("주간보육일지_%s.xlsx", days[0])
	return buf, filename, nil
}

// cellText 取当日日程中与行标签对应的单元格文本
func (s *exportService) cellText(log *model.ChildcareLog, label string) string {
	if log == nil {
		return "-"
	}
	for _, item := range log.Schedule {
		if schedule.BaseLabel(item.Label) != label {
			continue
		}
		if item.Activity == "" {
			return "-"
		}
		if item.Execution != "" {
			return fmt.Sprintf("%s (%s)", item.Activity, item.Execution)
		}
		return item.Activity
	}
	return "-"
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
