package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/dateutil"
)

var ErrExportGenerateFail = errors.New("gagal membuat berkas Excel")

// ExportService turns the monthly attendance recap into an Excel workbook.
// One row per teacher, one column per calendar day; the cell holds the
// check-in/check-out times or the recorded status.
type ExportService interface {
	// MonthlyRecap renders the recap for a YYYY-MM month. The buffer holds
	// the .xlsx content; the handler sets the response headers.
	MonthlyRecap(ctx context.Context, month string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) MonthlyRecap(ctx context.Context, month string) (*bytes.Buffer, string, error) {
	start, end, err := dateutil.MonthBounds(month, time.Local)
	if err != nil {
		return nil, "", ErrInvalidMonth
	}
	daysInMonth := int(end.Sub(start).Hours() / 24)

	// Zero active teachers is a valid recap: the workbook keeps its title
	// and header rows and simply has no data rows.
	teachers, err := s.repo.User.ListActiveByRoles(ctx, []string{model.RoleGuru})
	if err != nil {
		s.logger.Error("gagal mengambil daftar guru", zap.Error(err))
		return nil, "", err
	}

	logs, err := s.repo.Attendance.ListByRange(ctx, start, end)
	if err != nil {
		s.logger.Error("gagal mengambil rekap absensi", zap.Error(err))
		return nil, "", err
	}

	// Index: "userID:day" → cell text.
	logIndex := make(map[string]string, len(logs))
	for i := range logs {
		log := &logs[i]
		key := fmt.Sprintf("%s:%d", log.UserID, log.Date.Day())
		logIndex[key] = recapCellText(log)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Rekap"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("gagal membuat sheet", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 24)
	lastCol := colName(daysInMonth) // day columns start at B
	f.SetColWidth(sheetName, "B", lastCol, 13)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E7D32"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Title row spans the full width.
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Rekap Kehadiran Guru — %s", month))
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// Header row: teacher name, then day numbers.
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "Nama Guru")
	for day := 1; day <= daysInMonth; day++ {
		f.SetCellValue(sheetName, cell(colName(day), row), day)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(lastCol, row), headerStyle)

	row = 3
	for i := range teachers {
		teacher := &teachers[i]
		f.SetCellValue(sheetName, cell("A", row), teacher.Name)
		for day := 1; day <= daysInMonth; day++ {
			key := fmt.Sprintf("%s:%d", teacher.UserID, day)
			if text, ok := logIndex[key]; ok {
				f.SetCellValue(sheetName, cell(colName(day), row), text)
			} else {
				f.SetCellValue(sheetName, cell(colName(day), row), "-")
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("gagal menulis Excel", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("rekap_kehadiran_%s.xlsx", month)
	return buf, filename, nil
}

// recapCellText renders one attendance row as a cell. Times win over the bare
// status when present.
func recapCellText(log *model.AttendanceLog) string {
	if log.CheckInTime == nil {
		return log.Status
	}
	in := log.CheckInTime.Format("15:04")
	if log.CheckOutTime == nil {
		return in
	}
	return fmt.Sprintf("%s-%s", in, log.CheckOutTime.Format("15:04"))
}

// ── helpers ──

// colName maps a day number to its sheet column, day 1 → B.
func colName(day int) string {
	name, _ := excelize.ColumnNumberToName(day + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
