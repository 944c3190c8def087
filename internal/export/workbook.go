package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// WorkbookService renders the consolidated situational report for a
// typhoon: one worksheet per report kind, every row of that kind. The
// resulting file path is what the registry records as the typhoon's
// generated report artifact.
type WorkbookService struct {
	dir      string
	log      *logger.Logger
	bindings []services.KindBinding
}

func NewWorkbookService(dir string, baseLog *logger.Logger, bindings []services.KindBinding) *WorkbookService {
	return &WorkbookService{
		dir:      dir,
		log:      baseLog.With("service", "WorkbookService"),
		bindings: bindings,
	}
}

type sheetData struct {
	name    string
	columns []string
	rows    []map[string]any
	ids     []string
	created []time.Time
}

// Build writes the workbook for the given typhoon and returns its path.
func (s *WorkbookService) Build(ctx context.Context, typhoon *types.Typhoon) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	sheets := make([]*sheetData, len(s.bindings))
	g, gctx := errgroup.WithContext(ctx)
	for i, binding := range s.bindings {
		g.Go(func() error {
			reports, err := binding.ListReports(gctx, typhoon.ID)
			if err != nil {
				return fmt.Errorf("collect %s: %w", binding.Table, err)
			}
			sheets[i] = buildSheet(binding.Table, reports)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return "", err
		}
		header := append([]string{"id"}, sheet.columns...)
		header = append(header, "created_at")
		for col, title := range header {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet.name, cell, title); err != nil {
				return "", err
			}
		}
		for rowIdx, row := range sheet.rows {
			values := make([]any, 0, len(header))
			values = append(values, sheet.ids[rowIdx])
			for _, col := range sheet.columns {
				values = append(values, row[col])
			}
			values = append(values, sheet.created[rowIdx].Format(time.RFC3339))
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return "", err
				}
				if err := f.SetCellValue(sheet.name, cell, v); err != nil {
					return "", err
				}
			}
		}
	}
	// Drop the default sheet excelize opens with.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("sitrep_%s_%s.xlsx", slugify(typhoon.Name), time.Now().UTC().Format("20060102_150405"))
	path := filepath.Join(s.dir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	s.log.Info("situational report workbook generated", "typhoon_id", typhoon.ID, "path", path)
	return path, nil
}

func buildSheet(table string, reports []types.Report) *sheetData {
	sheet := &sheetData{name: table}
	for i, report := range reports {
		fields := report.FieldValues()
		if i == 0 {
			sheet.columns = make([]string, 0, len(fields))
			for col := range fields {
				sheet.columns = append(sheet.columns, col)
			}
			sort.Strings(sheet.columns)
		}
		sheet.rows = append(sheet.rows, fields)
		sheet.ids = append(sheet.ids, report.ReportID().String())
		sheet.created = append(sheet.created, report.CreatedAtTime())
	}
	return sheet
}

func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "typhoon"
	}
	return b.String()
}
