// internal/sheets/excel.go
package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ExcelStore persists every sheet in a single xlsx workbook on disk. The
// excelize file handle is not safe for concurrent use, so all operations
// hold one mutex and save before returning.
type ExcelStore struct {
	mu     sync.Mutex
	path   string
	file   *excelize.File
	logger *slog.Logger
}

// NewExcelStore opens the workbook at path, creating it with all known
// sheets and header rows when it does not exist. Missing sheets in an
// existing workbook are created as well.
func NewExcelStore(path string, logger *slog.Logger) (*ExcelStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var f *excelize.File
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f = excelize.NewFile()
		logger.Info("Workbook not found, creating a new one", slog.String("path", path))
	} else {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("sheets: open workbook %s: %w", path, err)
		}
	}

	s := &ExcelStore{path: path, file: f, logger: logger}
	if err := s.ensureSheets(); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SaveAs(path); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheets: save workbook %s: %w", path, err)
	}
	logger.Info("Workbook ready", slog.String("path", path), slog.Int("sheets", len(Headers)))
	return s, nil
}

func (s *ExcelStore) ensureSheets() error {
	existing := make(map[string]bool)
	for _, name := range s.file.GetSheetList() {
		existing[name] = true
	}
	for name, header := range Headers {
		if existing[name] {
			continue
		}
		if _, err := s.file.NewSheet(name); err != nil {
			return fmt.Errorf("sheets: create sheet %s: %w", name, err)
		}
		if err := s.writeRow(name, 1, header); err != nil {
			return err
		}
	}
	// Drop excelize's default sheet if it is not one of ours.
	if def := s.file.GetSheetName(0); def != "" {
		if _, known := Headers[def]; !known {
			s.file.DeleteSheet(def)
		}
	}
	return nil
}

func (s *ExcelStore) writeRow(sheet string, rowIdx int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return fmt.Errorf("sheets: cell name for row %d: %w", rowIdx, err)
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := s.file.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("sheets: write row %d of %s: %w", rowIdx, sheet, err)
	}
	return nil
}

// ReadRange returns all data rows of the sheet, header excluded.
func (s *ExcelStore) ReadRange(ctx context.Context, sheet string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// WriteRange replaces every data row of the sheet.
func (s *ExcelStore) WriteRange(ctx context.Context, sheet string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resetSheet(sheet); err != nil {
		return err
	}
	for i, row := range rows {
		if err := s.writeRow(sheet, i+2, row); err != nil {
			return err
		}
	}
	return s.save()
}

// AppendRows adds rows after the last data row of the sheet.
func (s *ExcelStore) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.file.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("sheets: read %s before append: %w", sheet, err)
	}
	next := len(existing) + 1
	if next < 2 {
		next = 2 // header occupies row 1 even when GetRows misses it
	}
	for i, row := range rows {
		if err := s.writeRow(sheet, next+i, row); err != nil {
			return err
		}
	}
	return s.save()
}

// ClearRange removes every data row of the sheet, keeping the header.
func (s *ExcelStore) ClearRange(ctx context.Context, sheet string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resetSheet(sheet); err != nil {
		return err
	}
	return s.save()
}

// resetSheet recreates the sheet with only its header row. Deleting and
// recreating is simpler and cheaper than removing rows one by one.
func (s *ExcelStore) resetSheet(sheet string) error {
	header, ok := Headers[sheet]
	if !ok {
		return fmt.Errorf("sheets: unknown sheet %q", sheet)
	}
	if err := s.file.DeleteSheet(sheet); err != nil {
		return fmt.Errorf("sheets: delete sheet %s: %w", sheet, err)
	}
	if _, err := s.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheets: recreate sheet %s: %w", sheet, err)
	}
	return s.writeRow(sheet, 1, header)
}

func (s *ExcelStore) save() error {
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("sheets: save workbook %s: %w", s.path, err)
	}
	return nil
}

// Ping verifies the workbook is still readable. Used by the health check.
func (s *ExcelStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.GetRows(SheetUsers); err != nil {
		return fmt.Errorf("sheets: ping: %w", err)
	}
	return nil
}

// Close releases the workbook handle.
func (s *ExcelStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
