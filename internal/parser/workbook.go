package parser

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
)

// minSheetRows je najmanji broj redaka (zaglavlje + podaci) da bi sheet
// uopće mogao sadržavati tablicu troškovnika.
const minSheetRows = 3

// ParseWorkbook parsira sve sheetove jedne datoteke u normalizirane stavke.
//
// Nevaljan workbook ili pokvaren sheet nikad nisu fatalni: datoteka koja
// se ne da otvoriti daje nula redaka, pokvaren sheet se preskače, a
// detalji završavaju u izvještaju. Datum se izvodi iz naziva datoteke
// jednom i dijeli među sheetovima.
func ParseWorkbook(data []byte, filename string) ([]model.Row, *FileReport) {
	start := time.Now()

	report := &FileReport{
		Filename: filename,
		Sheets:   []SheetResult{},
	}

	var datum *time.Time
	if d, ok := GuessDateFromFilename(filename); ok {
		datum = &d
	}
	report.Datum = datum

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		report.Duration = time.Since(start)
		report.Sheets = append(report.Sheets, SheetResult{
			SheetName: "",
			Status:    "error",
			Errors:    []string{fmt.Sprintf("otvaranje datoteke nije uspjelo: %v", err)},
		})
		return nil, report
	}
	defer wb.Close()

	sheetList := wb.GetSheetList()
	report.TotalSheets = len(sheetList)

	var out []model.Row
	for _, sheetName := range sheetList {
		result, rows := parseSheet(wb, sheetName, filename, datum)
		report.Sheets = append(report.Sheets, result)

		switch result.Status {
		case "imported":
			report.ImportedSheets++
			report.Rows += len(rows)
			out = append(out, rows...)
		case "skipped":
			report.SkippedSheets++
		}
	}

	report.Duration = time.Since(start)
	return out, report
}

// parseSheet obrađuje jedan sheet unutar granice oporavka: bilo kakva
// greška (uključivo panic iz podloge) ruši samo taj sheet, ne dokument.
func parseSheet(wb *excelize.File, sheetName, filename string, datum *time.Time) (result SheetResult, out []model.Row) {
	start := time.Now()
	result = SheetResult{SheetName: sheetName}

	defer func() {
		if r := recover(); r != nil {
			result.Status = "error"
			result.Rows = 0
			result.Errors = append(result.Errors, fmt.Sprintf("parsiranje sheeta palo: %v", r))
			out = nil
		}
		result.Duration = time.Since(start)
	}()

	rows, err := wb.GetRows(sheetName)
	if err != nil {
		result.Status = "error"
		result.Errors = []string{fmt.Sprintf("čitanje sheeta nije uspjelo: %v", err)}
		return result, nil
	}

	if len(rows) < minSheetRows {
		result.Status = "skipped"
		result.Errors = []string{"premalo redaka za tablicu"}
		return result, nil
	}

	out = NormalizeSheet(rows[0], rows[1:], filename, sheetName, datum)
	if len(out) == 0 {
		result.Status = "skipped"
		result.Errors = []string{"stupac opisa nije prepoznat ili nema stavki"}
		return result, nil
	}

	result.Status = "imported"
	result.Rows = len(out)
	return result, out
}
