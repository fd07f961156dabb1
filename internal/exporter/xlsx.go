package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
)

const masterSheetName = "Master"

// BuildXLSX gradi workbook s master bazom na jednom sheetu.
// Odsutne numeričke vrijednosti ostaju prazne ćelije, ne nule.
func BuildXLSX(rows []model.Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", masterSheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("preimenovanje sheeta nije uspjelo: %w", err)
	}

	header := make([]interface{}, len(masterHeader))
	for i, h := range masterHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(masterSheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("zapis zaglavlja nije uspio: %w", err)
	}

	for i, r := range rows {
		cells := []interface{}{
			r.Opis,
			r.JM,
			numberCell(r.Kolicina),
			numberCell(r.JedCijena),
			numberCell(r.Iznos),
			r.SourceFile,
			r.Sheet,
			formatDatum(r),
			r.OpisNorm,
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("adresa ćelije nije valjana: %w", err)
		}
		if err := f.SetSheetRow(masterSheetName, axis, &cells); err != nil {
			f.Close()
			return nil, fmt.Errorf("zapis retka %d nije uspio: %w", i+2, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func numberCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
