package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
)

// masterHeader su nazivi stupaca master baze, redoslijed je fiksan.
var masterHeader = []string{
	"opis", "jm", "kolicina", "jed_cijena", "iznos",
	"source_file", "sheet", "datum", "opis_norm",
}

// WriteCSV serijalizira master u CSV. Odsutne vrijednosti su prazna
// polja. UTF-8 BOM na početku da Excel ispravno pročita dijakritike.
func WriteCSV(w io.Writer, rows []model.Row) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("zapis BOM-a nije uspio: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(masterHeader); err != nil {
		return fmt.Errorf("zapis zaglavlja nije uspio: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Opis,
			r.JM,
			formatNumber(r.Kolicina),
			formatNumber(r.JedCijena),
			formatNumber(r.Iznos),
			r.SourceFile,
			r.Sheet,
			formatDatum(r),
			r.OpisNorm,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("zapis retka nije uspio: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatDatum(r model.Row) string {
	if r.Datum == nil {
		return ""
	}
	return r.Datum.Format("2006-01-02")
}
