package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Sve osim slova (uključivo dijakritike), znamenki, podvlake i
	// razmaka se briše kod normalizacije opisa za pretragu.
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// NormalizeOpis priprema opis (ili upit) za pretragu: mala slova,
// sažeti razmaci, maknuta interpunkcija. Čista funkcija nad stringom.
func NormalizeOpis(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = punctuationRe.ReplaceAllString(s, "")
	return s
}

// NormalizeSheet pretvara jedan sheet (zaglavlje + retci ćelija) u
// normalizirane stavke. Sheet bez prepoznatog stupca opisa daje nula
// redaka. Datum je zajednički za cijeli dokument i samo se prenosi.
func NormalizeSheet(headers []string, rows [][]string, sourceFile, sheetName string, datum *time.Time) []model.Row {
	cols := columnMap(headers)

	opisIdx, ok := cols[RoleOpis]
	if !ok {
		return nil
	}

	out := make([]model.Row, 0, len(rows))
	for _, row := range rows {
		opis := strings.TrimSpace(cellAt(row, opisIdx))
		if opis == "" {
			continue
		}
		if _, repeat := headerRepeats[strings.ToLower(opis)]; repeat {
			// ponovljeni redak zaglavlja usred podataka
			continue
		}

		r := model.Row{
			Opis:       opis,
			SourceFile: sourceFile,
			Sheet:      sheetName,
			Datum:      datum,
		}

		if idx, ok := cols[RoleJM]; ok {
			r.JM = strings.TrimSpace(cellAt(row, idx))
		}
		if idx, ok := cols[RoleKolicina]; ok {
			r.Kolicina = parseNumber(cellAt(row, idx))
		}
		if idx, ok := cols[RoleJedCijena]; ok {
			r.JedCijena = parseNumber(cellAt(row, idx))
		}
		if idx, ok := cols[RoleIznos]; ok {
			r.Iznos = parseNumber(cellAt(row, idx))
		}

		out = append(out, r)
	}

	return out
}

// cellAt vraća ćeliju ili prazan string; excelize zna skratiti retke
// na zadnju nepraznu ćeliju.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseNumber pretvara ćeliju u broj; nil za neparsabilno ili prazno.
// Nikad nula umjesto "nedostaje".
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "") // ukloni tisućice
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
