package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
)

// ErrNotArchive znači da ulaz uopće nije valjana ZIP arhiva.
// Jedina fatalna greška ovog sloja.
var ErrNotArchive = errors.New("ulaz nije valjana zip arhiva")

// spreadsheetExt i lockPrefix filtriraju unose arhive: zanima nas samo
// .xlsx, a Excelovi privremeni lock fileovi (~$...) se izostavljaju.
const (
	spreadsheetExt = ".xlsx"
	lockPrefix     = "~$"
)

// Extract nabraja proračunske datoteke iz ZIP arhive, u izvornom
// redoslijedu unosa. Valjanost sadržaja se ovdje ne provjerava; unos
// koji nije pravi workbook downstream jednostavno da nula redaka.
func Extract(data []byte) ([]model.RawDocument, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}

	var docs []model.RawDocument
	for _, entry := range zr.File {
		if !isSpreadsheetEntry(entry.Name) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("otvaranje unosa %q nije uspjelo: %w", entry.Name, err)
		}
		payload, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("čitanje unosa %q nije uspjelo: %w", entry.Name, err)
		}

		docs = append(docs, model.RawDocument{
			Filename: entry.Name,
			Data:     payload,
		})
	}

	return docs, nil
}

func isSpreadsheetEntry(name string) bool {
	if !strings.HasSuffix(strings.ToLower(name), spreadsheetExt) {
		return false
	}
	if strings.HasPrefix(name, lockPrefix) {
		return false
	}
	// lock file unutar podmape ima prefiks na zadnjem segmentu
	if idx := strings.LastIndex(name, "/"); idx >= 0 && strings.HasPrefix(name[idx+1:], lockPrefix) {
		return false
	}
	return true
}
