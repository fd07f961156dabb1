package exporter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
)

func ptr(v float64) *float64 { return &v }

func sampleRows() []model.Row {
	datum := time.Date(2025, time.January, 19, 0, 0, 0, 0, time.UTC)
	return []model.Row{
		{
			Opis:       "Beton C25/30",
			JM:         "m3",
			Kolicina:   ptr(2.5),
			JedCijena:  ptr(120),
			Iznos:      ptr(300),
			SourceFile: "trosak_2025-01-19.xlsx",
			Sheet:      "List1",
			Datum:      &datum,
			OpisNorm:   "beton c2530",
		},
		{
			Opis:       "Oplata",
			JM:         "m2",
			SourceFile: "trosak.xlsx",
			Sheet:      "List1",
			OpisNorm:   "oplata",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("missing UTF-8 BOM")
	}

	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("want header + 2 rows, got %d records", len(records))
	}

	if got := strings.Join(records[0], ","); got != strings.Join(masterHeader, ",") {
		t.Fatalf("header: %q", got)
	}

	first := records[1]
	if first[0] != "Beton C25/30" || first[2] != "2.5" || first[3] != "120" || first[7] != "2025-01-19" {
		t.Fatalf("first row: %v", first)
	}

	// odsutne vrijednosti su prazna polja, ne nule
	second := records[2]
	if second[2] != "" || second[3] != "" || second[4] != "" || second[7] != "" {
		t.Fatalf("absent fields must be empty: %v", second)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("want header only, got %d records", len(records))
	}
}
