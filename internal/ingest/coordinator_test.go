package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/archive"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/store"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		rowCopy := row
		if err := f.SetSheetRow("Sheet1", axis, &rowCopy); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

func buildZip(t *testing.T, entries map[string][]byte, order []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := w.Write(entries[name]); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return buf.Bytes()
}

func TestBuildMaster_EndToEnd(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, [][]interface{}{
		{"Naziv", "J.M.", "Kol", "Cijena", "Ukupno"},
		{"Beton C25/30", "m3", 2, 100, 200},
		{"PVC prozor, 120x140", "kom", 4, 250, 1000},
	})

	archiveBytes := buildZip(t, map[string][]byte{
		"trosak_2025-01-19.xlsx": wb,
		"~$trosak.xlsx":          []byte("lock"),
		"nije_pravi.xlsx":        []byte("garbage"),
	}, []string{"trosak_2025-01-19.xlsx", "~$trosak.xlsx", "nije_pravi.xlsx"})

	c := NewCoordinator(store.NewMemoryStore())
	rows, report, err := c.BuildMaster(archiveBytes)
	if err != nil {
		t.Fatalf("BuildMaster failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if report.TotalFiles != 2 {
		// lock file je filtriran već u ekstrakciji
		t.Fatalf("TotalFiles=%d, want 2", report.TotalFiles)
	}
	if report.ImportedFiles != 1 || report.TotalRows != 2 {
		t.Fatalf("report: %+v", report)
	}

	wantDate := time.Date(2025, time.January, 19, 0, 0, 0, 0, time.UTC)
	if rows[0].Datum == nil || !rows[0].Datum.Equal(wantDate) {
		t.Fatalf("Datum=%v, want %v", rows[0].Datum, wantDate)
	}

	// završni prolaz: opis_norm izračunat nad cijelim masterom
	if rows[0].OpisNorm != "beton c2530" {
		t.Fatalf("OpisNorm=%q", rows[0].OpisNorm)
	}
	if rows[1].OpisNorm != "pvc prozor 120x140" {
		t.Fatalf("OpisNorm=%q", rows[1].OpisNorm)
	}
}

func TestBuildMaster_NotArchive(t *testing.T) {
	t.Parallel()

	c := NewCoordinator(store.NewMemoryStore())
	_, _, err := c.BuildMaster([]byte("nije zip"))
	if !errors.Is(err, archive.ErrNotArchive) {
		t.Fatalf("err=%v, want ErrNotArchive", err)
	}
}

func TestBuildMaster_EmptyMaster(t *testing.T) {
	t.Parallel()

	// arhiva se da pročitati, ali nijedna datoteka ne daje stavke
	archiveBytes := buildZip(t, map[string][]byte{
		"nije_pravi.xlsx": []byte("garbage"),
	}, []string{"nije_pravi.xlsx"})

	c := NewCoordinator(store.NewMemoryStore())
	_, _, err := c.BuildMaster(archiveBytes)
	if !errors.Is(err, ErrEmptyMaster) {
		t.Fatalf("err=%v, want ErrEmptyMaster", err)
	}
}

func TestImport_UpdatesStoreAndReportsProgress(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, [][]interface{}{
		{"Opis", "JM", "Količina", "Jed. cijena", "Iznos"},
		{"Estrih", "m2", 50, 12, 600},
		{"Gips ploče", "m2", 80, 9, 720},
	})
	archiveBytes := buildZip(t, map[string][]byte{
		"trosak_20250119.xlsx": wb,
	}, []string{"trosak_20250119.xlsx"})

	s := store.NewMemoryStore()
	c := NewCoordinator(s)

	var events []ProgressEvent
	for event := range c.Import(archiveBytes) {
		events = append(events, event)
	}

	if len(events) == 0 {
		t.Fatalf("no progress events")
	}
	if got := events[len(events)-1].Type; got != "done" {
		t.Fatalf("last event type=%q, want done", got)
	}
	if s.Count() != 2 {
		t.Fatalf("store count=%d, want 2", s.Count())
	}
}

func TestImport_ErrorEventOnBadArchive(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryStore()
	c := NewCoordinator(s)

	var last ProgressEvent
	for event := range c.Import([]byte("nije zip")) {
		last = event
	}

	if last.Type != "error" {
		t.Fatalf("last event type=%q, want error", last.Type)
	}
	if s.Count() != 0 {
		t.Fatalf("store count=%d, want 0", s.Count())
	}
}
