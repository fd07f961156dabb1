package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

// buildZip složi ZIP u memoriji; unosi u zadanom redoslijedu.
func buildZip(t *testing.T, entries []struct {
	Name string
	Data []byte
}) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := w.Write(e.Data); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return buf.Bytes()
}

func TestExtract_FiltersAndOrder(t *testing.T) {
	t.Parallel()

	data := buildZip(t, []struct {
		Name string
		Data []byte
	}{
		{"~$trosak.xlsx", []byte("lock")},
		{"trosak_b.xlsx", []byte("b")},
		{"biljeske.txt", []byte("txt")},
		{"trosak_a.XLSX", []byte("a")},
		{"mapa/~$trosak_c.xlsx", []byte("lock2")},
		{"mapa/trosak_c.xlsx", []byte("c")},
	})

	docs, err := Extract(data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("want 3 docs, got %d", len(docs))
	}

	// izvorni redoslijed arhive
	wantNames := []string{"trosak_b.xlsx", "trosak_a.XLSX", "mapa/trosak_c.xlsx"}
	wantData := []string{"b", "a", "c"}
	for i, doc := range docs {
		if doc.Filename != wantNames[i] {
			t.Fatalf("doc[%d].Filename=%q, want %q", i, doc.Filename, wantNames[i])
		}
		if string(doc.Data) != wantData[i] {
			t.Fatalf("doc[%d].Data=%q, want %q", i, doc.Data, wantData[i])
		}
	}
}

func TestExtract_NotArchive(t *testing.T) {
	t.Parallel()

	_, err := Extract([]byte("ovo nije zip"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrNotArchive) {
		t.Fatalf("err=%v, want ErrNotArchive", err)
	}
}

func TestExtract_EmptyArchive(t *testing.T) {
	t.Parallel()

	data := buildZip(t, nil)
	docs, err := Extract(data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("want 0 docs, got %d", len(docs))
	}
}

func TestExtract_InvalidSpreadsheetEntryPassesThrough(t *testing.T) {
	t.Parallel()

	// unos s pravom ekstenzijom, a krivim sadržajem: ovdje prolazi,
	// valjanost rješava parser nizvodno
	data := buildZip(t, []struct {
		Name string
		Data []byte
	}{
		{"nije_pravi.xlsx", []byte("garbage")},
	})

	docs, err := Extract(data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("want 1 doc, got %d", len(docs))
	}
}
