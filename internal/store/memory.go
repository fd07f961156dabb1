package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/parser"
)

// MemoryStore drži master bazu jednog uvoza u memoriji.
//
// Master je po dizajnu prolazan: novi uvoz u cijelosti zamjenjuje stari,
// ništa se ne perzistira između pokretanja.
type MemoryStore struct {
	mu         sync.RWMutex
	rows       []model.Row
	importedAt time.Time
}

// NewMemoryStore stvara prazan store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetRows zamjenjuje master novim uvozom.
func (s *MemoryStore) SetRows(rows []model.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
	s.importedAt = time.Now()
}

// Rows vraća kopiju svih stavki u redoslijedu uvoza.
func (s *MemoryStore) Rows() []model.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Count vraća broj stavki.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// LastImportTime vraća vrijeme zadnjeg uvoza (nula ako uvoza nije bilo).
func (s *MemoryStore) LastImportTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.importedAt
}

// Clear prazni store.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	s.importedAt = time.Time{}
}

// Stats računa KPI brojače: stavke, različite datoteke, različiti
// sheetovi, stavke s prepoznatim datumom.
func (s *MemoryStore) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make(map[string]struct{})
	sheets := make(map[string]struct{})
	dated := 0

	for _, r := range s.rows {
		files[r.SourceFile] = struct{}{}
		sheets[r.SourceFile+"\x00"+r.Sheet] = struct{}{}
		if r.Datum != nil {
			dated++
		}
	}

	return model.Stats{
		Rows:      len(s.rows),
		Files:     len(files),
		Sheets:    len(sheets),
		DatedRows: dated,
	}
}

// Search filtrira master slobodnim tekstom nad opis_norm (upit prolazi
// istu normalizaciju kao opisi) i neovisnim substring filtrom nad JM.
// Rezultat je sortiran uzlazno po (datum, jed. cijena); stavke bez
// datuma odnosno cijene idu na kraj.
func (s *MemoryStore) Search(query, jm string) []model.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := parser.NormalizeOpis(strings.TrimSpace(query))
	jmNeedle := strings.ToLower(strings.TrimSpace(jm))

	out := make([]model.Row, 0, len(s.rows))
	for _, r := range s.rows {
		if q != "" && !strings.Contains(r.OpisNorm, q) {
			continue
		}
		if jmNeedle != "" && !strings.Contains(strings.ToLower(r.JM), jmNeedle) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := compareDatum(out[i].Datum, out[j].Datum); c != 0 {
			return c < 0
		}
		return comparePtr(out[i].JedCijena, out[j].JedCijena) < 0
	})

	return out
}

// PriceHistory vraća točke za graf povijesti jedinične cijene: stavke
// koje odgovaraju upitu i imaju i datum i jediničnu cijenu.
func (s *MemoryStore) PriceHistory(query string) []model.PricePoint {
	rows := s.Search(query, "")

	points := make([]model.PricePoint, 0, len(rows))
	for _, r := range rows {
		if r.Datum == nil || r.JedCijena == nil {
			continue
		}
		points = append(points, model.PricePoint{
			Datum:      *r.Datum,
			JedCijena:  *r.JedCijena,
			Opis:       r.Opis,
			JM:         r.JM,
			Kolicina:   r.Kolicina,
			Iznos:      r.Iznos,
			SourceFile: r.SourceFile,
			Sheet:      r.Sheet,
		})
	}

	return points
}

func compareDatum(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1 // bez datuma na kraj
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}

func comparePtr(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
