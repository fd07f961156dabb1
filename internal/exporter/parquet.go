package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
)

// masterRecord je parquet shema master baze. Imena i tipovi stupaca
// odgovaraju poljima stavke; odsutne vrijednosti su null (optional).
type masterRecord struct {
	Opis       string     `parquet:"opis"`
	JM         string     `parquet:"jm"`
	Kolicina   *float64   `parquet:"kolicina,optional"`
	JedCijena  *float64   `parquet:"jed_cijena,optional"`
	Iznos      *float64   `parquet:"iznos,optional"`
	SourceFile string     `parquet:"source_file"`
	Sheet      string     `parquet:"sheet"`
	Datum      *time.Time `parquet:"datum,optional"`
	OpisNorm   string     `parquet:"opis_norm"`
}

// WriteParquet serijalizira master u parquet (master.parquet za
// preuzimanje i trajno spremanje izvan aplikacije).
func WriteParquet(w io.Writer, rows []model.Row) error {
	records := make([]masterRecord, len(rows))
	for i, r := range rows {
		records[i] = masterRecord{
			Opis:       r.Opis,
			JM:         r.JM,
			Kolicina:   r.Kolicina,
			JedCijena:  r.JedCijena,
			Iznos:      r.Iznos,
			SourceFile: r.SourceFile,
			Sheet:      r.Sheet,
			Datum:      r.Datum,
			OpisNorm:   r.OpisNorm,
		}
	}

	pw := parquet.NewGenericWriter[masterRecord](w)
	if _, err := pw.Write(records); err != nil {
		return fmt.Errorf("zapis parquet redaka nije uspio: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("zatvaranje parquet writera nije uspjelo: %w", err)
	}
	return nil
}
