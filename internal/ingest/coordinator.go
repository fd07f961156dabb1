package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/archive"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/model"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/parser"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/store"
)

// ErrEmptyMaster znači da je arhiva pročitana, ali nijedna datoteka nije
// dala niti jednu prepoznatljivu stavku. Pozivatelj to razlikuje od
// archive.ErrNotArchive ("arhiva se ne da pročitati").
var ErrEmptyMaster = errors.New("u arhivi nije prepoznata nijedna tablica troškovnika")

// Coordinator vodi uvoz jedne arhive: ekstrakcija, normalizacija po
// datoteci, spajanje u master i završni prolaz za opis_norm.
type Coordinator struct {
	store *store.MemoryStore
}

// NewCoordinator stvara koordinatora uvoza.
func NewCoordinator(s *store.MemoryStore) *Coordinator {
	return &Coordinator{store: s}
}

// ArchiveReport je zbirni izvještaj uvoza jedne arhive.
type ArchiveReport struct {
	TotalFiles    int                 `json:"totalFiles"`
	ImportedFiles int                 `json:"importedFiles"`
	TotalRows     int                 `json:"totalRows"`
	Duration      time.Duration       `json:"duration"`
	Files         []parser.FileReport `json:"files"`
}

// ProgressEvent je događaj napretka uvoza.
type ProgressEvent struct {
	Type      string      `json:"type"`    // start/file_start/file_done/done/error
	Message   string      `json:"message"` // poruka događaja
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// BuildMaster sinkrono izgradi master iz bajtova arhive.
//
// Obrada je strogo sekvencijalna i deterministička: datoteke u
// redoslijedu arhive, sheetovi u redoslijedu workbooka. Pojedinačni
// kvarovi (loš sheet, loš datum) degradiraju u preskok/odsutno; jedine
// greške su nevaljana arhiva i potpuno prazan rezultat.
func (c *Coordinator) BuildMaster(data []byte) ([]model.Row, *ArchiveReport, error) {
	start := time.Now()

	docs, err := archive.Extract(data)
	if err != nil {
		return nil, nil, err
	}

	report := &ArchiveReport{
		TotalFiles: len(docs),
		Files:      make([]parser.FileReport, 0, len(docs)),
	}

	var master []model.Row
	for _, doc := range docs {
		rows, fileReport := parser.ParseWorkbook(doc.Data, doc.Filename)
		report.Files = append(report.Files, *fileReport)
		if len(rows) == 0 {
			continue
		}
		report.ImportedFiles++
		master = append(master, rows...)
	}

	if len(master) == 0 {
		return nil, nil, ErrEmptyMaster
	}

	// završni prolaz: opis_norm nad cijelim masterom
	for i := range master {
		master[i].OpisNorm = parser.NormalizeOpis(master[i].Opis)
	}

	report.TotalRows = len(master)
	report.Duration = time.Since(start)
	return master, report, nil
}

// Import asinkrono uveze arhivu u store i vraća kanal napretka.
// Kanal se zatvara kad je uvoz gotov; zadnji događaj je done ili error.
func (c *Coordinator) Import(data []byte) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(data, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) doImport(data []byte, progressChan chan ProgressEvent) {
	start := time.Now()

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "start",
		Message:   "početak uvoza arhive",
		Timestamp: time.Now(),
	})

	docs, err := archive.Extract(data)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("čitanje arhive nije uspjelo: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("pronađeno %d datoteka troškovnika", len(docs)),
		Data: map[string]interface{}{
			"total_files": len(docs),
		},
		Timestamp: time.Now(),
	})

	report := &ArchiveReport{
		TotalFiles: len(docs),
		Files:      make([]parser.FileReport, 0, len(docs)),
	}

	var master []model.Row
	for _, doc := range docs {
		c.sendProgress(progressChan, ProgressEvent{
			Type:    "file_start",
			Message: fmt.Sprintf("obrada datoteke: %s", doc.Filename),
			Data: map[string]string{
				"filename": doc.Filename,
			},
			Timestamp: time.Now(),
		})

		rows, fileReport := parser.ParseWorkbook(doc.Data, doc.Filename)
		report.Files = append(report.Files, *fileReport)
		if len(rows) > 0 {
			report.ImportedFiles++
			master = append(master, rows...)
		}

		c.sendProgress(progressChan, ProgressEvent{
			Type:      "file_done",
			Message:   fmt.Sprintf("datoteka %q: %d stavki iz %d sheetova", doc.Filename, fileReport.Rows, fileReport.ImportedSheets),
			Data:      fileReport,
			Timestamp: time.Now(),
		})
	}

	if len(master) == 0 {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   ErrEmptyMaster.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	for i := range master {
		master[i].OpisNorm = parser.NormalizeOpis(master[i].Opis)
	}

	report.TotalRows = len(master)
	report.Duration = time.Since(start)

	c.store.SetRows(master)

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "done",
		Message:   fmt.Sprintf("uvoz gotov: %d stavki iz %d datoteka", report.TotalRows, report.ImportedFiles),
		Data:      report,
		Timestamp: time.Now(),
	})
}

// sendProgress šalje događaj bez blokiranja; pun kanal znači da
// pretplatnik kasni pa se događaj ispušta.
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
	}
}
