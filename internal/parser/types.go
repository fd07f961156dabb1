package parser

import "time"

// Role je semantička uloga stupca u troškovniku.
type Role string

const (
	RoleOpis      Role = "opis"
	RoleJM        Role = "jm"
	RoleKolicina  Role = "kolicina"
	RoleJedCijena Role = "jed_cijena"
	RoleIznos     Role = "iznos"
)

// Liste kandidata naslova po ulozi; redoslijed je prioritet.
var (
	OpisLabels      = []string{"Opis", "Naziv", "Stavka", "Opis stavke"}
	JMLabels        = []string{"JM", "J.M.", "Jed mj", "Jed. mjere", "Mjerna jedinica"}
	KolicinaLabels  = []string{"Količina", "Kol", "Qty"}
	JedCijenaLabels = []string{"Jedinična cijena", "Jed. cijena", "Cijena", "Unit price"}
	IznosLabels     = []string{"Iznos", "Ukupno", "Vrijednost", "Total"}
)

// headerRepeats su vrijednosti opisa koje označavaju ponovljeni redak
// zaglavlja unutar podataka; takvi se retci odbacuju.
var headerRepeats = map[string]struct{}{
	"opis":   {},
	"stavka": {},
	"naziv":  {},
}

// SheetResult je ishod obrade jednog sheeta.
type SheetResult struct {
	SheetName string        `json:"sheetName"`
	Status    string        `json:"status"` // imported/skipped/error
	Rows      int           `json:"rows"`
	Errors    []string      `json:"errors,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// FileReport je izvještaj obrade jedne datoteke.
type FileReport struct {
	Filename       string        `json:"filename"`
	TotalSheets    int           `json:"totalSheets"`
	ImportedSheets int           `json:"importedSheets"`
	SkippedSheets  int           `json:"skippedSheets"`
	Rows           int           `json:"rows"`
	Datum          *time.Time    `json:"datum"`
	Duration       time.Duration `json:"duration"`
	Sheets         []SheetResult `json:"sheets"`
}
