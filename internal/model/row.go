package model

import "time"

// Row je jedna normalizirana stavka troškovnika u master bazi.
//
// Kolicina, JedCijena i Iznos su nil kada se izvorna ćelija nije dala
// pročitati kao broj. Nula je valjana poslovna vrijednost i nikad ne
// zamjenjuje "nedostaje".
type Row struct {
	Opis      string     `json:"opis"`
	JM        string     `json:"jm"`
	Kolicina  *float64   `json:"kolicina"`
	JedCijena *float64   `json:"jed_cijena"`
	Iznos     *float64   `json:"iznos"`

	SourceFile string     `json:"source_file"`
	Sheet      string     `json:"sheet"`
	Datum      *time.Time `json:"datum"`

	// OpisNorm je izveden iz Opis (završni prolaz nad masterom) i služi
	// za pretragu. Uvijek je deterministički rekonstruktivan iz Opis.
	OpisNorm string `json:"opis_norm"`
}

// RawDocument je jedna proračunska datoteka izvučena iz arhive.
type RawDocument struct {
	Filename string
	Data     []byte
}

// Stats su KPI brojači nad master bazom.
type Stats struct {
	Rows      int `json:"rows"`
	Files     int `json:"files"`
	Sheets    int `json:"sheets"`
	DatedRows int `json:"datedRows"`
}

// PricePoint je jedna točka povijesti jedinične cijene.
type PricePoint struct {
	Datum      time.Time `json:"datum"`
	JedCijena  float64   `json:"jedCijena"`
	Opis       string    `json:"opis"`
	JM         string    `json:"jm"`
	Kolicina   *float64  `json:"kolicina"`
	Iznos      *float64  `json:"iznos"`
	SourceFile string    `json:"sourceFile"`
	Sheet      string    `json:"sheet"`
}
