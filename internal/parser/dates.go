package parser

import (
	"regexp"
	"strconv"
	"time"
)

// Obitelji uzoraka datuma u nazivu datoteke, redoslijed je prioritet
// i ne smije se mijenjati.
var (
	isoDateRe     = regexp.MustCompile(`(20\d{2})[-_.](\d{1,2})[-_.](\d{1,2})`)
	euroDateRe    = regexp.MustCompile(`(\d{1,2})[.](\d{1,2})[.](20\d{2})`)
	compactDateRe = regexp.MustCompile(`(20\d{2})(\d{2})(\d{2})`)
)

// GuessDateFromFilename pokušava izvući datum dokumenta iz naziva datoteke.
// Hvata npr. 2025-01-19, 19.01.2025, 20250119. Prva obitelj uzoraka koja
// se podudari i daje valjan kalendarski datum pobjeđuje; inače (nil, false).
func GuessDateFromFilename(name string) (time.Time, bool) {
	if m := isoDateRe.FindStringSubmatch(name); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	if m := euroDateRe.FindStringSubmatch(name); m != nil {
		return buildDate(m[3], m[2], m[1])
	}
	if m := compactDateRe.FindStringSubmatch(name); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	return time.Time{}, false
}

// buildDate sastavlja datum i odbija nevaljane kombinacije (npr. 31.02.);
// time.Date normalizira preljev pa se komponente provjeravaju unatrag.
func buildDate(ys, ms, ds string) (time.Time, bool) {
	year, _ := strconv.Atoi(ys)
	month, _ := strconv.Atoi(ms)
	day, _ := strconv.Atoi(ds)

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
