package parser

import "strings"

// ResolveColumn pronalazi indeks stupca za jednu ulogu.
//
// Faza 1: case-insensitive točno podudaranje, kandidati po prioritetu.
// Faza 2: case-insensitive substring podudaranje, opet po prioritetu.
// Unutar faze pobjeđuje prvi stupac u redoslijedu sheeta; taj tie-break
// je dio ugovora, ne slučajnost iteracije.
func ResolveColumn(headers []string, candidates []string) (int, bool) {
	trimmed := make([]string, len(headers))
	for i, h := range headers {
		trimmed[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, cand := range candidates {
		want := strings.ToLower(strings.TrimSpace(cand))
		for i, h := range trimmed {
			if h == want {
				return i, true
			}
		}
	}

	for _, cand := range candidates {
		want := strings.ToLower(strings.TrimSpace(cand))
		for i, h := range trimmed {
			if h != "" && strings.Contains(h, want) {
				return i, true
			}
		}
	}

	return 0, false
}

// columnMap razrješava svih pet uloga odjednom.
// Uloga koja se ne pronađe nije u mapi; opis je jedina obavezna.
func columnMap(headers []string) map[Role]int {
	m := make(map[Role]int, 5)

	for _, rc := range []struct {
		role   Role
		labels []string
	}{
		{RoleOpis, OpisLabels},
		{RoleJM, JMLabels},
		{RoleKolicina, KolicinaLabels},
		{RoleJedCijena, JedCijenaLabels},
		{RoleIznos, IznosLabels},
	} {
		if idx, ok := ResolveColumn(headers, rc.labels); ok {
			m[rc.role] = idx
		}
	}

	return m
}
