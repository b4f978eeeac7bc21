package xlsximport

import "strings"

// Row is one data row of the sheet: cell values keyed by canonical
// header, plus the header order so lookups stay deterministic.
type Row struct {
	Line    int
	Headers []string
	Data    map[string]string
}

// Pick resolves a logical field from the row given its header aliases.
//
// Two passes: an exact match over normalized aliases, then a fuzzy
// fallback comparing vowel-and-underscore-stripped keys by mutual
// substring containment. The fallback tolerates misspelled or
// transliterated headers ("nmero_parte", "part_num") without a
// configured mapping per file. Returns ok=false when nothing matches.
func (r Row) Pick(aliases []string) (string, bool) {
	for _, alias := range aliases {
		key := NormalizeHeader(alias)
		if v, ok := r.Data[key]; ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}

	for _, alias := range aliases {
		stripped := stripForFuzzy(NormalizeHeader(alias))
		if stripped == "" {
			continue
		}
		for _, key := range r.Headers {
			sk := stripForFuzzy(key)
			if sk == "" {
				continue
			}
			if !strings.Contains(sk, stripped) && !strings.Contains(stripped, sk) {
				continue
			}
			if v := r.Data[key]; strings.TrimSpace(v) != "" {
				return v, true
			}
		}
	}

	return "", false
}

// stripForFuzzy removes vowels and underscores, leaving a consonant
// skeleton that survives most typos and language variants.
func stripForFuzzy(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', '_':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
