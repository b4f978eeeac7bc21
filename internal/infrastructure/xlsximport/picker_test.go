package xlsximport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRow(headers []string, values map[string]string) Row {
	return Row{Line: 2, Headers: headers, Data: values}
}

func TestPickExactMatch(t *testing.T) {
	row := newRow(
		[]string{"no_parte", "marca"},
		map[string]string{"no_parte": "abc-1", "marca": "Acme"},
	)

	v, ok := row.Pick(PartNumberAliases)
	assert.True(t, ok)
	assert.Equal(t, "abc-1", v)
}

func TestPickFirstAliasWins(t *testing.T) {
	row := newRow(
		[]string{"cantidad_solicitada", "cantidad_proyecto"},
		map[string]string{"cantidad_solicitada": "25", "cantidad_proyecto": "99"},
	)

	v, ok := row.Pick(ProjectQtyAliases)
	assert.True(t, ok)
	assert.Equal(t, "25", v)
}

func TestPickSkipsEmptyValues(t *testing.T) {
	row := newRow(
		[]string{"no_parte", "numero_de_parte"},
		map[string]string{"no_parte": "  ", "numero_de_parte": "abc-1"},
	)

	v, ok := row.Pick(PartNumberAliases)
	assert.True(t, ok)
	assert.Equal(t, "abc-1", v)
}

func TestPickFuzzyFallback(t *testing.T) {
	// "no_prte" is a missing-vowel typo; its consonant skeleton equals
	// no_parte's skeleton.
	row := newRow(
		[]string{"no_prte"},
		map[string]string{"no_prte": "abc-1"},
	)

	v, ok := row.Pick(PartNumberAliases)
	assert.True(t, ok)
	assert.Equal(t, "abc-1", v)
}

func TestPickFuzzySupersetDirection(t *testing.T) {
	// Sheet header longer than the alias: "part_number_full" strips to a
	// superset of part_number's skeleton.
	row := newRow(
		[]string{"part_number_full"},
		map[string]string{"part_number_full": "abc-1"},
	)

	v, ok := row.Pick(PartNumberAliases)
	assert.True(t, ok)
	assert.Equal(t, "abc-1", v)
}

func TestPickNoMatch(t *testing.T) {
	row := newRow(
		[]string{"wxyz"},
		map[string]string{"wxyz": "something"},
	)

	_, ok := row.Pick(PartNumberAliases)
	assert.False(t, ok)
}

func TestPickDeterministicAcrossFuzzyCandidates(t *testing.T) {
	// Header order decides ties in the fuzzy pass.
	row := Row{
		Line:    2,
		Headers: []string{"prt_nmbr", "part_nmbr"},
		Data:    map[string]string{"prt_nmbr": "first", "part_nmbr": "second"},
	}

	for i := 0; i < 20; i++ {
		v, ok := row.Pick(PartNumberAliases)
		assert.True(t, ok)
		assert.Equal(t, "first", v)
	}
}

func TestStripForFuzzy(t *testing.T) {
	assert.Equal(t, "nprt", stripForFuzzy("no_parte"))
	assert.Equal(t, "", stripForFuzzy("aeiou_"))
	assert.Equal(t, "prtnmbr", stripForFuzzy("part_number"))
}
