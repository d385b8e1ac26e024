package query

import "sort"

// ApplyOrderBy returns a new table with records stably sorted by the key
// column. Comparison is numeric when every present value in the column is
// numeric, else lexicographic over the text forms. Records missing the
// column sort first ascending (last descending). Ties keep input order.
// A nil key returns the table unchanged.
func ApplyOrderBy(t *Table, key *OrderKey) *Table {
	if key == nil || len(t.Records) < 2 {
		return t
	}

	numeric := columnIsNumeric(t, key.Column)

	sorted := make([]Record, len(t.Records))
	copy(sorted, t.Records)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, oki := sorted[i][key.Column]
		vj, okj := sorted[j][key.Column]

		if !oki || !okj {
			if oki == okj {
				return false
			}
			// Missing sorts first, or last when descending
			if !oki {
				return !key.Desc
			}
			return key.Desc
		}

		cmp := compareForSort(vi, vj, numeric)
		if key.Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return &Table{Columns: t.Columns, Records: sorted}
}

// compareForSort orders two values under a column-wide comparison mode,
// which keeps the ordering total even if a stray value slips through.
func compareForSort(a, b Value, numeric bool) int {
	if numeric && a.IsNumber() && b.IsNumber() {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}

	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// columnIsNumeric reports whether every present value in the column is a
// number. An entirely missing column is not numeric.
func columnIsNumeric(t *Table, column string) bool {
	seen := false
	for _, rec := range t.Records {
		v, ok := rec[column]
		if !ok {
			continue
		}
		seen = true
		if !v.IsNumber() {
			return false
		}
	}
	return seen
}
