package query

// Matches reports whether a record satisfies the predicate.
// A record missing the filter column never matches.
func (p *Predicate) Matches(rec Record) bool {
	v, ok := rec[p.Column]
	if !ok {
		return false
	}

	switch p.Operator {
	case OpEqual:
		return v.Equal(p.Literal)
	case OpGreater:
		return v.Compare(p.Literal) > 0
	case OpLess:
		return v.Compare(p.Literal) < 0
	default:
		return false
	}
}

// ApplyFilter returns a new table retaining exactly the records that
// satisfy the predicate. Row order is preserved. A nil predicate returns
// the table unchanged.
func ApplyFilter(t *Table, p *Predicate) *Table {
	if p == nil {
		return t
	}

	filtered := make([]Record, 0, len(t.Records))
	for _, rec := range t.Records {
		if p.Matches(rec) {
			filtered = append(filtered, rec)
		}
	}

	return &Table{Columns: t.Columns, Records: filtered}
}
