package query

// ApplyAggregate reduces the table to a single scalar over the named
// column. Non-numeric values are skipped; the request fails when the
// column is absent or no numeric value remains, including the case of an
// empty (fully filtered) table.
func ApplyAggregate(t *Table, req *AggregateRequest) (*Scalar, error) {
	if !hasColumn(t, req.Column) {
		return nil, aggregateErrorf(req.Column, "column not found")
	}

	nums := make([]float64, 0, len(t.Records))
	for _, rec := range t.Records {
		v, ok := rec[req.Column]
		if !ok || !v.IsNumber() {
			continue
		}
		nums = append(nums, v.Num)
	}

	if len(nums) == 0 {
		return nil, aggregateErrorf(req.Column, "no numeric values to aggregate")
	}

	scalar := &Scalar{Column: req.Column, Function: req.Function}
	switch req.Function {
	case AggAvg:
		sum := 0.0
		for _, n := range nums {
			sum += n
		}
		scalar.Value = sum / float64(len(nums))
	case AggMin:
		min := nums[0]
		for _, n := range nums[1:] {
			if n < min {
				min = n
			}
		}
		scalar.Value = min
	case AggMax:
		max := nums[0]
		for _, n := range nums[1:] {
			if n > max {
				max = n
			}
		}
		scalar.Value = max
	default:
		return nil, aggregateErrorf(req.Column, "unknown aggregate function %q", req.Function)
	}

	return scalar, nil
}

// hasColumn reports whether the table declares the column in its header
func hasColumn(t *Table, column string) bool {
	for _, col := range t.Columns {
		if col == column {
			return true
		}
	}
	return false
}
