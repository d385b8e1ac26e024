package query

// Run applies the plan's operations to the table in fixed order: filter,
// then aggregate, then order. Every stage is optional. Aggregation
// short-circuits the pipeline to a scalar result; ordering is never
// applied after it since no row-level output remains to sort.
func Run(t *Table, plan *Plan) (*Result, error) {
	if plan == nil {
		return &Result{Table: t}, nil
	}

	if plan.Where != nil {
		t = ApplyFilter(t, plan.Where)
	}

	if plan.Aggregate != nil {
		scalar, err := ApplyAggregate(t, plan.Aggregate)
		if err != nil {
			return nil, err
		}
		return &Result{Scalar: scalar}, nil
	}

	if plan.OrderBy != nil {
		t = ApplyOrderBy(t, plan.OrderBy)
	}

	return &Result{Table: t}, nil
}
