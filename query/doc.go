// Package query provides parsing and execution of table operations for CSV data.
//
// It implements the three operations of the processor: row filtering by a
// single comparison predicate, column aggregation to one scalar (avg, min,
// max), and stable row ordering by a column. Operation specifications are
// parsed from compact strings ("price>100", "price=avg", "rating=desc")
// into a Plan, which a single executor applies to an in-memory Table in
// fixed order: filter, then aggregate, then order.
//
// Example usage:
//
//	pred, err := query.ParseWhere("price>100")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := query.Run(table, &query.Plan{Where: pred})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Values are dynamically typed: each cell is either a Number or Text,
// decided per value when the table is loaded. Comparisons are numeric when
// both sides are numbers and lexicographic otherwise.
package query
