package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AdamyanRobert/csv-processor/output"
	"github.com/AdamyanRobert/csv-processor/query"
	"github.com/AdamyanRobert/csv-processor/reader"
)

var (
	whereFlag     = flag.String("where", "", "Filter condition, e.g. \"price>100\"")
	aggregateFlag = flag.String("aggregate", "", "Aggregation, e.g. \"price=avg\" (avg, min, max)")
	orderByFlag   = flag.String("order-by", "", "Sorting, e.g. \"price=desc\" or \"name=asc\"")
	formatFlag    = flag.String("f", "grid", "Output format: grid, csv, json")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.csv>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to filter, aggregate and sort tabular files.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the file argument.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s products.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --where \"price>100\" products.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --where \"brand=xiaomi\" --aggregate \"rating=avg\" products.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --order-by \"price=desc\" -f csv products.csv\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing input file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	// Parse operation specifications before touching the file so a bad
	// flag fails fast
	plan := &query.Plan{}

	if *whereFlag != "" {
		pred, err := query.ParseWhere(*whereFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --where: %v\n\n", err)
			fmt.Fprintf(os.Stderr, "Condition format: <column><op><value> with op one of >, <, =\n")
			fmt.Fprintf(os.Stderr, "Example: price>100\n")
			os.Exit(1)
		}
		plan.Where = pred
	}

	if *aggregateFlag != "" {
		req, err := query.ParseAggregate(*aggregateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --aggregate: %v\n\n", err)
			fmt.Fprintf(os.Stderr, "Aggregation format: <column>=<function> with function one of avg, min, max\n")
			fmt.Fprintf(os.Stderr, "Example: price=avg\n")
			os.Exit(1)
		}
		plan.Aggregate = req
	}

	if *orderByFlag != "" {
		key, err := query.ParseOrderBy(*orderByFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --order-by: %v\n\n", err)
			fmt.Fprintf(os.Stderr, "Sorting format: <column>=<direction> with direction asc or desc\n")
			fmt.Fprintf(os.Stderr, "Example: price=desc\n")
			os.Exit(1)
		}
		plan.OrderBy = key
	}

	table, err := reader.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := query.Run(table, plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if _, ok := err.(*query.AggregateError); ok && len(table.Columns) > 0 {
			fmt.Fprintf(os.Stderr, "\nAvailable columns: ")
			for i, col := range table.Columns {
				if i > 0 {
					fmt.Fprintf(os.Stderr, ", ")
				}
				fmt.Fprintf(os.Stderr, "%s", col)
			}
			fmt.Fprintf(os.Stderr, "\n")
		}
		os.Exit(1)
	}

	var formatter output.Formatter
	switch *formatFlag {
	case "grid":
		formatter = output.NewGridFormatter(os.Stdout)
	case "csv":
		formatter = output.NewCSVFormatter(os.Stdout)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(os.Stderr, "Supported formats: grid, csv, json\n")
		os.Exit(1)
	}

	if err := formatter.Format(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}
