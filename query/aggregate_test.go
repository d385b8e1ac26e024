package query

import (
	"errors"
	"testing"
)

func TestApplyAggregate(t *testing.T) {
	table := sampleTable()

	tests := []struct {
		name string
		req  AggregateRequest
		want float64
	}{
		{"avg", AggregateRequest{Column: "price", Function: AggAvg}, (999 + 1199 + 199 + 299) / 4.0},
		{"min", AggregateRequest{Column: "price", Function: AggMin}, 199},
		{"max", AggregateRequest{Column: "price", Function: AggMax}, 1199},
		{"avg decimal", AggregateRequest{Column: "rating", Function: AggAvg}, (4.9 + 4.8 + 4.6 + 4.4) / 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scalar, err := ApplyAggregate(table, &tt.req)
			if err != nil {
				t.Fatalf("ApplyAggregate() error = %v", err)
			}
			if scalar.Value != tt.want {
				t.Errorf("Value = %v, want %v", scalar.Value, tt.want)
			}
			if scalar.Column != tt.req.Column {
				t.Errorf("Column = %q, want %q", scalar.Column, tt.req.Column)
			}
			if scalar.Function != tt.req.Function {
				t.Errorf("Function = %q, want %q", scalar.Function, tt.req.Function)
			}
		})
	}
}

func TestApplyAggregate_Laws(t *testing.T) {
	table := sampleTable()

	for _, column := range []string{"price", "rating"} {
		min, err := ApplyAggregate(table, &AggregateRequest{Column: column, Function: AggMin})
		if err != nil {
			t.Fatalf("min(%s) error = %v", column, err)
		}
		avg, err := ApplyAggregate(table, &AggregateRequest{Column: column, Function: AggAvg})
		if err != nil {
			t.Fatalf("avg(%s) error = %v", column, err)
		}
		max, err := ApplyAggregate(table, &AggregateRequest{Column: column, Function: AggMax})
		if err != nil {
			t.Fatalf("max(%s) error = %v", column, err)
		}

		if min.Value > avg.Value || avg.Value > max.Value {
			t.Errorf("%s: want min <= avg <= max, got %v, %v, %v", column, min.Value, avg.Value, max.Value)
		}
	}
}

func TestApplyAggregate_EmptyTable(t *testing.T) {
	table := &Table{Columns: []string{"rating"}, Records: nil}

	_, err := ApplyAggregate(table, &AggregateRequest{Column: "rating", Function: AggAvg})
	if err == nil {
		t.Fatal("expected error for empty table, got nil")
	}
	if !errors.Is(err, ErrAggregate) {
		t.Errorf("error = %v, want ErrAggregate kind", err)
	}
	var aggErr *AggregateError
	if !errors.As(err, &aggErr) {
		t.Fatalf("error = %T, want *AggregateError", err)
	}
	if aggErr.Column != "rating" {
		t.Errorf("Column = %q, want rating", aggErr.Column)
	}
}

func TestApplyAggregate_UnknownColumn(t *testing.T) {
	table := sampleTable()

	_, err := ApplyAggregate(table, &AggregateRequest{Column: "stock", Function: AggMax})
	if err == nil {
		t.Fatal("expected error for unknown column, got nil")
	}
	if !errors.Is(err, ErrAggregate) {
		t.Errorf("error = %v, want ErrAggregate kind", err)
	}
}

func TestApplyAggregate_TextColumn(t *testing.T) {
	table := sampleTable()

	_, err := ApplyAggregate(table, &AggregateRequest{Column: "brand", Function: AggAvg})
	if err == nil {
		t.Fatal("expected error for text column, got nil")
	}
	if !errors.Is(err, ErrAggregate) {
		t.Errorf("error = %v, want ErrAggregate kind", err)
	}
}

func TestApplyAggregate_SkipsNonNumericValues(t *testing.T) {
	table := &Table{
		Columns: []string{"price"},
		Records: []Record{
			{"price": Number(10)},
			{"price": Text("n/a")},
			{"price": Number(30)},
		},
	}

	scalar, err := ApplyAggregate(table, &AggregateRequest{Column: "price", Function: AggAvg})
	if err != nil {
		t.Fatalf("ApplyAggregate() error = %v", err)
	}
	if scalar.Value != 20 {
		t.Errorf("Value = %v, want 20", scalar.Value)
	}
}
