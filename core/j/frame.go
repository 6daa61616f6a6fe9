package j

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// DataFrame is an ordered set of uniquely named series of equal length.
type DataFrame struct {
	cols []*Series
}

// NewDataFrame validates cols and returns a frame over them.
func NewDataFrame(cols ...*Series) (*DataFrame, error) {
	seen := make(map[string]struct{}, len(cols))
	for i, c := range cols {
		if _, dup := seen[c.Name()]; dup {
			return nil, fmt.Errorf("duplicate column name '%s'", c.Name())
		}
		seen[c.Name()] = struct{}{}
		if c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("column '%s' has length %d, expected %d (column %d)",
				c.Name(), c.Len(), cols[0].Len(), i)
		}
	}
	return &DataFrame{cols: append([]*Series(nil), cols...)}, nil
}

// Columns returns the columns in order.
func (df *DataFrame) Columns() []*Series {
	return append([]*Series(nil), df.cols...)
}

// Column returns the column named name.
func (df *DataFrame) Column(name string) (*Series, bool) {
	for _, c := range df.cols {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Names returns the column names in order.
func (df *DataFrame) Names() []string {
	names := make([]string, len(df.cols))
	for i, c := range df.cols {
		names[i] = c.Name()
	}
	return names
}

// Width returns the number of columns.
func (df *DataFrame) Width() int { return len(df.cols) }

// Height returns the number of rows.
func (df *DataFrame) Height() int {
	if len(df.cols) == 0 {
		return 0
	}
	return df.cols[0].Len()
}

// Record returns the frame as an Arrow record batch sharing column storage.
func (df *DataFrame) Record() arrow.Record {
	fields := make([]arrow.Field, len(df.cols))
	arrs := make([]arrow.Array, len(df.cols))
	for i, c := range df.cols {
		fields[i] = arrow.Field{Name: c.Name(), Type: c.Arrow().DataType(), Nullable: true}
		arrs[i] = c.Arrow()
	}
	return array.NewRecord(arrow.NewSchema(fields, nil), arrs, int64(df.Height()))
}

// ToMatrix converts a numeric or boolean frame to a matrix whose rows are the
// frame's columns.
func (df *DataFrame) ToMatrix() (*Matrix, error) {
	cols := make([][]float64, len(df.cols))
	for i, c := range df.cols {
		fs, err := c.Float64s()
		if err != nil {
			return nil, err
		}
		cols[i] = fs
	}
	return NewMatrix(cols)
}

// Equal reports whether df and o hold equal columns in the same order.
func (df *DataFrame) Equal(o *DataFrame) bool {
	if df == nil || o == nil {
		return df == o
	}
	if len(df.cols) != len(o.cols) {
		return false
	}
	for i := range df.cols {
		if !df.cols[i].Equal(o.cols[i]) {
			return false
		}
	}
	return true
}
