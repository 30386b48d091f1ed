package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical column names of the provider dataset schema.
const (
	ColPfizerAvailable  = "pfizer_available"
	ColModernaAvailable = "moderna_available"
	ColJJAvailable      = "jj_available"
	ColTotalShipped     = "total_shipped"
	ColProviderType     = "provider_type"
)

// RequiredColumns are the canonical columns every dataset must carry after
// normalization. total_shipped and provider_type are used when present but
// their absence is not a schema failure.
var RequiredColumns = []string{
	ColPfizerAvailable,
	ColModernaAvailable,
	ColJJAvailable,
}

// ValueMode controls how missing or non-numeric cells in a summed column are handled.
type ValueMode int

const (
	StrictValues ValueMode = iota
	LenientValues
)

// String method for ValueMode enum
func (m ValueMode) String() string {
	switch m {
	case StrictValues:
		return "strict"
	case LenientValues:
		return "lenient"
	default:
		return "unknown"
	}
}

// SchemaMismatchError reports that the dataset does not satisfy the provider
// schema contract: a required column is missing, or a required value could not
// be interpreted in strict mode.
type SchemaMismatchError struct {
	MissingColumns []string
	Column         string
	Row            int
	Value          string
}

func (e *SchemaMismatchError) Error() string {
	if len(e.MissingColumns) > 0 {
		return fmt.Sprintf(
			"schema mismatch: missing required column(s) after normalization: %s",
			strings.Join(e.MissingColumns, ", "),
		)
	}
	return fmt.Sprintf(
		"schema mismatch: column %s row %d: invalid numeric value %q",
		e.Column, e.Row, e.Value,
	)
}

// ValidateColumns checks that every required canonical column is present.
func ValidateColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &SchemaMismatchError{MissingColumns: missing}
	}
	return nil
}

// ParseSupplyValue interprets one cell of a summed column. Strict mode fails
// on empty or non-numeric input; lenient mode treats both as zero. Row is the
// 1-based data row used in error reporting.
func ParseSupplyValue(raw string, column string, row int, mode ValueMode) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if mode == LenientValues {
			return decimal.Zero, nil
		}
		return decimal.Zero, &SchemaMismatchError{Column: column, Row: row, Value: raw}
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		if mode == LenientValues {
			return decimal.Zero, nil
		}
		return decimal.Zero, &SchemaMismatchError{Column: column, Row: row, Value: raw}
	}
	return value, nil
}
