package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/txhealth/vaxsupply/pkg/domain/entities"
	"github.com/txhealth/vaxsupply/pkg/domain/services"
	"github.com/txhealth/vaxsupply/pkg/infrastructure/source"
)

// MalformedDataError reports that the dataset bytes could not be parsed into
// a header and records.
type MalformedDataError struct {
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed dataset: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed dataset: %s", e.Reason)
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// ProviderLoader loads provider supply data from a delimited source and binds
// it to the canonical schema. The schema contract is validated here, at
// ingestion, so downstream stages never discover a missing column late.
type ProviderLoader struct {
	mode services.ValueMode
}

// NewProviderLoader creates a loader with the given value-coercion mode.
func NewProviderLoader(mode services.ValueMode) *ProviderLoader {
	return &ProviderLoader{mode: mode}
}

// Load fetches the dataset from src and parses it into a ProviderTable.
func (l *ProviderLoader) Load(ctx context.Context, src source.Source) (*entities.ProviderTable, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider data from %s: %w", src.Location(), err)
	}
	return l.Parse(data)
}

// Parse reads the raw dataset bytes into a ProviderTable. The header row is
// normalized to canonical column names and every record is bound to the typed
// schema. A header-only dataset is valid and yields an empty table.
func (l *ProviderLoader) Parse(data []byte) (*entities.ProviderTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &MalformedDataError{Reason: "failed to read CSV", Err: err}
	}

	if len(records) == 0 {
		return nil, &MalformedDataError{Reason: "dataset has no header row"}
	}

	columns := services.NormalizeColumnNames(records[0])
	if err := services.ValidateColumns(columns); err != nil {
		return nil, err
	}

	table := entities.NewProviderTable(columns)
	for i, record := range records[1:] {
		if len(record) != len(columns) {
			return nil, &MalformedDataError{
				Reason: fmt.Sprintf("row %d: expected %d columns, got %d", i+2, len(columns), len(record)),
			}
		}

		rec, err := l.bindRecord(columns, record, i+1)
		if err != nil {
			return nil, err
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// bindRecord maps one raw row onto the typed schema. row is 1-based over the
// data rows, matching how the aggregate reports value errors.
func (l *ProviderLoader) bindRecord(columns, record []string, row int) (entities.ProviderRecord, error) {
	rec := entities.ProviderRecord{Extra: make(map[string]string)}

	for i, col := range columns {
		raw := record[i]
		switch col {
		case services.ColPfizerAvailable:
			value, err := services.ParseSupplyValue(raw, col, row, l.mode)
			if err != nil {
				return entities.ProviderRecord{}, err
			}
			rec.PfizerAvailable = value
		case services.ColModernaAvailable:
			value, err := services.ParseSupplyValue(raw, col, row, l.mode)
			if err != nil {
				return entities.ProviderRecord{}, err
			}
			rec.ModernaAvailable = value
		case services.ColJJAvailable:
			value, err := services.ParseSupplyValue(raw, col, row, l.mode)
			if err != nil {
				return entities.ProviderRecord{}, err
			}
			rec.JJAvailable = value
		case services.ColTotalShipped:
			// Not a summed column, so an unreadable value drops the row from
			// the trend illustration instead of failing the run.
			value, err := services.ParseSupplyValue(raw, col, row, services.StrictValues)
			if err == nil {
				rec.TotalShipped = value
				rec.HasTotalShipped = true
			}
		case services.ColProviderType:
			rec.ProviderType = raw
		default:
			rec.Extra[col] = raw
		}
	}

	return rec, nil
}
