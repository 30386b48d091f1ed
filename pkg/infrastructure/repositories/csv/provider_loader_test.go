package csv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txhealth/vaxsupply/pkg/domain/services"
	"github.com/txhealth/vaxsupply/pkg/infrastructure/source"
)

func TestProviderLoader_Load_FromFile(t *testing.T) {
	loader := NewProviderLoader(services.StrictValues)
	src := source.NewFileSource("testdata/providers.csv")

	table, err := loader.Load(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"provider_type", "pfizer_available", "moderna_available",
		"jj_available", "total_shipped", "zip_code",
	}, table.Columns)
	require.Equal(t, 2, table.Len())

	first := table.Records[0]
	assert.Equal(t, "Pharmacy", first.ProviderType)
	assert.Equal(t, "100", first.PfizerAvailable.String())
	assert.Equal(t, "50", first.ModernaAvailable.String())
	assert.Equal(t, "25", first.JJAvailable.String())
	assert.True(t, first.HasTotalShipped)
	assert.Equal(t, "400", first.TotalShipped.String())
	assert.Equal(t, "78701", first.Extra["zip_code"])

	second := table.Records[1]
	assert.Equal(t, "0", second.ModernaAvailable.String())
	assert.Equal(t, "75", second.JJAvailable.String())
}

func TestProviderLoader_Load_SourceUnavailable(t *testing.T) {
	loader := NewProviderLoader(services.StrictValues)
	src := source.NewFileSource("testdata/does_not_exist.csv")

	_, err := loader.Load(context.Background(), src)

	var unavailable *source.UnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestProviderLoader_Parse_HeaderOnly(t *testing.T) {
	loader := NewProviderLoader(services.StrictValues)

	table, err := loader.Parse([]byte("Pfizer Available,Moderna Available,JJ Available\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{"pfizer_available", "moderna_available", "jj_available"}, table.Columns)
}

func TestProviderLoader_Parse_EmptyInput(t *testing.T) {
	loader := NewProviderLoader(services.StrictValues)

	_, err := loader.Parse([]byte(""))

	var malformed *MalformedDataError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Error(), "no header row")
}

func TestProviderLoader_Parse_RaggedRow(t *testing.T) {
	loader := NewProviderLoader(services.StrictValues)
	data := "pfizer_available,moderna_available,jj_available\n1,2\n"

	_, err := loader.Parse([]byte(data))

	var malformed *MalformedDataError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Error(), "row 2")
}

func TestProviderLoader_Parse_MissingRequiredColumn(t *testing.T) {
	loader := NewProviderLoader(services.StrictValues)
	data := "pfizer_available,moderna_available,total_shipped\n1,2,3\n"

	_, err := loader.Parse([]byte(data))

	var schemaErr *services.SchemaMismatchError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"jj_available"}, schemaErr.MissingColumns)
}

func TestProviderLoader_Parse_ValueModes(t *testing.T) {
	data := "pfizer_available,moderna_available,jj_available\n10,n/a,30\n"

	t.Run("strict fails on non-numeric", func(t *testing.T) {
		loader := NewProviderLoader(services.StrictValues)
		_, err := loader.Parse([]byte(data))

		var schemaErr *services.SchemaMismatchError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "moderna_available", schemaErr.Column)
		assert.Equal(t, 1, schemaErr.Row)
	})

	t.Run("lenient coerces to zero", func(t *testing.T) {
		loader := NewProviderLoader(services.LenientValues)
		table, err := loader.Parse([]byte(data))
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
		assert.Equal(t, "0", table.Records[0].ModernaAvailable.String())
		assert.Equal(t, "10", table.Records[0].PfizerAvailable.String())
	})
}

func TestProviderLoader_Parse_UnreadableTotalShipped(t *testing.T) {
	loader := NewProviderLoader(services.StrictValues)
	data := "pfizer_available,moderna_available,jj_available,total_shipped\n1,2,3,pending\n"

	table, err := loader.Parse([]byte(data))
	require.NoError(t, err)
	assert.False(t, table.Records[0].HasTotalShipped)
}
