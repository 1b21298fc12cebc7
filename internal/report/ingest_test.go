package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrpulse/pkg/contracts/domain"
)

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("otReport")
	require.NoError(t, err)
	assert.Equal(t, KindOvertime, kind)

	_, err = ParseKind("payrollReport")
	assert.Error(t, err)
}

func TestKindsCoverAllAssemblers(t *testing.T) {
	assert.Len(t, Kinds(), len(assemblers))
	for _, kind := range Kinds() {
		_, ok := assemblers[kind]
		assert.True(t, ok, "kind %s has no assembler", kind)
	}
}

func TestIngestRejectsDegenerateGrids(t *testing.T) {
	tests := []struct {
		name string
		grid domain.RawGrid
	}{
		{name: "nil grid", grid: nil},
		{name: "header only", grid: domain.RawGrid{{"a", "b"}}},
		{name: "empty header row", grid: domain.RawGrid{{}, {"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Ingest(tt.grid, KindConsumables)
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, KindConsumables, schemaErr.Kind)
		})
	}
}

func TestIngestSetsBundleKind(t *testing.T) {
	grid := domain.RawGrid{
		{"Date", "Material", "Description"},
		{45658.0, "MAT-1", "Gloves"},
	}
	bundle, err := Ingest(grid, KindConsumables)
	require.NoError(t, err)
	assert.Equal(t, "consumablesReport", bundle.Kind)
	require.NotNil(t, bundle.Consumables)
}

func TestIngestIsIdempotent(t *testing.T) {
	grid := domain.RawGrid{
		{"Date", "Material", "Description", "Qty", "Unit", "Price", "Total", "Dept"},
		{"10/01/2025", "MAT-1", "Gloves", 5.0, "pair", 20.0, 100.0, "Packing"},
		{"11/01/2025", "MAT-2", "Masks", 3.0, "box", 50.0, 150.0, "Milling"},
	}

	first, err := Ingest(grid, KindConsumables)
	require.NoError(t, err)
	second, err := Ingest(grid, KindConsumables)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIngestDropsRowsMissingRequiredField(t *testing.T) {
	grid := domain.RawGrid{
		{"Date", "Material", "Description"},
		{"10/01/2025", "MAT-1", "Gloves"},
		{"11/01/2025", nil, "row without a material"},
		{"12/01/2025", "", "blank material"},
	}

	bundle, err := Ingest(grid, KindConsumables)
	require.NoError(t, err)
	require.NotNil(t, bundle.Consumables)
	assert.Len(t, bundle.Consumables.TableData, 1)
	assert.Equal(t, "MAT-1", bundle.Consumables.TableData[0].Material)
}

func TestIngestUnknownKind(t *testing.T) {
	grid := domain.RawGrid{{"h"}, {"r"}}
	_, err := Ingest(grid, Kind("mysteryReport"))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}
