package interchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumnsPriorityOrder(t *testing.T) {
	// generic map prefers "Unit Price" over plain "Price"
	headers := []string{"Name", "Price", "Unit Price"}
	rm := ResolveColumns(headers, FieldMapFor(SourceGeneric))

	row := []string{"Widget", "10", "12"}
	assert.Equal(t, "12", rm.Value(FieldUnitPrice, row))
}

func TestResolveColumnsUnmapped(t *testing.T) {
	headers := []string{"Name", "Warehouse Zone", "Price"}
	rm := ResolveColumns(headers, FieldMapFor(SourceGeneric))

	require.Len(t, rm.Unmapped, 1)
	assert.Equal(t, "Warehouse Zone", rm.Unmapped[0])
	assert.True(t, rm.Has(FieldName))
	assert.True(t, rm.Has(FieldUnitPrice))
}

func TestResolveColumnsMissingField(t *testing.T) {
	headers := []string{"Name", "Price"}
	rm := ResolveColumns(headers, FieldMapFor(SourceGeneric))

	assert.False(t, rm.Has(FieldBarcode))
	assert.Nil(t, rm.Value(FieldBarcode, []string{"Widget", "10"}))
}

func TestRowMapShortRow(t *testing.T) {
	headers := []string{"Name", "SKU", "Price"}
	rm := ResolveColumns(headers, FieldMapFor(SourceGeneric))

	// data row shorter than header row
	assert.Nil(t, rm.Value(FieldUnitPrice, []string{"Widget"}))
	assert.Equal(t, "Widget", rm.Value(FieldName, []string{"Widget"}))
}

func TestUnknownSourceUsesGenericMap(t *testing.T) {
	assert.Equal(t, FieldMapFor(SourceGeneric)[FieldName], FieldMapFor("no-such-source")[FieldName])
}
