package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paydeck/internal/pkg/tableview"
)

func fullStateTable() PaymentTable {
	state := tableview.NewViewState()
	state.Filter = "ken"
	state.SortColumn = tableview.ColumnEmail
	state.SortDesc = true
	state.Hidden[tableview.ColumnEmail] = true
	state.Selected["A1"] = true

	return PaymentTable{
		State: state,
		Page:  2,
		Rows: []PaymentRow{
			{ID: "A1", Selected: true},
			{ID: "A2"},
		},
	}
}

func TestToggleColumnURLPreservesOtherFacets(t *testing.T) {
	t.Parallel()

	table := fullStateTable()

	// Hiding status keeps email hidden; every other facet survives.
	assert.Equal(t,
		"?dir=desc&filter=ken&hide=status%2Cemail&page=2&sel=A1&sort=email",
		table.ToggleColumnURL(tableview.ColumnStatus))

	// Toggling the hidden column un-hides just that column.
	assert.Equal(t,
		"?dir=desc&filter=ken&page=2&sel=A1&sort=email",
		table.ToggleColumnURL(tableview.ColumnEmail))
}

func TestSortURLFlipsDirectionAndResetsPage(t *testing.T) {
	t.Parallel()

	table := fullStateTable()

	// Email is already sorted descending, so activating it again flips to
	// ascending; hide and sel survive, the page resets.
	assert.Equal(t,
		"?dir=asc&filter=ken&hide=email&sel=A1&sort=email",
		table.SortURL(tableview.ColumnEmail))

	// Switching to another column starts ascending.
	assert.Equal(t,
		"?dir=asc&filter=ken&hide=email&sel=A1&sort=amount",
		table.SortURL(tableview.ColumnAmount))
}

func TestPageURLPreservesHiddenAndSelection(t *testing.T) {
	t.Parallel()

	table := fullStateTable()

	assert.Equal(t,
		"?dir=desc&filter=ken&hide=email&page=3&sel=A1&sort=email",
		table.PageURL(3))

	// The first page needs no page parameter.
	assert.Equal(t,
		"?dir=desc&filter=ken&hide=email&sel=A1&sort=email",
		table.PageURL(1))
}

func TestToggleRowURL(t *testing.T) {
	t.Parallel()

	table := fullStateTable()

	assert.Equal(t,
		"?dir=desc&filter=ken&hide=email&page=2&sel=A1%2CA2&sort=email",
		table.ToggleRowURL("A2"))

	// Deselecting the only selected row drops the sel parameter.
	assert.Equal(t,
		"?dir=desc&filter=ken&hide=email&page=2&sort=email",
		table.ToggleRowURL("A1"))
}

func TestToggleAllURL(t *testing.T) {
	t.Parallel()

	table := fullStateTable()
	assert.False(t, table.AllSelected())

	// Not all page rows are selected yet, so the link selects them all.
	assert.Equal(t,
		"?dir=desc&filter=ken&hide=email&page=2&sel=A1%2CA2&sort=email",
		table.ToggleAllURL())

	table.Rows[1].Selected = true
	table.State.Selected["A2"] = true
	assert.True(t, table.AllSelected())

	// With every page row selected the link clears the selection.
	assert.Equal(t,
		"?dir=desc&filter=ken&hide=email&page=2&sort=email",
		table.ToggleAllURL())
}

func TestPrintURLCarriesFacets(t *testing.T) {
	t.Parallel()

	table := fullStateTable()
	assert.Equal(t,
		"/admin/payments/print?dir=desc&filter=ken&hide=email&page=2&sel=A1&sort=email",
		table.PrintURL())
}

func TestCSVHelpers(t *testing.T) {
	t.Parallel()

	table := fullStateTable()
	assert.Equal(t, "email", table.HiddenCSV())
	assert.Equal(t, "A1", table.SelectedCSV())

	empty := PaymentTable{State: tableview.NewViewState()}
	assert.Equal(t, "", empty.HiddenCSV())
	assert.Equal(t, "", empty.SelectedCSV())
}
