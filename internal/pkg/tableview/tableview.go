package tableview

import (
	"sort"
	"strings"

	"paydeck/app/models"
)

// DefaultPageSize is the fixed number of rows per table page.
const DefaultPageSize = 10

// Sortable and hideable table columns. The selection checkbox and the row
// action menu are fixed columns and never participate in sorting or hiding.
const (
	ColumnStatus = "status"
	ColumnEmail  = "email"
	ColumnAmount = "amount"
)

// HideableColumns lists the columns that can be toggled in the column menu,
// in display order.
var HideableColumns = []string{ColumnStatus, ColumnEmail, ColumnAmount}

// ViewState holds the display configuration of the payments table. It is
// client-only state: none of it is persisted, and it never changes what is
// stored, only what is rendered.
type ViewState struct {
	SortColumn string
	SortDesc   bool
	Filter     string
	Hidden     map[string]bool
	Selected   map[string]bool
	Page       int
	PageSize   int
}

// NewViewState returns an unsorted, unfiltered state on the first page.
func NewViewState() ViewState {
	return ViewState{
		Hidden:   make(map[string]bool),
		Selected: make(map[string]bool),
		PageSize: DefaultPageSize,
	}
}

// ToggleSort activates sorting on column. Repeated activation of the same
// column flips the direction; switching columns starts ascending again.
func (s *ViewState) ToggleSort(column string) {
	if s.SortColumn == column {
		s.SortDesc = !s.SortDesc
		return
	}
	s.SortColumn = column
	s.SortDesc = false
}

// ToggleColumn flips the visibility of a hideable column.
func (s *ViewState) ToggleColumn(column string) {
	if s.Hidden == nil {
		s.Hidden = make(map[string]bool)
	}
	s.Hidden[column] = !s.Hidden[column]
}

// ToggleRow flips the selection of a single row.
func (s *ViewState) ToggleRow(id string) {
	if s.Selected == nil {
		s.Selected = make(map[string]bool)
	}
	if s.Selected[id] {
		delete(s.Selected, id)
		return
	}
	s.Selected[id] = true
}

// SelectAll marks every given row id as selected.
func (s *ViewState) SelectAll(ids []string) {
	if s.Selected == nil {
		s.Selected = make(map[string]bool)
	}
	for _, id := range ids {
		s.Selected[id] = true
	}
}

// ClearSelection drops all selected rows.
func (s *ViewState) ClearSelection() {
	s.Selected = make(map[string]bool)
}

// View is the fully derived render state for one table page.
type View struct {
	Rows          []models.Payment
	Page          int
	PageCount     int
	TotalRows     int
	FilteredRows  int
	SelectedRows  int
	Columns       []string
	SortColumn    string
	SortDesc      bool
	Filter        string
}

// Derive computes the visible row set from the full record collection and
// the view state: filter first, then a stable sort, then pagination. The
// function is pure; the same (records, state) pair always yields the same
// view, and the input slice is never modified.
func Derive(records []models.Payment, state ViewState) View {
	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := applyFilter(records, state.Filter)
	sorted := applySort(filtered, state.SortColumn, state.SortDesc)

	pageCount := len(sorted) / pageSize
	if len(sorted)%pageSize > 0 {
		pageCount++
	}

	page := state.Page
	if page > pageCount-1 {
		page = pageCount - 1
	}
	if page < 0 {
		page = 0
	}

	start := page * pageSize
	end := start + pageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	selected := 0
	for _, p := range sorted {
		if state.Selected[p.ID] {
			selected++
		}
	}

	return View{
		Rows:         sorted[start:end],
		Page:         page,
		PageCount:    pageCount,
		TotalRows:    len(records),
		FilteredRows: len(sorted),
		SelectedRows: selected,
		Columns:      visibleColumns(state.Hidden),
		SortColumn:   state.SortColumn,
		SortDesc:     state.SortDesc,
		Filter:       state.Filter,
	}
}

// applyFilter keeps rows whose email contains the filter substring,
// case-sensitive as typed. An empty filter keeps everything.
func applyFilter(records []models.Payment, filter string) []models.Payment {
	out := make([]models.Payment, 0, len(records))
	if filter == "" {
		return append(out, records...)
	}
	for _, p := range records {
		if strings.Contains(p.Email, filter) {
			out = append(out, p)
		}
	}
	return out
}

// applySort stable-sorts rows by the chosen column. An empty or unknown
// column keeps insertion order.
func applySort(rows []models.Payment, column string, desc bool) []models.Payment {
	less := lessByColumn(column)
	if less == nil {
		return rows
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})

	return rows
}

func lessByColumn(column string) func(a, b models.Payment) bool {
	switch column {
	case ColumnAmount:
		return func(a, b models.Payment) bool { return a.Amount < b.Amount }
	case ColumnStatus:
		return func(a, b models.Payment) bool { return a.Status < b.Status }
	case ColumnEmail:
		return func(a, b models.Payment) bool { return a.Email < b.Email }
	}
	return nil
}

func visibleColumns(hidden map[string]bool) []string {
	out := make([]string, 0, len(HideableColumns))
	for _, col := range HideableColumns {
		if !hidden[col] {
			out = append(out, col)
		}
	}
	return out
}
