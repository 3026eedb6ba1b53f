package viewmodel

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"paydeck/internal/pkg/constants"
	"paydeck/internal/pkg/tableview"
)

// PaymentRow is a single rendered table row.
type PaymentRow struct {
	ID              string
	Status          string
	Email           string
	Amount          float64
	FormattedAmount string
	Selected        bool
}

// PaymentTable contains everything the payments table template needs:
// the derived page of rows plus the controls state (filter box, sort
// links, column menu, pagination).
type PaymentTable struct {
	Rows         []PaymentRow
	View         tableview.View
	State        tableview.ViewState
	Columns      map[string]bool
	Filter       string
	SortColumn   string
	SortDesc     bool
	Page         int
	PageCount    int
	PrevPage     int
	NextPage     int
	HasPrev      bool
	HasNext      bool
	SelectedRows int
	FilteredRows int

	// Form redisplay state after a failed submission
	FormValues  map[string]string
	FieldErrors map[string]string
	Statuses    []string
}

// The URL builders below re-encode the complete view state with a single
// facet changed, so filter, sort, column visibility, selection and page
// survive every link on the screen.

// ToggleColumnURL returns the table URL with the given column's visibility
// flipped.
func (t PaymentTable) ToggleColumnURL(column string) string {
	hidden := copySet(t.State.Hidden)
	hidden[column] = !hidden[column]
	return t.queryWith(func(v url.Values) {
		setOrDelete(v, "hide", hiddenCSV(hidden))
	})
}

// SortURL returns the table URL sorting by the given column. Activating
// the already-active column flips the direction; sorting returns to the
// first page.
func (t PaymentTable) SortURL(column string) string {
	state := t.State
	state.ToggleSort(column)
	return t.queryWith(func(v url.Values) {
		v.Set("sort", state.SortColumn)
		v.Set("dir", dirValue(state.SortDesc))
		v.Del("page")
	})
}

// PageURL returns the table URL for the given 1-based page.
func (t PaymentTable) PageURL(page int) string {
	return t.queryWith(func(v url.Values) {
		if page > 1 {
			v.Set("page", strconv.Itoa(page))
		} else {
			v.Del("page")
		}
	})
}

// ToggleRowURL returns the table URL with one row's selection flipped.
func (t PaymentTable) ToggleRowURL(id string) string {
	sel := copySet(t.State.Selected)
	if sel[id] {
		delete(sel, id)
	} else {
		sel[id] = true
	}
	return t.queryWith(func(v url.Values) {
		setOrDelete(v, "sel", selectedCSV(sel))
	})
}

// ToggleAllURL selects every row on the current page, or clears the page's
// rows when all of them are already selected.
func (t PaymentTable) ToggleAllURL() string {
	sel := copySet(t.State.Selected)
	all := t.AllSelected()
	for _, row := range t.Rows {
		if all {
			delete(sel, row.ID)
		} else {
			sel[row.ID] = true
		}
	}
	return t.queryWith(func(v url.Values) {
		setOrDelete(v, "sel", selectedCSV(sel))
	})
}

// AllSelected reports whether every row on the current page is selected.
func (t PaymentTable) AllSelected() bool {
	if len(t.Rows) == 0 {
		return false
	}
	for _, row := range t.Rows {
		if !row.Selected {
			return false
		}
	}
	return true
}

// PrintURL carries the current facets over to the print view.
func (t PaymentTable) PrintURL() string {
	return constants.PaymentsPrintRoute + t.queryWith(nil)
}

// HiddenCSV renders the hidden-column set as the hide query value, for
// hidden form fields that must carry it through a submission.
func (t PaymentTable) HiddenCSV() string {
	return hiddenCSV(t.State.Hidden)
}

// SelectedCSV renders the selected-row set as the sel query value.
func (t PaymentTable) SelectedCSV() string {
	return selectedCSV(t.State.Selected)
}

// queryWith encodes the current view state as a query string, applying
// modify before encoding.
func (t PaymentTable) queryWith(modify func(url.Values)) string {
	v := url.Values{}
	if t.State.Filter != "" {
		v.Set("filter", t.State.Filter)
	}
	if t.State.SortColumn != "" {
		v.Set("sort", t.State.SortColumn)
		v.Set("dir", dirValue(t.State.SortDesc))
	}
	if t.Page > 1 {
		v.Set("page", strconv.Itoa(t.Page))
	}
	if hide := hiddenCSV(t.State.Hidden); hide != "" {
		v.Set("hide", hide)
	}
	if sel := selectedCSV(t.State.Selected); sel != "" {
		v.Set("sel", sel)
	}
	if modify != nil {
		modify(v)
	}
	return "?" + v.Encode()
}

func dirValue(desc bool) string {
	if desc {
		return "desc"
	}
	return "asc"
}

// hiddenCSV lists hidden columns in display order.
func hiddenCSV(hidden map[string]bool) string {
	cols := make([]string, 0, len(tableview.HideableColumns))
	for _, col := range tableview.HideableColumns {
		if hidden[col] {
			cols = append(cols, col)
		}
	}
	return strings.Join(cols, ",")
}

// selectedCSV lists selected row ids, sorted for stable URLs.
func selectedCSV(selected map[string]bool) string {
	ids := make([]string, 0, len(selected))
	for id, on := range selected {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k, on := range set {
		if on {
			out[k] = true
		}
	}
	return out
}

func setOrDelete(v url.Values, key, value string) {
	if value == "" {
		v.Del(key)
		return
	}
	v.Set(key, value)
}
