package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"paydeck/internal/pkg/tableview"
)

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// formatAmount renders an amount as a US dollar string with thousands
// separators, e.g. 1234.5 -> "$1,234.50".
func formatAmount(amount float64) string {
	return amountPrinter.Sprintf("$%.2f", amount)
}

// timestampLine formats the moment an action settled for the notification
// description, e.g. "Friday, August 28, 2026 at 10:30 AM".
func timestampLine(t time.Time) string {
	return t.Format("Monday, January 2, 2006") + " at " + t.Format("3:04 PM")
}

// viewStateFromQuery builds the table view state from the request query.
// The page parameter is 1-based in URLs; the view state is 0-based.
func viewStateFromQuery(c *fiber.Ctx) tableview.ViewState {
	state := tableview.NewViewState()
	state.Filter = c.Query("filter")

	if sortColumn := c.Query("sort"); sortColumn != "" {
		state.SortColumn = sortColumn
		state.SortDesc = c.Query("dir") == "desc"
	}

	if page, err := strconv.Atoi(c.Query("page", "1")); err == nil {
		state.Page = page - 1
	}

	for _, col := range splitCSV(c.Query("hide")) {
		state.Hidden[col] = true
	}

	state.SelectAll(splitCSV(c.Query("sel")))

	return state
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
