// Package http provides the HTMX server and handler implementations.
//
// This file implements utilities for parsing and validating HTTP request
// data: the entry form, the status filter and receipt period parameters.

package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"jornada/internal/core"
)

// entryParamsFromForm builds creation parameters from the submitted form.
// Unknown locations fall back to Casa and unknown statuses to Pendiente, the
// same defaults the entry form starts with. Rate coercion happens in
// core.RateCents: anything unparseable or negative becomes zero.
func entryParamsFromForm(form url.Values) core.EntryParams {
	mode := core.ModeSingle
	if strings.TrimSpace(form.Get("mode")) == string(core.ModeBatch) {
		mode = core.ModeBatch
	}

	location := core.Location(sanitizeInput(form.Get("location")))
	if !location.IsValid() {
		location = core.LocationHome
	}

	status := core.Status(sanitizeInput(form.Get("status")))
	if !status.IsValid() {
		status = core.StatusPending
	}

	return core.EntryParams{
		Mode:      mode,
		Date:      sanitizeInput(form.Get("date")),
		EndDate:   sanitizeInput(form.Get("end_date")),
		Location:  location,
		Status:    status,
		RateCents: core.RateCents(form.Get("rate")),
		Notes:     sanitizeInput(form.Get("notes")),
	}
}

// statusFilterFromQuery reads the list filter, defaulting to Todos.
func statusFilterFromQuery(query url.Values) core.StatusFilter {
	f := core.StatusFilter(sanitizeInput(query.Get("status")))
	if !f.IsValid() {
		return core.FilterAll
	}
	return f
}

// periodFromQuery reads receipt period parameters. Month mode is the
// default, pinned to the current month when no value is given. Range bounds
// are passed through as-is; an inverted or unparseable range simply selects
// nothing downstream.
func periodFromQuery(query url.Values, now time.Time) core.Period {
	if strings.TrimSpace(query.Get("period")) == string(core.PeriodRange) {
		return core.Period{
			Mode:  core.PeriodRange,
			Start: sanitizeInput(query.Get("start")),
			End:   sanitizeInput(query.Get("end")),
		}
	}

	month := sanitizeInput(query.Get("month"))
	if month == "" {
		month = now.Format("2006-01")
	}
	return core.Period{Mode: core.PeriodMonth, Month: month}
}

// RequireMethod checks if the request method matches the expected method(s).
// Returns an error response builder if the method doesn't match.
func RequireMethod(r *http.Request, methods ...string) *HTMXResponseBuilder {
	for _, m := range methods {
		if r.Method == m {
			return nil
		}
	}
	return MethodNotAllowedError(strings.Join(methods, ", "))
}

// RequirePOST is a convenience function for POST-only handlers.
func RequirePOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodPost)
}

// ParseFormOrFail parses the request form and returns an error response on
// failure. Returns nil on success.
func ParseFormOrFail(r *http.Request) *HTMXResponseBuilder {
	if err := r.ParseForm(); err != nil {
		return BadRequestError("Formato de solicitud no válido")
	}
	return nil
}
