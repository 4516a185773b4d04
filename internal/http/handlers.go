package http

import (
	"encoding/csv"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jornada/internal/core"
	"jornada/internal/storage"
)

// workDayRow is the template view of one record.
type workDayRow struct {
	ID       string
	Date     string
	DayMonth string
	Location string
	Status   string
	Paid     bool
	Rate     string
	Notes    string
}

func rowsFor(days []core.WorkDay) []workDayRow {
	rows := make([]workDayRow, 0, len(days))
	for _, d := range days {
		rows = append(rows, workDayRow{
			ID:       d.ID,
			Date:     d.Date,
			DayMonth: dayMonthLabel(d.Date),
			Location: string(d.Location),
			Status:   string(d.Status),
			Paid:     d.Status == core.StatusPaid,
			Rate:     formatEuros(d.RateCents),
			Notes:    d.Notes,
		})
	}
	return rows
}

func dayMonthLabel(date string) string {
	t, err := core.ParseDay(date)
	if err != nil {
		return date
	}
	return t.Format("02/01")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	data := struct {
		Today       string
		Month       string
		DefaultRate string
	}{
		Today:       core.FormatDay(now),
		Month:       now.Format("2006-01"),
		DefaultRate: strconv.FormatFloat(core.Euros(s.tracker.DefaultRateCents()), 'f', 2, 64),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleCreateWorkDays registers one day or expands a date range, overwriting
// any prior record on the same dates.
func (s *Server) handleCreateWorkDays(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	params := entryParamsFromForm(r.Form)
	entries, err := s.tracker.CreateEntries(r.Context(), params, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidRange):
			UnprocessableEntityError("Rango de fechas no válido").Write(w)
		case errors.Is(err, core.ErrInvalidDate):
			UnprocessableEntityError("Fecha no válida").Write(w)
		default:
			slog.ErrorContext(r.Context(), "Create work days error", "error", err)
			InternalServerError("Error al guardar").Write(w)
		}
		return
	}

	msg := "Jornada registrada"
	if len(entries) > 1 {
		msg = "Registradas " + strconv.Itoa(len(entries)) + " jornadas"
	}

	NewHTMXResponse().
		TriggerWorkDaysChanged(len(entries)).
		TriggerFormReset().
		TriggerSuccessNotification(msg).
		BodyHTML(`<div class="success">` + template.HTMLEscapeString(msg) + `</div>`).
		Write(w)
}

// handleWorkDayAction routes POST /workdays/{id}/toggle and
// POST /workdays/{id}/delete. An unknown id is a silent no-op: the response
// is still 200, it just carries no refresh trigger.
func (s *Server) handleWorkDayAction(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/workdays/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	id, action := parts[0], parts[1]

	var found bool
	switch action {
	case "toggle":
		found = s.tracker.ToggleStatus(r.Context(), id)
	case "delete":
		found = s.tracker.Delete(r.Context(), id)
	default:
		http.NotFound(w, r)
		return
	}

	resp := NewHTMXResponse()
	if found {
		resp.TriggerWorkDaysChanged(1)
	} else {
		slog.WarnContext(r.Context(), "Work day not found", "id", id, "action", action)
	}
	resp.Write(w)
}

// handleWorkDayList renders the record list partial, optionally filtered by
// payment status.
func (s *Server) handleWorkDayList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	filter := statusFilterFromQuery(r.URL.Query())
	days := core.FilterByStatus(s.tracker.Days(), filter)

	data := struct {
		Filter string
		Rows   []workDayRow
	}{
		Filter: string(filter),
		Rows:   rowsFor(days),
	}

	s.renderPartial(w, r, "workday_list.html", data,
		`<section id="workday-list"><div class="placeholder">Error cargando jornadas</div></section>`)
}

// handleStats renders the aggregate totals partial. Figures are recomputed
// from the snapshot on every request.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	st := core.ComputeStats(s.tracker.Days())
	data := struct {
		Pending   string
		Paid      string
		Total     string
		TotalDays int
		HomeDays  int
		AwayDays  int
	}{
		Pending:   formatEuros(st.TotalPendingCents),
		Paid:      formatEuros(st.TotalPaidCents),
		Total:     formatEuros(st.TotalPendingCents + st.TotalPaidCents),
		TotalDays: st.TotalDays,
		HomeDays:  st.HomeDays,
		AwayDays:  st.TotalDays - st.HomeDays,
	}

	s.renderPartial(w, r, "stats.html", data,
		`<section id="stats"><div class="placeholder">Error cargando totales</div></section>`)
}

// handleTrend renders the trailing six month income chart partial.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	series := core.MonthlySeries(s.tracker.Days(), time.Now())

	var maxCents int64
	for _, p := range series {
		if p.IncomeCents > maxCents {
			maxCents = p.IncomeCents
		}
	}

	type bar struct {
		Label  string
		Amount string
		Height int
	}
	data := struct {
		Bars []bar
	}{}
	for _, p := range series {
		height := 0
		if maxCents > 0 && p.IncomeCents > 0 {
			height = int((p.IncomeCents*100 + maxCents/2) / maxCents) // rounded percent
			if height > 0 && height < 2 {                            // ensure visibility for very small values
				height = 2
			}
			if height > 100 {
				height = 100
			}
		}
		data.Bars = append(data.Bars, bar{
			Label:  p.Label,
			Amount: formatEuros(p.IncomeCents),
			Height: height,
		})
	}

	s.renderPartial(w, r, "trend.html", data,
		`<section id="trend"><div class="placeholder">Error cargando tendencia</div></section>`)
}

// handleReceipt renders the printable receipt partial for a month or an
// explicit date range.
func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	period := periodFromQuery(r.URL.Query(), time.Now())
	receipt := core.BuildReceipt(s.tracker.Days(), period, time.Now())

	type line struct {
		DayMonth  string
		Location  string
		StatusTag string
		Rate      string
	}
	data := struct {
		Title        string
		PeriodLabel  string
		Filename     string
		Generated    string
		TotalDays    int
		Lines        []line
		Pending      string
		Paid         string
		Total        string
		DownloadHref string
	}{
		Title:        receipt.Title,
		PeriodLabel:  receipt.PeriodLabel,
		Filename:     receipt.Filename,
		Generated:    receipt.GeneratedAt.Format("02/01/2006 15:04"),
		TotalDays:    receipt.TotalDays,
		Pending:      formatEuros(receipt.PendingCents),
		Paid:         formatEuros(receipt.PaidCents),
		Total:        formatEuros(receipt.TotalCents),
		DownloadHref: exportHref(period, "csv"),
	}
	for _, l := range receipt.Lines {
		data.Lines = append(data.Lines, line{
			DayMonth:  l.DayMonth,
			Location:  l.Location,
			StatusTag: l.StatusTag,
			Rate:      formatEuros(l.RateCents),
		})
	}

	s.renderPartial(w, r, "receipt.html", data,
		`<section id="receipt"><div class="placeholder">Error generando recibo</div></section>`)
}

// handleExport serves the snapshot as a JSON or CSV download. With period
// parameters only the matching records are exported; without them the whole
// collection is.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}

	query := r.URL.Query()
	days := s.tracker.Days()

	base := "madrid_jobs_export"
	if query.Get("period") != "" || query.Get("month") != "" {
		period := periodFromQuery(query, time.Now())
		days = period.Select(days)
		base = strings.TrimSuffix(period.Filename(), ".png")
	}

	format := strings.ToLower(strings.TrimSpace(query.Get("format")))
	switch format {
	case "csv":
		s.writeCSVExport(w, r, days, base+".csv")
	case "", "json":
		s.writeJSONExport(w, r, days, base+".json")
	default:
		BadRequestError("Formato de exportación no válido").Write(w)
	}
}

// writeJSONExport emits the records in the persisted snapshot format, so an
// export is byte-compatible with what the storage layer would write.
func (s *Server) writeJSONExport(w http.ResponseWriter, r *http.Request, days []core.WorkDay, filename string) {
	payload, err := storage.EncodeSnapshot(days)
	if err != nil {
		slog.ErrorContext(r.Context(), "Export encode error", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) writeCSVExport(w http.ResponseWriter, r *http.Request, days []core.WorkDay, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"fecha", "lugar", "estado", "tarifa", "notas"})
	for _, d := range days {
		_ = cw.Write([]string{
			d.Date,
			string(d.Location),
			string(d.Status),
			strconv.FormatFloat(core.Euros(d.RateCents), 'f', 2, 64),
			d.Notes,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.ErrorContext(r.Context(), "Export CSV write error", "error", err)
	}
}

// renderPartial executes a template, falling back to a static error fragment
// so a broken partial never blanks the page.
func (s *Server) renderPartial(w http.ResponseWriter, r *http.Request, name string, data any, fallback string) {
	if s.templates == nil {
		_, _ = w.Write([]byte(fallback))
		return
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", name)
		_, _ = w.Write([]byte(fallback))
	}
}
