package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTMXResponseBuilderTriggers(t *testing.T) {
	rr := httptest.NewRecorder()

	NewHTMXResponse().
		TriggerWorkDaysChanged(3).
		TriggerFormReset().
		BodyHTML(`<div class="success">ok</div>`).
		Write(rr)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	trigger := rr.Header().Get("HX-Trigger")
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger not valid JSON: %q", trigger)
	}
	if _, ok := parsed["workdays:changed"]; !ok {
		t.Errorf("missing workdays:changed trigger: %q", trigger)
	}
	if _, ok := parsed["form:reset"]; !ok {
		t.Errorf("missing form:reset trigger: %q", trigger)
	}

	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "success") {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestErrorResponsesEscapeHTML(t *testing.T) {
	rr := httptest.NewRecorder()
	UnprocessableEntityError(`<script>alert("x")</script>`).Write(rr)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<script>") {
		t.Errorf("message should be escaped: %s", body)
	}
	if !strings.Contains(body, "error") {
		t.Errorf("body should carry error class: %s", body)
	}
}

func TestMethodNotAllowedSetsAllowHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	MethodNotAllowedError("POST").Write(rr)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rr.Code)
	}
	if allow := rr.Header().Get("Allow"); allow != "POST" {
		t.Errorf("Allow = %q", allow)
	}
}

func TestNoTriggerHeaderWithoutTriggers(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHTMXResponse().BodyHTML("ok").Write(rr)

	if rr.Header().Get("HX-Trigger") != "" {
		t.Errorf("unexpected HX-Trigger: %q", rr.Header().Get("HX-Trigger"))
	}
}
