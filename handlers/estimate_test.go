package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"cerberus/services/catalog"
	"cerberus/services/estimate"
)

func newEstimateHandler() *EstimateHandler {
	h := NewEstimateHandler(catalog.Default())
	h.Now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }
	return h
}

type estimateBody struct {
	Estimate struct {
		PackageID *string `json:"packageId"`
		PostOnly  *string `json:"postOnly"`
		RushCost  int64   `json:"rushCost"`
		Total     int64   `json:"total"`
	} `json:"estimate"`
	Summary string `json:"summary"`
	Note    string `json:"note"`
}

func TestComputeEstimateHandler(t *testing.T) {
	h := newEstimateHandler()
	w := postJSON(h.ComputeEstimateHandler, "/api/estimate",
		`{"packageId":"standard","addonIds":["extra-location","drone"],"rushDays":10}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	var body estimateBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Estimate.RushCost != 600 {
		t.Errorf("rushCost: got %d", body.Estimate.RushCost)
	}
	if body.Estimate.Total != 500+100+600 {
		t.Errorf("total: got %d", body.Estimate.Total)
	}
	if body.Note != estimate.QuotedNote {
		t.Errorf("note: got %q", body.Note)
	}
	if body.Summary == "" || body.Summary == estimate.NoEstimateText {
		t.Errorf("summary: got %q", body.Summary)
	}
}

func TestComputeEstimateHandler_ClearsPreviousPostOnly(t *testing.T) {
	h := newEstimateHandler()
	w := postJSON(h.ComputeEstimateHandler, "/api/estimate",
		`{"packageId":"starter","previous":{"postOnly":"edit-only","postOnlyName":"Edit only","postOnlyPrice":250,"total":250}}`)

	var body estimateBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Estimate.PostOnly != nil {
		t.Errorf("postOnly should be cleared, got %v", *body.Estimate.PostOnly)
	}
	if body.Estimate.Total != 300 {
		t.Errorf("total: got %d", body.Estimate.Total)
	}
}

func TestSelectPostOnlyHandler(t *testing.T) {
	h := newEstimateHandler()

	w := postJSON(h.SelectPostOnlyHandler, "/api/estimate/post-only", `{"postOnlyId":"edit-only"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var body estimateBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Estimate.PackageID != nil || body.Estimate.Total != 250 {
		t.Errorf("estimate: %+v", body.Estimate)
	}

	w = postJSON(h.SelectPostOnlyHandler, "/api/estimate/post-only", `{"postOnlyId":"nope"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d", w.Code)
	}
}

func TestSummaryHandler_Empty(t *testing.T) {
	h := newEstimateHandler()
	w := postJSON(h.SummaryHandler, "/api/estimate/summary", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	if body := decode(t, w); body["summary"] != estimate.NoEstimateText {
		t.Errorf("summary: %v", body["summary"])
	}
}
