package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/index"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
	"github.com/arcanum-obscurum/arcanum/internal/notify"
	"github.com/arcanum-obscurum/arcanum/internal/store/kv"
)

func testDeps(t *testing.T) (deps.Deps, kv.Store) {
	t.Helper()
	store := kv.NewMemory()
	d := deps.Deps{
		Logger:       logger.Nop(),
		StartTime:    time.Now(),
		TimeNow:      time.Now,
		Catalog:      index.NewCatalog(),
		ThreatLevels: index.NewThreatLevels(domain.SeedThreatLevels()),
		Events:       index.NewEvents(),
		Notifier:     notify.New(context.Background(), store, logger.Nop()),
	}
	return d, store
}

func testRouter(d deps.Deps) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/entries", ListEntries(d))
	r.Post("/api/entries", CreateEntry(d))
	r.Get("/api/entries/{id}", GetEntry(d))
	r.Delete("/api/entries/{id}", DeleteEntry(d))
	r.Get("/api/search", Search(d))
	r.Get("/api/threats/{grade}", ThreatGroup(d))
	r.Get("/api/threat-levels", ListThreatLevels(d))
	r.Put("/api/threat-levels/{id}", UpdateThreatLevel(d))
	r.Get("/api/map", MapPins(d))
	r.Get("/api/notification", Notification(d))
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateEntryEndpoint(t *testing.T) {
	d, store := testDeps(t)
	if err := d.Notifier.SetPreferences(context.Background(), domain.Preferences{
		Enabled:       true,
		WatchedTags:   []string{},
		WatchedGrades: []string{"Classe Especial"},
	}); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}
	r := testRouter(d)

	rec := doJSON(t, r, http.MethodPost, "/api/entries",
		`{"title":"Sukuna Finger","threatGrade":"Classe Especial","powerLevel":8820}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp createEntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Entry.ID == "" || resp.Entry.Title != "Sukuna Finger" {
		t.Errorf("entry = %+v", resp.Entry)
	}
	if resp.Entry.PowerLevel != 8800 {
		t.Errorf("powerLevel = %d, want snapped 8800", resp.Entry.PowerLevel)
	}
	if !resp.Evaluation.Alert || !resp.Evaluation.GradeMatch {
		t.Errorf("evaluation = %+v, want grade alert", resp.Evaluation)
	}
	if !strings.Contains(resp.Message, "Sukuna Finger") {
		t.Errorf("message = %q", resp.Message)
	}

	if raw, ok, _ := store.Get(context.Background(), notify.FlagKey); !ok || raw != "true" {
		t.Errorf("flag = %q ok=%v, want persisted true", raw, ok)
	}
}

func TestCreateEntryRejectsBadInput(t *testing.T) {
	d, _ := testDeps(t)
	r := testRouter(d)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"not json", `{{`, http.StatusBadRequest},
		{"blank title", `{"title":"   "}`, http.StatusUnprocessableEntity},
		{"unknown grade", `{"title":"X","threatGrade":"Classe 9"}`, http.StatusUnprocessableEntity},
		{"power out of range", `{"title":"X","powerLevel":10001}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/entries", tt.body)
			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.code, rec.Body.String())
			}
		})
	}
	if d.Catalog.Count() != 0 {
		t.Errorf("rejected entries must not be stored, count = %d", d.Catalog.Count())
	}
}

func TestListEntriesClearsNotification(t *testing.T) {
	d, store := testDeps(t)
	ctx := context.Background()
	if err := store.Set(ctx, notify.FlagKey, "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	r := testRouter(d)

	rec := doJSON(t, r, http.MethodGet, "/api/entries", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, ok, _ := store.Get(ctx, notify.FlagKey); ok {
		t.Error("opening the catalog should clear the pending flag")
	}
}

func TestEntryLifecycle(t *testing.T) {
	d, _ := testDeps(t)
	r := testRouter(d)

	rec := doJSON(t, r, http.MethodPost, "/api/entries", `{"title":"Relic"}`)
	var resp createEntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := resp.Entry.ID

	if rec := doJSON(t, r, http.MethodGet, "/api/entries/"+id, ""); rec.Code != http.StatusOK {
		t.Errorf("get status = %d", rec.Code)
	}
	if rec := doJSON(t, r, http.MethodDelete, "/api/entries/"+id, ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
	if rec := doJSON(t, r, http.MethodGet, "/api/entries/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", rec.Code)
	}
}

func TestSearchEndpointIdleState(t *testing.T) {
	d, _ := testDeps(t)
	r := testRouter(d)
	doJSON(t, r, http.MethodPost, "/api/entries", `{"title":"Relic"}`)

	rec := doJSON(t, r, http.MethodGet, "/api/search?q=", "")
	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("blank query returned %d results, want idle empty", len(resp.Results))
	}

	rec = doJSON(t, r, http.MethodGet, "/api/search?q=rel", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Errorf("results = %d, want 1", len(resp.Results))
	}
}

func TestThreatGroupEndpoint(t *testing.T) {
	d, _ := testDeps(t)
	r := testRouter(d)
	doJSON(t, r, http.MethodPost, "/api/entries", `{"title":"A","threatGrade":"Classe 1","powerLevel":500}`)
	doJSON(t, r, http.MethodPost, "/api/entries", `{"title":"B","threatGrade":"Classe 1","powerLevel":9000}`)

	rec := doJSON(t, r, http.MethodGet, "/api/threats/Classe%201", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []domain.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Title != "B" {
		t.Errorf("ranked = %+v, want B first", got)
	}

	if rec := doJSON(t, r, http.MethodGet, "/api/threats/Classe%209", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown grade status = %d, want 404", rec.Code)
	}
}

func TestUpdateThreatLevelEndpoint(t *testing.T) {
	d, _ := testDeps(t)
	r := testRouter(d)

	rec := doJSON(t, r, http.MethodPut, "/api/threat-levels/2",
		`{"grade":"Classe 2","description":"Rebaixado."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var view threatLevelView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Grade != domain.Grade2 || view.Description != "Rebaixado." {
		t.Errorf("view = %+v", view)
	}
	// Clearance is fixed at seed time, so the banner state is too.
	if !view.MaxContainment {
		t.Error("row 2 keeps clearance 4 and its banner")
	}

	if rec := doJSON(t, r, http.MethodPut, "/api/threat-levels/9", `{"grade":"Classe 2"}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d", rec.Code)
	}
}

func TestMapPinsEndpoint(t *testing.T) {
	d, _ := testDeps(t)
	r := testRouter(d)
	doJSON(t, r, http.MethodPost, "/api/entries", `{"title":"Anchored","lat":"10","lng":"20"}`)
	doJSON(t, r, http.MethodPost, "/api/entries", `{"title":"Drifting"}`)

	rec := doJSON(t, r, http.MethodGet, "/api/map", "")
	var resp mapResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Width != domain.MapWidth || resp.Height != domain.MapHeight {
		t.Errorf("canvas = %v x %v", resp.Width, resp.Height)
	}
	if len(resp.Pins) != 2 {
		t.Fatalf("pins = %d, want 2", len(resp.Pins))
	}
	for _, pin := range resp.Pins {
		switch pin.Title {
		case "Anchored":
			if pin.Approximate {
				t.Error("explicit coordinates should not be approximate")
			}
		case "Drifting":
			if !pin.Approximate {
				t.Error("pseudo-position should be flagged approximate")
			}
		}
		if pin.X < 0 || pin.X > domain.MapWidth || pin.Y < 0 || pin.Y > domain.MapHeight {
			t.Errorf("pin %s out of canvas: (%v, %v)", pin.Title, pin.X, pin.Y)
		}
	}
}
