package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/config"
	"nutrisearch/internal/middleware"
	"nutrisearch/internal/models"
	"nutrisearch/internal/widget"
)

// newSearchApp wires the search handlers to a single widget, standing in
// for the session middleware.
func newSearchApp(t *testing.T, delay time.Duration) (*fiber.App, *widget.Widget) {
	t.Helper()

	w := widget.New(catalog.Default(), widget.Options{Delay: delay})
	t.Cleanup(w.Close)

	h := NewSearchHandler(&config.Config{LookupDelay: delay})
	attach := func(c fiber.Ctx) error {
		middleware.SetWidget(c, w)
		return c.Next()
	}

	app := fiber.New()
	app.Get("/search", attach, h.State)
	app.Post("/search", attach, h.Submit)
	app.Delete("/search", attach, h.Reset)
	return app, w
}

func postJSON(path, body string) *http.Request {
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSearchHandler_SubmitReturnsPending(t *testing.T) {
	app, _ := newSearchApp(t, time.Hour)

	resp, err := app.Test(postJSON("/search", `{"query":"Avocado"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	env := decode[models.QueryState](t, resp)
	if env.Data.Phase != models.PhasePending {
		t.Errorf("phase = %q, want pending", env.Data.Phase)
	}
	if env.Data.Input != "Avocado" {
		t.Errorf("input = %q, want original text", env.Data.Input)
	}
}

func TestSearchHandler_SubmitWait(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPhase models.Phase
		wantName  string
		wantError string
	}{
		{"found", "  AVOCADO ", models.PhaseFound, "Avocado", ""},
		{"not found", "pizza", models.PhaseNotFound, "", `"pizza" not found. Try: Salmon, Brown Rice, Greek Yogurt, Avocado, Quinoa, Chicken Breast, Banana, Spinach, Oatmeal, or Almonds`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newSearchApp(t, 5*time.Millisecond)

			resp, err := app.Test(postJSON("/search?wait=true", `{"query":"`+tt.query+`"}`))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			env := decode[models.QueryState](t, resp)

			if env.Data.Phase != tt.wantPhase {
				t.Fatalf("phase = %q, want %q", env.Data.Phase, tt.wantPhase)
			}
			if tt.wantName != "" && (env.Data.Result == nil || env.Data.Result.Name != tt.wantName) {
				t.Errorf("result = %+v, want %q", env.Data.Result, tt.wantName)
			}
			if env.Data.Error != tt.wantError {
				t.Errorf("error = %q, want %q", env.Data.Error, tt.wantError)
			}
		})
	}
}

func TestSearchHandler_BlankQueryIsNoop(t *testing.T) {
	app, w := newSearchApp(t, time.Hour)

	resp, err := app.Test(postJSON("/search", `{"query":"   "}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !w.State().IsIdle() {
		t.Errorf("blank query changed state to %q", w.State().Phase)
	}
}

func TestSearchHandler_InvalidBody(t *testing.T) {
	app, _ := newSearchApp(t, time.Hour)

	resp, err := app.Test(postJSON("/search", `{not json`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSearchHandler_Reset(t *testing.T) {
	app, w := newSearchApp(t, time.Hour)
	w.Search("salmon")

	req, _ := http.NewRequest("DELETE", "/search", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	env := decode[models.QueryState](t, resp)
	if env.Data.Phase != models.PhaseIdle || env.Data.Input != "" {
		t.Errorf("reset state = %+v, want idle", env.Data)
	}
}

func TestSearchHandler_State(t *testing.T) {
	app, w := newSearchApp(t, 5*time.Millisecond)
	w.Search("oatmeal")

	resp, err := app.Test(httpGet("/search?wait=true"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	env := decode[models.QueryState](t, resp)
	if env.Data.Phase != models.PhaseFound {
		t.Errorf("phase = %q, want found", env.Data.Phase)
	}
}

func TestSearchHandler_MissingWidget(t *testing.T) {
	h := NewSearchHandler(&config.Config{})
	app := fiber.New()
	app.Get("/search", h.State)

	resp, err := app.Test(httpGet("/search"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
