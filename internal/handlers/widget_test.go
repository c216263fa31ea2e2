package handlers

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/template/html/v3"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/config"
	"nutrisearch/internal/middleware"
	"nutrisearch/internal/widget"
	"nutrisearch/views"
)

func newWidgetApp(t *testing.T, delay time.Duration) (*fiber.App, *widget.Widget) {
	t.Helper()

	w := widget.New(catalog.Default(), widget.Options{Delay: delay})
	t.Cleanup(w.Close)

	cfg := &config.Config{LookupDelay: delay, SiteTitle: "Future Self"}
	h := NewWidgetHandler(catalog.Default(), cfg, config.DefaultLanding())

	app := fiber.New(fiber.Config{
		Views:       html.NewFileSystem(http.FS(views.FS), ".html"),
		ViewsLayout: "layouts/main",
	})
	app.Use(func(c fiber.Ctx) error {
		middleware.SetWidget(c, w)
		return c.Next()
	})
	app.Get("/", h.Index)
	app.Post("/search", h.Search)
	app.Get("/search/result", h.Result)
	app.Post("/search/reset", h.Reset)
	app.Post("/search/quick/:index", h.Quick)
	return app, w
}

func send(t *testing.T, app *fiber.App, method, target string, form url.Values) (int, string) {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, _ := http.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestWidgetHandler_Index(t *testing.T) {
	app, _ := newWidgetApp(t, time.Hour)

	status, body := send(t, app, "GET", "/", nil)
	if status != 200 {
		t.Fatalf("status = %d, body: %s", status, body)
	}
	for _, want := range []string{"See Your Future Self", "Food Search Agent", "widget-idle", "Popular searches"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestWidgetHandler_SearchRendersPartial(t *testing.T) {
	app, w := newWidgetApp(t, time.Hour)

	status, body := send(t, app, "POST", "/search", url.Values{"q": {"Spinach"}})
	if status != 200 {
		t.Fatalf("status = %d, body: %s", status, body)
	}
	if strings.Contains(body, "<html") {
		t.Error("partial was rendered inside the layout")
	}
	if !strings.Contains(body, "Analyzing nutrition data...") {
		t.Errorf("expected pending label, got: %s", body)
	}
	if !strings.Contains(body, "/search/result?id="+w.State().ID.String()) {
		t.Errorf("pending partial does not poll the current query: %s", body)
	}
}

func TestWidgetHandler_ResultForStaleIDRendersCurrentState(t *testing.T) {
	app, w := newWidgetApp(t, time.Hour)
	w.Search("salmon")

	// An id that is not current must not block.
	status, body := send(t, app, "GET", "/search/result?id=stale", nil)
	if status != 200 {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "widget-pending") {
		t.Errorf("expected current pending state, got: %s", body)
	}
}

func TestWidgetHandler_ResultAwaits(t *testing.T) {
	app, w := newWidgetApp(t, 5*time.Millisecond)
	st := w.Search("almonds")

	status, body := send(t, app, "GET", "/search/result?id="+st.ID.String(), nil)
	if status != 200 {
		t.Fatalf("status = %d", status)
	}
	for _, want := range []string{"widget-found", "Almonds", "Calories", "kcal", "Fiber"} {
		if !strings.Contains(body, want) {
			t.Errorf("result missing %q", want)
		}
	}
}

func TestWidgetHandler_Quick(t *testing.T) {
	tests := []struct {
		name       string
		index      string
		wantStatus int
		wantInput  string
	}{
		{"first", "0", 200, "Salmon"},
		{"last", "6", 200, "Banana"},
		{"out of range", "7", 404, ""},
		{"negative", "-1", 404, ""},
		{"not a number", "salmon", 404, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, w := newWidgetApp(t, time.Hour)

			status, _ := send(t, app, "POST", "/search/quick/"+tt.index, url.Values{})
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.wantInput != "" && w.State().Input != tt.wantInput {
				t.Errorf("input = %q, want %q", w.State().Input, tt.wantInput)
			}
		})
	}
}

func TestWidgetHandler_Reset(t *testing.T) {
	app, w := newWidgetApp(t, time.Hour)
	w.Search("banana")

	status, body := send(t, app, "POST", "/search/reset", url.Values{})
	if status != 200 {
		t.Fatalf("status = %d", status)
	}
	if !w.State().IsIdle() || !strings.Contains(body, "widget-idle") {
		t.Errorf("reset did not return to idle: %s", body)
	}
}
