package api

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/go-cmp/cmp"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/models"
)

type envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
	Error  string `json:"error"`
}

func decode[T any](t *testing.T, resp *http.Response) envelope[T] {
	t.Helper()
	body, _ := io.ReadAll(resp.Body)
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return env
}

func newFoodApp() *fiber.App {
	h := NewFoodHandler(catalog.Default())
	app := fiber.New()
	app.Get("/foods", h.List)
	app.Get("/foods/:name", h.Get)
	return app
}

func TestFoodHandler_List(t *testing.T) {
	app := newFoodApp()

	resp, err := app.Test(httpGet("/foods"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	env := decode[[]models.FoodListItem](t, resp)
	if env.Status != "ok" {
		t.Errorf("status field = %q, want ok", env.Status)
	}

	var keys []string
	for _, item := range env.Data {
		keys = append(keys, item.Key)
	}
	if diff := cmp.Diff(catalog.Default().Keys(), keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFoodHandler_Get(t *testing.T) {
	salmon, _, _ := catalog.Default().Lookup("salmon")
	brownRice, _, _ := catalog.Default().Lookup("brown rice")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantKey    string
		wantRecord models.NutritionRecord
		wantError  string
	}{
		{
			name:       "exact key",
			path:       "/foods/salmon",
			wantStatus: 200,
			wantKey:    "salmon",
			wantRecord: salmon,
		},
		{
			name:       "mixed case",
			path:       "/foods/SaLmOn",
			wantStatus: 200,
			wantKey:    "salmon",
			wantRecord: salmon,
		},
		{
			name:       "escaped space",
			path:       "/foods/Brown%20Rice",
			wantStatus: 200,
			wantKey:    "brown rice",
			wantRecord: brownRice,
		},
		{
			name:       "unknown food",
			path:       "/foods/pizza",
			wantStatus: 404,
			wantError:  `"pizza" not found. Try: Salmon, Brown Rice, Greek Yogurt, Avocado, Quinoa, Chicken Breast, Banana, Spinach, Oatmeal, or Almonds`,
		},
		{
			name:       "blank name",
			path:       "/foods/%20%20",
			wantStatus: 400,
			wantError:  "food name is required",
		},
	}

	app := newFoodApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httpGet(tt.path))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			env := decode[models.LookupResponse](t, resp)
			if tt.wantError != "" {
				if env.Status != "error" || env.Error != tt.wantError {
					t.Errorf("error = %q (%s), want %q", env.Error, env.Status, tt.wantError)
				}
				return
			}
			if env.Data.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", env.Data.Key, tt.wantKey)
			}
			if diff := cmp.Diff(tt.wantRecord, env.Data.Record); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func httpGet(path string) *http.Request {
	req, _ := http.NewRequest("GET", path, nil)
	return req
}
