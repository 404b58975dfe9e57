package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
)

func guestRouter(guestRepo *stubGuestRepo) *gin.Engine {
	gs := services.NewGuestService(guestRepo, &stubRSVPRepo{})
	r := gin.New()
	r.GET("/api/v1/guests/search", SearchGuests(gs))
	return r
}

func TestSearchGuestsEchoesQuery(t *testing.T) {
	router := guestRouter(&stubGuestRepo{
		guests: []*models.Guest{{ID: uuid.New(), Name: "Anna Smith"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guests/search?q=ann", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var res struct {
		Success bool `json:"success"`
		Data    struct {
			Query   string              `json:"query"`
			Results []models.GuestMatch `json:"results"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if res.Data.Query != "ann" {
		t.Errorf("echoed query = %q, want %q", res.Data.Query, "ann")
	}
	if len(res.Data.Results) != 1 {
		t.Errorf("got %d results, want 1", len(res.Data.Results))
	}
}

func TestSearchGuestsShortQueryEmptyResults(t *testing.T) {
	router := guestRouter(&stubGuestRepo{
		guests: []*models.Guest{{ID: uuid.New(), Name: "Anna Smith"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guests/search?q=a", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var res struct {
		Data struct {
			Results []models.GuestMatch `json:"results"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(res.Data.Results) != 0 {
		t.Errorf("short query returned %d results, want 0", len(res.Data.Results))
	}
}

func TestSearchGuestsInvalidExclude(t *testing.T) {
	router := guestRouter(&stubGuestRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guests/search?q=ann&exclude=not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
