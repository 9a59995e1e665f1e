package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFixedHolidays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/PublicHolidays/2024/US" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`[
			{"date": "2024-07-04", "name": "Independence Day"},
			{"date": "bogus", "name": "Broken"},
			{"date": "2024-01-01", "name": ""}
		]`))
	}))
	defer srv.Close()

	got, err := NewHTTPFetcher(srv.URL, "US").FixedHolidays(context.Background(), 2024)
	if err != nil {
		t.Fatalf("FixedHolidays: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d holidays, want 1 (invalid records dropped)", len(got))
	}
	if got[0].Name != "Independence Day" || got[0].Date != "2024-07-04" {
		t.Errorf("got %+v", got[0])
	}
}

func TestFixedHolidaysServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewHTTPFetcher(srv.URL, "US").FixedHolidays(context.Background(), 2024); err == nil {
		t.Fatalf("expected an error on a non-2xx status")
	}
}

func TestFixedHolidaysBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	if _, err := NewHTTPFetcher(srv.URL, "US").FixedHolidays(context.Background(), 2024); err == nil {
		t.Fatalf("expected an error on a malformed body")
	}
}
