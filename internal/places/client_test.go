package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("AIzaTestKey1234567890")
	client.searchURL = server.URL
	return client, server
}

func okResponse(results string) string {
	return `{"status": "OK", "results": [` + results + `]}`
}

func TestTextSearchParsesPlaces(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"html_attributions": ["Listings by Example"],
			"next_page_token": "token-123",
			"results": [{
				"place_id": "abc",
				"name": "Moe's Tavern",
				"icon": "https://example.com/bar.png",
				"rating": 4.2,
				"types": ["bar", "establishment"],
				"formatted_address": "742 Evergreen Terrace, Springfield",
				"geometry": {"location": {"lat": 39.78, "lng": -89.64}}
			}]
		}`))
	})

	result, err := client.TextSearch(context.Background(), SearchRequest{Query: "tavern"})
	if err != nil {
		t.Fatalf("TextSearch error: %v", err)
	}

	if gotQuery.Get("query") != "tavern" {
		t.Fatalf("expected query param, got %q", gotQuery.Get("query"))
	}
	if gotQuery.Get("key") != "AIzaTestKey1234567890" {
		t.Fatalf("expected api key param, got %q", gotQuery.Get("key"))
	}
	if gotQuery.Get("radius") != "100" {
		t.Fatalf("expected default radius 100, got %q", gotQuery.Get("radius"))
	}

	if len(result.Places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(result.Places))
	}
	place := result.Places[0]
	if place.ID != "abc" || place.Name != "Moe's Tavern" || place.Rating != 4.2 {
		t.Fatalf("unexpected place: %#v", place)
	}
	if place.Latitude != 39.78 || place.Longitude != -89.64 {
		t.Fatalf("unexpected coordinates: %v,%v", place.Latitude, place.Longitude)
	}
	if place.FormattedAddress != "742 Evergreen Terrace, Springfield" {
		t.Fatalf("unexpected address: %q", place.FormattedAddress)
	}
	if result.NextPageToken != "token-123" {
		t.Fatalf("unexpected page token: %q", result.NextPageToken)
	}
	if len(result.HTMLAttributions) != 1 {
		t.Fatalf("unexpected attributions: %#v", result.HTMLAttributions)
	}
}

func TestTextSearchClampsRadius(t *testing.T) {
	var gotRadius string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRadius = r.URL.Query().Get("radius")
		w.Write([]byte(okResponse("")))
	})

	if _, err := client.TextSearch(context.Background(), SearchRequest{Query: "cafe", Radius: 100000}); err != nil {
		t.Fatalf("TextSearch error: %v", err)
	}
	if gotRadius != "50000" {
		t.Fatalf("expected radius capped to 50000, got %q", gotRadius)
	}
}

func TestTextSearchRejectsOutOfBoundsCoordinates(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(okResponse("")))
	})

	lat, lng := 95.0, 10.0
	_, err := client.TextSearch(context.Background(), SearchRequest{
		Query:     "cafe",
		Latitude:  &lat,
		Longitude: &lng,
	})
	if !errors.Is(err, ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no network call for invalid coordinates, got %d", calls)
	}
}

func TestTextSearchCoordinatesLocation(t *testing.T) {
	var gotLocation string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLocation = r.URL.Query().Get("location")
		w.Write([]byte(okResponse("")))
	})

	lat, lng := 40.7, -74.0
	if _, err := client.TextSearch(context.Background(), SearchRequest{
		Query:     "cafe",
		Latitude:  &lat,
		Longitude: &lng,
	}); err != nil {
		t.Fatalf("TextSearch error: %v", err)
	}
	if gotLocation != "40.7,-74" {
		t.Fatalf("unexpected location param: %q", gotLocation)
	}
}

func TestResolveLocationFromText(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
		wantErr  bool
	}{
		{name: "comma separated", location: "40.7,-74.0", want: "40.7,-74.0"},
		{name: "space separated", location: "40.7 -74.0", want: "40.7,-74.0"},
		{name: "surrounding whitespace", location: "  40.7,-74.0  ", want: "40.7,-74.0"},
		{name: "latitude out of bounds", location: "95.0,-74.0", wantErr: true},
		{name: "latitude with extra leading digit", location: "140.7,-74.0", wantErr: true},
		{name: "longitude out of bounds", location: "40.0,181.0", wantErr: true},
		{name: "trailing text", location: "40.7,-74.0 Springfield", wantErr: true},
		{name: "not coordinates", location: "Springfield", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveLocation(nil, nil, tc.location)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidLocation) {
					t.Fatalf("expected ErrInvalidLocation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveLocation error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTextSearchOmitsUnsupportedAttributes(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(okResponse("")))
	})

	if _, err := client.TextSearch(context.Background(), SearchRequest{
		Query:    "cafe",
		Category: "spaceship",
		Language: "xx",
	}); err != nil {
		t.Fatalf("TextSearch error: %v", err)
	}
	if _, ok := gotQuery["type"]; ok {
		t.Fatalf("expected unsupported type to be omitted, got %q", gotQuery.Get("type"))
	}
	if _, ok := gotQuery["language"]; ok {
		t.Fatalf("expected unsupported language to be omitted, got %q", gotQuery.Get("language"))
	}

	if _, err := client.TextSearch(context.Background(), SearchRequest{
		Query:    "cafe",
		Category: "restaurant",
		Language: "en",
	}); err != nil {
		t.Fatalf("TextSearch error: %v", err)
	}
	if gotQuery.Get("type") != "restaurant" || gotQuery.Get("language") != "en" {
		t.Fatalf("expected supported attributes to pass through, got %v", gotQuery)
	}
}

func TestTextSearchZeroResults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	result, err := client.TextSearch(context.Background(), SearchRequest{Query: "nothing here"})
	if err != nil {
		t.Fatalf("expected ZERO_RESULTS to succeed, got %v", err)
	}
	if len(result.Places) != 0 {
		t.Fatalf("expected empty place list, got %#v", result.Places)
	}
}

func TestTextSearchFailureStatuses(t *testing.T) {
	for _, status := range []string{StatusOverQueryLimit, StatusRequestDenied, StatusInvalidRequest} {
		status := status
		t.Run(status, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "` + status + `", "results": []}`))
			})

			result, err := client.TextSearch(context.Background(), SearchRequest{Query: "cafe"})
			if !errors.Is(err, ErrRequestFailed) {
				t.Fatalf("expected ErrRequestFailed, got %v", err)
			}
			if result != nil {
				t.Fatalf("expected no results on failure, got %#v", result)
			}
		})
	}
}

func TestTextSearchTransportFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := client.TextSearch(context.Background(), SearchRequest{Query: "cafe"}); !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestTextSearchPageToken(t *testing.T) {
	var gotToken string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("pagetoken")
		w.Write([]byte(okResponse("")))
	})

	if _, err := client.TextSearch(context.Background(), SearchRequest{Query: "cafe", PageToken: "next-42"}); err != nil {
		t.Fatalf("TextSearch error: %v", err)
	}
	if gotToken != "next-42" {
		t.Fatalf("expected pagetoken to pass through, got %q", gotToken)
	}
}

func TestClientStringMasksKey(t *testing.T) {
	client := NewClient("AIzaSecretSecretSecret")
	repr := client.String()
	if strings.Contains(repr, "SecretSecretSecret") {
		t.Fatalf("client representation leaks the key: %s", repr)
	}
	if !strings.Contains(repr, "AIza") {
		t.Fatalf("expected masked prefix in representation, got %s", repr)
	}
}
