package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	baseURL       = "https://maps.googleapis.com/maps/api/place"
	textSearchURL = baseURL + "/textsearch/json"

	// MaxRadius is the largest search radius the service accepts, in meters.
	// Larger requested values are silently capped.
	MaxRadius = 50000
	// DefaultRadius applies when a request does not set a radius.
	DefaultRadius = 100

	maxAbsLatitude  = 90
	maxAbsLongitude = 180
)

var (
	// ErrRequestFailed signals a transport failure or a failure status
	// reported by the service.
	ErrRequestFailed = errors.New("places request failed")
	// ErrInvalidLocation indicates coordinates outside the valid bounds or
	// an unparseable location string.
	ErrInvalidLocation = errors.New("invalid location")
)

// Application-level response statuses. OK and ZERO_RESULTS are both success;
// the rest abort the call.
const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
)

// Client performs text searches against the Google Places API.
type Client struct {
	apiKey     string
	searchURL  string
	httpClient *http.Client
}

// NewClient creates a Places client using the given API key. The key is
// loaded once here and masked in any string representation.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:    apiKey,
		searchURL: textSearchURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// String masks the API key so client representations are safe to log.
func (c *Client) String() string {
	return fmt.Sprintf("places.Client{key: %s}", maskKey(c.apiKey))
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}

// SearchRequest describes one text search. Latitude and Longitude take
// precedence over Location when both are set; Category and Language pass
// through only when on the service's supported lists.
type SearchRequest struct {
	Query     string
	Latitude  *float64
	Longitude *float64
	Location  string
	Radius    int
	Category  string
	Language  string
	PageToken string
}

// Place is one result record from a search. Read-only and never persisted
// verbatim; consumed to prefill a contact's direction field.
type Place struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Rating           float64  `json:"rating,omitempty"`
	Types            []string `json:"types,omitempty"`
	FormattedAddress string   `json:"formattedAddress,omitempty"`
	IconURL          string   `json:"iconUrl,omitempty"`
}

// SearchResult carries the parsed places plus the attribution strings and
// pagination token of the response. NextPageToken, when present, can be fed
// back through SearchRequest.PageToken to continue.
type SearchResult struct {
	Places           []Place  `json:"places"`
	HTMLAttributions []string `json:"htmlAttributions,omitempty"`
	NextPageToken    string   `json:"nextPageToken,omitempty"`
}

type searchResponse struct {
	Status           string        `json:"status"`
	Results          []placeResult `json:"results"`
	HTMLAttributions []string      `json:"html_attributions"`
	NextPageToken    string        `json:"next_page_token"`
}

type placeResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Icon             string   `json:"icon"`
	Rating           float64  `json:"rating"`
	Types            []string `json:"types"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// TextSearch issues a single synchronous search call. ZERO_RESULTS is a
// valid outcome and yields an empty place list; the failure statuses abort
// the call with ErrRequestFailed.
func (c *Client) TextSearch(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	params, err := c.requestParams(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s - %s", ErrRequestFailed, resp.Status, string(body))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	switch decoded.Status {
	case StatusOK, StatusZeroResults:
	default:
		log.Warn().Str("status", decoded.Status).Msg("places search rejected")
		return nil, fmt.Errorf("%w: status %s", ErrRequestFailed, decoded.Status)
	}

	result := &SearchResult{
		Places:           make([]Place, 0, len(decoded.Results)),
		HTMLAttributions: decoded.HTMLAttributions,
		NextPageToken:    decoded.NextPageToken,
	}
	for _, pr := range decoded.Results {
		result.Places = append(result.Places, convertPlace(pr))
	}
	return result, nil
}

// requestParams assembles the outgoing query string. Location validation
// happens here, before any network call.
func (c *Client) requestParams(req SearchRequest) (url.Values, error) {
	location, err := resolveLocation(req.Latitude, req.Longitude, req.Location)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	if req.Query != "" {
		params.Set("query", req.Query)
	}
	if location != "" {
		params.Set("location", location)
	}
	params.Set("radius", strconv.Itoa(clampRadius(req.Radius)))
	if req.Category != "" {
		if supportedTypes[req.Category] {
			params.Set("type", req.Category)
		} else {
			log.Debug().Str("type", req.Category).Msg("omitting unsupported place type")
		}
	}
	if req.Language != "" {
		if supportedLanguages[req.Language] {
			params.Set("language", req.Language)
		} else {
			log.Debug().Str("language", req.Language).Msg("omitting unsupported language")
		}
	}
	if req.PageToken != "" {
		params.Set("pagetoken", req.PageToken)
	}
	params.Set("key", c.apiKey)

	return params, nil
}

// Free-text locations look like "<lat>,<lon>" with comma, whitespace, or
// dash separators. Anchored so the whole trimmed string must be a
// coordinate pair; "140.7,-74.0" must not slip through as "40.7,-74.0".
var locationPattern = regexp.MustCompile(`^(-?\d{1,2}(?:\.\d+)?)(?:\s+|\s*,\s*|-)(-?\d{1,3}(?:\.\d+)?)$`)

func resolveLocation(latitude, longitude *float64, location string) (string, error) {
	if latitude != nil && longitude != nil {
		if !validCoordinates(*latitude, *longitude) {
			return "", fmt.Errorf("%w: coordinates %v,%v out of bounds", ErrInvalidLocation, *latitude, *longitude)
		}
		return formatCoordinate(*latitude) + "," + formatCoordinate(*longitude), nil
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return "", nil
	}

	match := locationPattern.FindStringSubmatch(location)
	if match == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}

	lat, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	lng, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	if !validCoordinates(lat, lng) {
		return "", fmt.Errorf("%w: coordinates %v,%v out of bounds", ErrInvalidLocation, lat, lng)
	}

	return match[1] + "," + match[2], nil
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func validCoordinates(latitude, longitude float64) bool {
	return math.Abs(latitude) <= maxAbsLatitude && math.Abs(longitude) <= maxAbsLongitude
}

func clampRadius(radius int) int {
	switch {
	case radius <= 0:
		return DefaultRadius
	case radius > MaxRadius:
		return MaxRadius
	default:
		return radius
	}
}

func convertPlace(pr placeResult) Place {
	return Place{
		ID:               pr.PlaceID,
		Name:             pr.Name,
		Latitude:         pr.Geometry.Location.Lat,
		Longitude:        pr.Geometry.Location.Lng,
		Rating:           pr.Rating,
		Types:            pr.Types,
		FormattedAddress: pr.FormattedAddress,
		IconURL:          pr.Icon,
	}
}
