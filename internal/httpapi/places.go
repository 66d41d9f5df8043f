package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"contactbook/internal/places"
)

func (s *Server) handleSearchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := places.SearchRequest{
		Query:     query.Get("query"),
		Location:  query.Get("location"),
		Category:  query.Get("type"),
		Language:  query.Get("language"),
		PageToken: query.Get("pagetoken"),
	}

	if raw := query.Get("radius"); raw != "" {
		radius, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid radius"})
			return
		}
		req.Radius = radius
	}

	if rawLat, rawLng := query.Get("lat"), query.Get("lng"); rawLat != "" || rawLng != "" {
		lat, latErr := strconv.ParseFloat(rawLat, 64)
		lng, lngErr := strconv.ParseFloat(rawLng, 64)
		if latErr != nil || lngErr != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid coordinates"})
			return
		}
		req.Latitude = &lat
		req.Longitude = &lng
	}

	result, err := s.places.TextSearch(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, places.ErrInvalidLocation):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, places.ErrRequestFailed):
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		default:
			serverError(w, r, err, "place search failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
