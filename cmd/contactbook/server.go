package main

import (
	"net/http"

	"contactbook/internal/app/contacts"
	"contactbook/internal/httpapi"
	"contactbook/internal/places"
	"contactbook/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	contactSvc := contacts.New(dataStore)
	placesClient := places.NewClient(cfg.PlacesAPIKey)

	handler := httpapi.New(contactSvc, placesClient).Routes()
	handler = httpapi.CORS(cfg.AllowedOrigins)(handler)
	handler = httpapi.RequestLogging(handler)
	handler = httpapi.Recovery(handler)
	return handler
}
