package api

import (
	"time"

	"github.com/thegambler1/qmdigital/auth"
	"github.com/thegambler1/qmdigital/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(storage database.Storage, authenticator *auth.Authenticator, notifier contactNotifier, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		portfolioHandler: newPortfolioHandler(storage),
		productHandler:   newProductHandler(storage),
		contactHandler:   newContactHandler(storage, notifier),
		settingsHandler:  newSettingsHandler(storage),
		adminAuthHandler: newAdminAuthHandler(authenticator),
		healthHandler:    newHealthHandler(storage, startupTime),
	}
}
