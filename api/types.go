package api

import (
	"time"

	"github.com/thegambler1/qmdigital/errs"
	"github.com/thegambler1/qmdigital/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	portfolioHandler portfolioHandler
	productHandler   productHandler
	contactHandler   contactHandler
	settingsHandler  settingsHandler
	adminAuthHandler adminAuthHandler
	healthHandler    healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Portfolio item not found"`
	Message string `json:"message" example:"Portfolio item not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"authorization"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// ValidationErrorResponse lists every rejected field of a request body
type ValidationErrorResponse struct {
	Error  string            `json:"error" example:"Validation error"`
	Status string            `json:"status" example:"validation_error"`
	Errors []errs.FieldError `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PortfolioItemResponse struct {
	Message string               `json:"message"`
	Item    models.PortfolioItem `json:"item"`
}

type ProductResponse struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

type ContactResponse struct {
	Message string         `json:"message"`
	Contact models.Contact `json:"contact"`
}

type SiteSettingsResponse struct {
	Message  string              `json:"message"`
	Settings models.SiteSettings `json:"settings"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Uptime  string `json:"uptime"`
}
