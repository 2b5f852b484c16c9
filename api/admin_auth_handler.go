package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thegambler1/qmdigital/auth"
	"github.com/thegambler1/qmdigital/errs"
)

type adminAuthHandler struct {
	responder     Responder
	logger        zerolog.Logger
	authenticator *auth.Authenticator
}

func newAdminAuthHandler(authenticator *auth.Authenticator) adminAuthHandler {
	logger := log.With().Str("handlerName", "adminAuthHandler").Logger()

	return adminAuthHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		authenticator: authenticator,
	}
}

// login exchanges the admin password for a bearer token
// @Router /api/admin/login [post]
func (h adminAuthHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authenticator.Enabled() {
			h.responder.WriteError(w, errs.NewServiceUnavailableError("admin authentication is not configured"))
			return
		}

		var req LoginRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, expiresAt, err := h.authenticator.Login(req.Password)
		switch {
		case errors.Is(err, auth.ErrBadCredentials):
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login")
			h.responder.WriteError(w, errs.NewBadPasswordError())
			return
		case err != nil:
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue admin token", err))
			return
		}

		h.responder.WriteJSON(w, LoginResponse{Token: token, ExpiresAt: expiresAt})
	}
}
