package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thegambler1/qmdigital/database"
	"github.com/thegambler1/qmdigital/models"
)

// contactNotifier is told about every stored contact; it must not block
type contactNotifier interface {
	NotifyAsync(contact models.Contact)
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   database.Storage
	notifier  contactNotifier
}

func newContactHandler(storage database.Storage, notifier contactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
		notifier:  notifier,
	}
}

// createContact stores a contact form submission. createdAt is always server time.
// @Router /api/contact [post]
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ContactInput
		if err := decodeAndValidate(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.storage.CreateContact(r.Context(), in.Value())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		h.logger.Info().Str("id", contact.ID).Str("projectType", contact.ProjectType).Msg("contact form submitted")
		if h.notifier != nil {
			h.notifier.NotifyAsync(*contact)
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, ContactResponse{
			Message: "Contact form submitted successfully",
			Contact: *contact,
		})
	}
}

// @Router /api/contacts [get]
func (h contactHandler) getContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.storage.ListContacts(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		if contacts == nil {
			contacts = []models.Contact{}
		}
		h.responder.WriteJSON(w, contacts)
	}
}
