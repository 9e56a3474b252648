// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// CREATE (schedules enrichment out-of-band)
	r.Post("/", h.HandleCreateUser)

	// LIST
	r.Get("/", h.HandleListUsers)

	// VIEW
	r.Get("/{id}", h.HandleGetUser)

	// RENAME (gated on current membership)
	r.Put("/{id}", h.HandleRenameUser)

	// DELETE
	r.Delete("/{id}", h.HandleDeleteUser)

	return r
}
