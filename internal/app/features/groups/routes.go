// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// CREATE
	r.Post("/", h.HandleCreateGroup)

	// LIST
	r.Get("/", h.HandleListGroups)

	// VIEW
	r.Get("/{id}", h.HandleGetGroup)

	// RENAME
	r.Put("/{id}", h.HandleRenameGroup)

	// DELETE
	r.Delete("/{id}", h.HandleDeleteGroup)

	return r
}
