package getsettings

import (
	"log/slog"
	"net/http"

	"github.com/chefrecipes/server/internal/catalog"
	"github.com/chefrecipes/server/internal/httpjson"
)

func NewHandler(store catalog.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store catalog.Store
}

// GetSettings returns the site settings singleton, created lazily from
// defaults.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.store.SiteSettings(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "getsettings: getting site settings", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to get settings")
		return
	}

	httpjson.Write(w, http.StatusOK, settings)
}
