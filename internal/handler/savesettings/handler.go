package savesettings

import (
	"errors"
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

// SaveSettings merges the posted fields into the settings singleton.
// Fields not present in the body keep their stored values. Admin only.
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var fields map[string]any
	if err := httpjson.Decode(r, &fields); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(fields) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "no fields to save")
		return
	}

	if err := h.store.SaveSiteSettings(ctx, fields); err != nil {
		if errors.Is(err, catalog.ErrNotConfigured) {
			httpjson.Error(w, http.StatusServiceUnavailable, "no backing store configured, demo content is read-only")
			return
		}
		slog.ErrorContext(ctx, "savesettings: saving site settings", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	settings, err := h.store.SiteSettings(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "savesettings: reloading site settings", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to reload settings")
		return
	}
	httpjson.Write(w, http.StatusOK, settings)
}
