// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/catalog"
	"github.com/chefrecipes/server/internal/config"
	"github.com/chefrecipes/server/internal/entitlement"
	"github.com/chefrecipes/server/internal/handler/createcheckout"
	"github.com/chefrecipes/server/internal/handler/deleterecipe"
	"github.com/chefrecipes/server/internal/handler/getprofile"
	"github.com/chefrecipes/server/internal/handler/getrecipe"
	"github.com/chefrecipes/server/internal/handler/getsettings"
	"github.com/chefrecipes/server/internal/handler/listrecipes"
	"github.com/chefrecipes/server/internal/handler/saverecipe"
	"github.com/chefrecipes/server/internal/handler/savesettings"
	"github.com/chefrecipes/server/internal/handler/stripewebhook"
	"github.com/chefrecipes/server/internal/httpjson"
	"github.com/chefrecipes/server/internal/payment"
	"github.com/chefrecipes/server/internal/users"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	adminEmails := auth.ParseAllowList(conf.Admin.EmailsCSV)
	configured := conf.Google.Project != ""

	var catalogStore catalog.Store
	var purchaseStore entitlement.Store
	var userStore users.Store
	var resolver auth.UserResolver

	if configured {
		fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
		if err != nil {
			return fmt.Errorf("main: create firebase app: %w", err)
		}

		fbAuth, err := fbApp.Auth(ctx)
		if err != nil {
			return fmt.Errorf("main: create firebase auth client: %w", err)
		}

		firestore, err := fbApp.Firestore(ctx)
		if err != nil {
			return fmt.Errorf("main: create firestore client: %w", err)
		}
		defer func() {
			if err := firestore.Close(); err != nil {
				slog.ErrorContext(ctx, "main: close firestore client", "error", err)
			}
		}()

		catalogStore = catalog.NewFirestoreStore(firestore)
		purchaseStore = entitlement.NewFirestoreStore(firestore)
		userStore = users.NewFirestoreStore(firestore)
		resolver = auth.NewFirebaseResolver(fbAuth)

		fbMW := firebaseauth.NewMiddleware(fbAuth)
		principalMW := auth.Middleware(adminEmails)
		mux.Use(middleware.Maybe(func(h http.Handler) http.Handler {
			return fbMW(principalMW(h))
		}, requiresAuth))
	} else {
		slog.WarnContext(ctx, "main: no google project configured, serving demo catalog without sign-in")
		catalogStore = catalog.NewDemoStore()
		purchaseStore = entitlement.NewDisabledStore()
	}

	checker := entitlement.NewChecker(purchaseStore, adminEmails)

	mux.Get("/api/recipes", listrecipes.NewHandler(catalogStore).ListRecipes)
	mux.Get("/api/recipes/{recipeID}", getrecipe.NewHandler(catalogStore, checker).GetRecipe)
	mux.Get("/api/settings", getsettings.NewHandler(catalogStore).GetSettings)

	if !configured {
		mux.Handle("/api/me", notConfigured())
		mux.Handle("/api/checkout/sessions", notConfigured())
		mux.Handle("/api/webhooks/stripe", notConfigured())
		mux.Handle("/api/admin/*", notConfigured())

		if err := server.Start(ctx, s); err != nil {
			return fmt.Errorf("main: starting server: %w", err)
		}
		return nil
	}

	mux.Get("/api/me", getprofile.NewHandler(userStore, purchaseStore, checker).GetProfile)

	if conf.Stripe.SecretKey != "" {
		sessions := payment.NewCheckoutSessions(conf.Stripe.SecretKey)
		mux.Post("/api/checkout/sessions",
			createcheckout.NewHandler(sessions, conf.Site.BaseURL).CreateCheckout)
		mux.Post("/api/webhooks/stripe",
			stripewebhook.NewHandler(conf.Stripe.WebhookSecret, resolver, purchaseStore).HandleWebhook)
	} else {
		slog.WarnContext(ctx, "main: no stripe secret key configured, purchases disabled")
		mux.Handle("/api/checkout/sessions", notConfigured())
		mux.Handle("/api/webhooks/stripe", notConfigured())
	}

	mux.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/recipes", saverecipe.NewHandler(catalogStore).SaveRecipe)
		r.Delete("/recipes/{recipeID}", deleterecipe.NewHandler(catalogStore).DeleteRecipe)
		r.Post("/settings", savesettings.NewHandler(catalogStore).SaveSettings)
	})

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}

// requiresAuth decides whether the Firebase auth middleware runs for a
// request. Webhooks authenticate by signature instead, and catalog reads
// are public, though a provided token is still verified so admins see
// unpublished content and owners their videos.
func requiresAuth(r *http.Request) bool {
	switch {
	case strings.HasPrefix(r.URL.Path, "/internal/"):
		return false
	case strings.HasPrefix(r.URL.Path, "/api/webhooks/"):
		return false
	case r.Method == http.MethodGet &&
		(r.URL.Path == "/api/settings" || r.URL.Path == "/api/recipes" ||
			strings.HasPrefix(r.URL.Path, "/api/recipes/")):
		return r.Header.Get("Authorization") != ""
	default:
		return true
	}
}

func notConfigured() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Error(w, http.StatusServiceUnavailable,
			"no backing store configured, see SETUP.md to connect Firebase and Stripe")
	})
}
