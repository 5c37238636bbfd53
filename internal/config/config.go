// Copyright (c) Choko (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Stripe struct {
	// SecretKey is the Stripe API secret key. Payments are disabled when
	// empty.
	SecretKey string `koanf:"secretkey"`

	// WebhookSecret is the signing secret of the Stripe webhook endpoint.
	WebhookSecret string `koanf:"webhooksecret"`
}

type Admin struct {
	// EmailsCSV is a comma-separated list of emails granted admin access,
	// matched case-insensitively.
	EmailsCSV string `koanf:"emailscsv"`
}

type Site struct {
	// BaseURL is the public base URL of the storefront, used for checkout
	// redirect targets, e.g. https://chefrecipes.example.com.
	BaseURL string `koanf:"baseurl"`
}

type Config struct {
	config.Common

	// Stripe is the configuration for the payment provider.
	Stripe Stripe `koanf:"stripe"`

	// Admin is the configuration for admin authorization.
	Admin Admin `koanf:"admin"`

	// Site is the configuration for the public site.
	Site Site `koanf:"site"`
}
