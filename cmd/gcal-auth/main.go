// Command gcal-auth authorizes calendar export for OAuth desktop credentials.
// It reads google_calendar.credentials_path from the service config, prints
// the consent URL and stores the resulting token at google_calendar.token_path.
//
// Usage:
//
//	go run ./cmd/gcal-auth [credentials.json]
package main

import (
	"context"
	"fmt"
	"os"

	"caretask/config"
	"caretask/pkg/gcalendar"
	"caretask/pkg/log"
)

func main() {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Mode: "development", Encoding: "console", ColorEnabled: true})

	credsPath, tokenPath := "google-credentials.json", gcalendar.DefaultTokenPath
	if cfg, err := config.Load(); err == nil {
		if cfg.GoogleCalendar.CredentialsPath != "" {
			credsPath = cfg.GoogleCalendar.CredentialsPath
		}
		if cfg.GoogleCalendar.TokenPath != "" {
			tokenPath = cfg.GoogleCalendar.TokenPath
		}
	} else {
		logger.Warnf(ctx, "Config not loaded, using defaults: %v", err)
	}
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	oauthCfg, err := gcalendar.OAuthConfig(data)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials %q, expected an OAuth desktop client: %v", credsPath, err)
	}

	fmt.Println("Open this URL, sign in and approve calendar access:")
	fmt.Println()
	fmt.Println(gcalendar.AuthCodeURL(oauthCfg, "caretask"))
	fmt.Println()
	fmt.Print("Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}
	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		logger.Fatalf(ctx, "Failed to save token: %v", err)
	}

	logger.Infof(ctx, "Token saved to %s, restart the API to enable calendar export", tokenPath)
}
