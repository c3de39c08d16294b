// Command issue_token mints a bearer token for local development. Sign-in is handled by an
// external identity provider in deployed environments.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/crm_pos_app/internal/platform/config"
	"github.com/SscSPs/crm_pos_app/internal/utils"
)

func main() {
	userID := flag.String("user", "", "user ID to put in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: issue_token -user <user-id> [-ttl 24h]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction {
		slog.Error("Refusing to mint development tokens in production")
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(*userID, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		slog.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
