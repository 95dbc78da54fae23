// Command token mints an access token for local development, signed with
// the configured secret so the server accepts it.
//
//	go run ./cmd/token -user 1 -role admin
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/heartmarshall/poetic-threads/internal/auth"
	"github.com/heartmarshall/poetic-threads/internal/config"
	"github.com/heartmarshall/poetic-threads/internal/domain"
)

func main() {
	userID := flag.Int64("user", 0, "user id (subject)")
	role := flag.String("role", domain.UserRoleUser.String(), "role claim: user or admin")
	flag.Parse()

	if !domain.UserRole(*role).IsValid() {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)
	token, err := manager.GenerateAccessToken(*userID, *role)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
