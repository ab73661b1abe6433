// Command devtoken prints a bearer token for a user id, signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"eventrsvp/config"
	"eventrsvp/internal/adapters/auth"
)

func main() {
	userID := flag.Int64("user", 0, "user id to put in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "devtoken: -user must be a positive id")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}

	token, err := auth.NewJWTIssuer(cfg.JWTSecret, *ttl).Issue(*userID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
