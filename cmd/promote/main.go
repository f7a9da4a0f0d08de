// Command promote sets a user's role by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	userrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote")
	role := flag.String("role", string(domain.UserRoleAdmin), "role to assign (viewer, artist, moderator, admin)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin]")
		os.Exit(1)
	}

	target := domain.UserRole(strings.ToLower(strings.TrimSpace(*role)))
	if !target.IsValid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	normalized := strings.ToLower(strings.TrimSpace(*email))
	user, err := userrepo.New(pool).UpdateRoleByEmail(ctx, normalized, target)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", normalized)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q is now %s.\n", user.Email, user.Role)
}
