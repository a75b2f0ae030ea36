// Command useradd provisions a portal user. Users have no self-registration
// path; this tool is how accounts get created.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"autolist/portal/internal/model"
	"autolist/portal/internal/store/postgres"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "user email (required)")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	st, err := postgres.NewStore(databaseURL)
	if err != nil {
		log.Fatalf("failed to init postgres store: %v", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := st.CreateUser(ctx, model.User{
		Email:        *email,
		Name:         *name,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", user.ID, user.Email)
}
