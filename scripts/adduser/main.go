// Creates a credential record. The server has no registration endpoint;
// users are provisioned out of band with this tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"emonitor-backend/internal/db"
)

func main() {
	connString := flag.String("database-url", os.Getenv("DATABASE_URL"), "Postgres DSN")
	migrationsPath := flag.String("migrations", "internal/db/migrations", "migrations directory")
	username := flag.String("username", "", "username (unique)")
	password := flag.String("password", "", "password")
	flag.Parse()

	if *connString == "" || *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -database-url <dsn> -username <name> -password <pass>")
		os.Exit(2)
	}

	ctx := context.Background()
	store, err := db.Init(ctx, db.Config{
		ConnString:     *connString,
		MigrationsPath: *migrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	if err := store.CreateUser(ctx, db.User{Username: *username, Password: *password}); err != nil {
		panic(err)
	}
	fmt.Println("User created:", *username)
}
