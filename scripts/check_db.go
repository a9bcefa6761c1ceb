// Connectivity check for the storefront database. Run with:
//
//	go run scripts/check_db.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	err = conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	var userCount, orderCount int
	_ = conn.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&userCount)
	_ = conn.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&orderCount)

	fmt.Printf("Successfully connected to database: %s\n", dbName)
	fmt.Printf("Users: %d, archived orders: %d\n", userCount, orderCount)
}
