// Command clear-terms wipes the terms table. It is used to reset the
// store between load test runs.
//
// Usage:
//
//	clear-terms --yes
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	yes := flag.Bool("yes", false, "confirm deletion of every term record")
	flag.Parse()

	if !*yes {
		fmt.Fprintln(os.Stderr, "Refusing to delete without --yes")
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

	tag, err := pool.Exec(ctx, "DELETE FROM terms")
	if err != nil {
		log.Fatalf("delete terms: %v", err)
	}

	fmt.Printf("Deleted %d term records.\n", tag.RowsAffected())
}
