package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// Deletes expired admin sessions. Meant to run from a cron entry; end-user
// sessions are stateless cookies and need no pruning.
func main() {
	_ = godotenv.Load(".env.local")

	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres connection string")
	dryRun := flag.Bool("dry-run", false, "report what would be deleted without deleting")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer db.Close()

	if *dryRun {
		var count int
		err := db.QueryRow(`SELECT COUNT(*) FROM app_admin.sessions WHERE expires_at < NOW()`).Scan(&count)
		if err != nil {
			log.Fatalf("Query error: %v", err)
		}
		log.Printf("Would delete %d expired admin session(s)", count)
		return
	}

	res, err := db.Exec(`DELETE FROM app_admin.sessions WHERE expires_at < NOW()`)
	if err != nil {
		log.Fatalf("Delete error: %v", err)
	}

	deleted, _ := res.RowsAffected()
	log.Printf("Deleted %d expired admin session(s)", deleted)
}
