package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Bootstraps a staff account directly in the database. Staff accounts
// cannot be created through the public API.
func main() {
	email := flag.String("email", "", "staff account email")
	password := flag.String("password", "", "staff account password")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("PG_USER"), os.Getenv("PG_PASSWORD"),
		os.Getenv("PG_HOST"), os.Getenv("PG_PORT"), os.Getenv("PG_DB"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(
		`INSERT INTO users (email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, 'staff', NOW(), NOW()) RETURNING id`,
		*email, string(hash),
	).Scan(&id)
	if err != nil {
		log.Fatalf("insert staff user: %v", err)
	}

	fmt.Println("New staff user:", id)
}
