// Seed tool: bootstraps the unique indexes the settlement engine relies
// on and creates the first admin account. Run once against a fresh
// database, after the server has applied its automatic migrations.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Build connection string
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Connected to database successfully")

	// The settlement engine depends on these constraints: one bet per
	// (user, course), one inventory row per (user, item), one badge per
	// (user, type), unique emails.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_bet_user_course ON bets (user_id, course_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_item ON user_items (user_id, item_type)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_badge ON badges (user_id, type)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email)`,
	}
	for _, stmt := range indexes {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Failed to create index: %v", err)
		}
	}
	log.Println("Unique indexes ensured")

	// Create the admin account if it does not exist yet
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin creation")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	result, err := db.Exec(
		`INSERT INTO users (email, name, password, role, wallet_balance, current_streak, best_streak, created_at, updated_at)
		 VALUES ($1, $2, $3, 'ADMIN', 0, 0, 0, NOW(), NOW())
		 ON CONFLICT (email) DO NOTHING`,
		adminEmail, "Commissaire", string(hashed),
	)
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	if rows, _ := result.RowsAffected(); rows > 0 {
		log.Printf("Admin user created: %s", adminEmail)
	} else {
		log.Printf("Admin user already exists: %s", adminEmail)
	}
}
