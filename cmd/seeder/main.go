package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	// Create dummy players to use in matches
	dummyNames := []string{"Seeder Player A", "Seeder Player B", "Seeder Player C", "Seeder Player D"}
	playerIDs := make([]int64, 0, len(dummyNames))
	for _, name := range dummyNames {
		if _, err := db.Exec("INSERT OR IGNORE INTO players (name) VALUES (?)", name); err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", name, err)
		}
		var id int64
		if err := db.QueryRow("SELECT id FROM players WHERE name = ?", name).Scan(&id); err != nil {
			log.Fatalf("Failed to read dummy player id for %s: %s", name, err)
		}
		playerIDs = append(playerIDs, id)
	}
	log.Info("Ensured dummy players exist.")

	// One active season to attach the matches to
	seasonStart := time.Now().AddDate(0, -3, 0).Format("2006-01-02")
	res, err := db.Exec(
		"INSERT INTO seasons (name, start_date, is_active, auto_end) VALUES (?, ?, 1, 0)",
		fmt.Sprintf("Seeded Season %d", time.Now().Unix()), seasonStart,
	)
	if err != nil {
		log.Fatalf("Failed to insert season: %s", err)
	}
	seasonID, err := res.LastInsertId()
	if err != nil {
		log.Fatalf("Failed to read season id: %s", err)
	}
	log.Info("Created seeded season", "seasonID", seasonID)

	const batchSize = 100 // Insert 100 matches at a time
	const numMatches = 10000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*10) // 10 columns per match

	for i := 0; i < numMatches; i++ {
		playedOn := time.Now().Add(-time.Duration(rand.Intn(90*24)) * time.Hour).Format("2006-01-02")
		score1, score2 := 21, 10+rand.Intn(10)
		winningTeam := 1
		if rand.Intn(2) == 0 {
			score1, score2 = score2, score1
			winningTeam = 2
		}

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			seasonID,
			playedOn,
			"duo",
			playerIDs[0],
			playerIDs[1],
			playerIDs[2],
			playerIDs[3],
			score1,
			score2,
			winningTeam,
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(
				"INSERT INTO matches (season_id, played_on, match_type, player1_id, player2_id, player3_id, player4_id, score_team1, score_team2, winning_team) VALUES %s",
				strings.Join(valueStrings, ","),
			)
			if _, err := tx.Exec(stmt, valueArgs...); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to insert match batch: %s", err)
			}
			valueStrings = valueStrings[:0]
			valueArgs = valueArgs[:0]
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	log.Info("Seeding complete.", "matches", numMatches, "duration", time.Since(startTime))
}
