// Command generate_demo creates a names database filled with the sample names,
// for running `nameboard api` in demo mode against a fixed data set.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db] [-liked N]
package main

import (
	"flag"
	"os"

	"github.com/mrlokans/nameboard/internal/database"
	"github.com/mrlokans/nameboard/internal/database/names"
	"github.com/mrlokans/nameboard/internal/demo"
	"github.com/mrlokans/nameboard/internal/entities"
	"github.com/mrlokans/nameboard/internal/logging"
)

const defaultDemoDatabasePath = "./demo/names.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	liked := flag.Int("liked", 5, "like every Nth sample name (0 likes none)")
	flag.Parse()

	logger := logging.Setup("info")
	logger.Info("generating demo database", "path", *dbPath)

	// Start fresh so the data set is always the same
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		logger.Error("failed to remove existing demo database", "error", err)
		os.Exit(1)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		logger.Error("failed to create database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := names.NewRepository(db.DB)

	created, err := demo.Seed(repo)
	if err != nil {
		logger.Error("failed to seed names", "error", err)
		os.Exit(1)
	}

	all, err := repo.List()
	if err != nil {
		logger.Error("failed to list names", "error", err)
		os.Exit(1)
	}

	likedCount := 0
	for i, n := range all {
		if *liked <= 0 || (i+1)%*liked != 0 {
			continue
		}
		if _, err := repo.Update(n.ID, entities.LikedPatch(true)); err != nil {
			logger.Warn("failed to like name", "name", n.FirstName, "error", err)
			continue
		}
		likedCount++
	}

	logger.Info("demo database ready", "names", created, "liked", likedCount)
}
