package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

const usage = `usage: migrate [-limit N] up|down|status

  up      apply pending migrations (all unless -limit is set)
  down    roll back migrations (one unless -limit is set)
  status  list migrations and when they were applied
`

func main() {
	limit := flag.Int("limit", 0, "maximum number of migrations to apply or roll back")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	switch cmd := flag.Arg(0); cmd {
	case "up":
		n, err := database.Migrate(db, migrate.Up, *limit)
		if err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Int("count", n))

	case "down":
		steps := *limit
		if steps == 0 {
			steps = 1
		}
		n, err := database.Migrate(db, migrate.Down, steps)
		if err != nil {
			logger.Fatal("failed to roll back migrations", zap.Error(err))
		}
		logger.Info("migrations rolled back", zap.Int("count", n))

	case "status":
		if err := printStatus(db); err != nil {
			logger.Fatal("failed to read migration status", zap.Error(err))
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
}

// printStatus lists every known migration and when it was applied
func printStatus(db *gorm.DB) error {
	known, err := database.MigrationSource().FindMigrations()
	if err != nil {
		return err
	}
	records, err := database.MigrationStatus(db)
	if err != nil {
		return err
	}

	applied := make(map[string]time.Time, len(records))
	for _, r := range records {
		applied[r.Id] = r.AppliedAt
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MIGRATION\tAPPLIED")
	for _, m := range known {
		at, ok := applied[m.Id]
		status := "pending"
		if ok {
			status = at.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", m.Id, status)
	}
	return w.Flush()
}
