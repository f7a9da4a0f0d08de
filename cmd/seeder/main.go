// Command seeder fills a database with demo accounts, approved films with
// credits, and a few donations recorded through the ledger. Re-running it
// is safe: existing rows are skipped and donations replay by idempotency key.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        count what would be written without touching the DB
//	--seeder-config  path to seeder YAML config file
//	--dataset        path to a YAML dataset replacing the built-in one
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/stagehype-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/audit"
	donationrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/donation"
	filmrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/film"
	userrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/stagehype-backend/internal/app"
	"github.com/heartmarshall/stagehype-backend/internal/app/seeder"
	"github.com/heartmarshall/stagehype-backend/internal/config"
	"github.com/heartmarshall/stagehype-backend/internal/metrics"
	"github.com/heartmarshall/stagehype-backend/internal/service/catalog"
	"github.com/heartmarshall/stagehype-backend/internal/service/ledger"
)

// Compile-time interface assertions.
var (
	_ seeder.UserRepo         = (*userrepo.Repo)(nil)
	_ seeder.FilmRepo         = (*filmrepo.Repo)(nil)
	_ seeder.DonationRecorder = (*ledger.Service)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "count rows without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	datasetFlag := flag.String("dataset", "", "path to YAML dataset (default: built-in demo data)")
	flag.Parse()

	// App config (DB connection, ledger settings); also applies .env.
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *datasetFlag != "" {
		seederCfg.DatasetPath = *datasetFlag
	}

	dataset, err := seeder.LoadDataset(seederCfg.DatasetPath)
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	films := filmrepo.New(pool)

	catalogService := catalog.NewService(logger, films, users, auditrepo.New(pool), txm)
	ledgerService := ledger.NewService(logger, donationrepo.New(pool), users, catalogService, metrics.New(), appCfg.Ledger)

	pipeline := seeder.NewPipeline(logger, users, films, ledgerService, txm, *seederCfg, dataset)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
