package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fittrack/fittrack/internal/catalog"
	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/db"
	"github.com/fittrack/fittrack/internal/logging"

	log "github.com/sirupsen/logrus"
)

// seeds the exercise catalog from the free-exercise-db CSV dump
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	csvPath := flag.String("csv", "./exercises.csv", "path for the exercise catalog CSV dump")
	timeout := flag.Duration("timeout", 5*time.Minute, "import timeout")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		receivedSig := <-chOsInterrupt
		log.Warnf("signal [%s] received, aborting import ...", receivedSig)
		cancel()
	}()

	if err := run(ctx, cfg, *csvPath); err != nil {
		log.Fatalf("seed exercise catalog: %s", err)
	}
}

func run(ctx context.Context, cfg *config.Config, csvPath string) error {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}

	csvFile, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer func() {
		if err := csvFile.Close(); err != nil {
			log.Warnf("close csv file: %s", err)
		}
	}()

	importer := catalog.NewImporter(catalog.NewRepo(dbPool))
	imported, skipped, err := importer.ImportCSV(ctx, csvFile)
	if err != nil {
		return err
	}

	log.Infof("exercise catalog seeded: %d imported, %d skipped", imported, skipped)
	return nil
}
