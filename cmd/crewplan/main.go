package main

import (
	"fmt"
	"os"

	"github.com/NamiSwwaan/crewplan/internal/cli"
	"github.com/NamiSwwaan/crewplan/internal/config"
	"github.com/NamiSwwaan/crewplan/internal/db"
	"github.com/NamiSwwaan/crewplan/internal/intelligence"
	"github.com/NamiSwwaan/crewplan/internal/llm"
	"github.com/NamiSwwaan/crewplan/internal/repository"
	"github.com/NamiSwwaan/crewplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	employeeStore := repository.NewEmployeeStore(cfg.EmployeesFile)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, observer)
	retryer := llm.NewRetryer(cfg.MaxRetries, cfg.MinWait, cfg.MaxWait)

	workflowSvc := service.New(
		cfg,
		intelligence.NewAnalystService(llmClient, retryer),
		intelligence.NewEstimatorService(llmClient, retryer),
		intelligence.NewEvaluationService(llmClient, retryer),
		employeeStore,
		sessionRepo,
	)

	app := &cli.App{
		Config:   cfg,
		Workflow: workflowSvc,
		Sessions: sessionRepo,
	}

	// The plan wizard is terminal-only.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
