package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/cli"
	"github.com/alexanderramin/dayflow/internal/db"
	"github.com/alexanderramin/dayflow/internal/llm"
	"github.com/alexanderramin/dayflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Chat endpoint
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOllamaClient(llmCfg, observer)

	// The session store lives in memory for the life of the process.
	database, err := db.OpenDB()
	if err != nil {
		return err
	}
	defer database.Close()

	ws := service.NewWorkspace(
		agent.NewHandler(client),
		db.NewSQLiteUnitOfWork(database),
		service.ObserverFromEnv(os.Stderr),
	)

	app := &cli.App{
		Workspace: ws,
		Agent:     client,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
