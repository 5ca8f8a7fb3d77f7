package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/vgnl/procesflow/pkg/log"
	"github.com/vgnl/procesflow/pkg/persistence/file"
	"github.com/vgnl/procesflow/pkg/store"
)

const defaultPort = 9080

func main() {
	cmd := &cli.Command{
		Name:                  "procesflow-api",
		Usage:                 "Edit and archive process canvasses and decision flowcharts",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Directory holding the persisted editor documents",
				Value:   "./data",
				Sources: cli.EnvVars("DATA_DIR"),
			},
			&cli.DurationFlag{
				Name:    "autosave-debounce",
				Usage:   "Quiet period before a mutated flowchart is persisted",
				Value:   store.DefaultAutosaveDebounce,
				Sources: cli.EnvVars("AUTOSAVE_DEBOUNCE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("api")

			logger.InfoContext(ctx, "Initializing Procesflow API")

			persistence := file.NewPersistence(command.String("data-dir"), logger)

			defer func() {
				if err := persistence.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			api := NewAPI(logger, persistence, command.Duration("autosave-debounce"))
			defer api.Close()

			if err := api.Start(ctx, command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)

				return err
			}

			return nil
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
