package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fileboard-client/internal/adapters/httpapi"
	"fileboard-client/internal/adapters/terminal"
	"fileboard-client/internal/config"
	"fileboard-client/internal/domain"
	"fileboard-client/internal/usecases"
)

// ErrOperationFailed is returned after a failure was already shown to the user.
var ErrOperationFailed = errors.New("operation failed")

var ErrDirWithFiles = errors.New("--dir cannot be combined with file arguments")

type ctxKey string

const appCtxKey ctxKey = "app"

// deps are the pieces replaced in tests.
type deps struct {
	out       io.Writer
	doer      httpapi.Doer
	prompter  domain.TextPrompter
	confirmer domain.Confirmer
}

type app struct {
	cfg  *config.Config
	api  *httpapi.Client
	deps deps
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(deps{
		out:       os.Stdout,
		prompter:  terminal.NewPrompter(),
		confirmer: terminal.NewConfirmer(),
	})
}

func newRootCommand(d deps) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "fileboard",
		Short:         "fileboard uploads, creates, moves, trashes and lists files on a fileboard server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := applyFlagOverrides(cfg, cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			configureLogger(cfg.Log.Level)

			api, err := httpapi.NewClient(cfg.Client.Endpoint, d.doer)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"endpoint":     cfg.Client.Endpoint,
				"current_path": cfg.Client.CurrentPath,
			}).Debug("Client configured")

			ctx := context.WithValue(cmd.Context(), appCtxKey, &app{cfg: cfg, api: api, deps: d})
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetOut(d.out)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFile, "Path to the YAML config file")
	rootCmd.PersistentFlags().String("endpoint", "", "Base URL of the file API (overrides client.endpoint)")
	rootCmd.PersistentFlags().String("path", "", "Current directory on the server (overrides client.current_path)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(uploadCommand())
	rootCmd.AddCommand(mkdirCommand())
	rootCmd.AddCommand(moveCommand())
	rootCmd.AddCommand(deleteCommand())
	rootCmd.AddCommand(listCommand())

	return rootCmd
}

func applyFlagOverrides(cfg *config.Config, flags *pflag.FlagSet) error {
	overrides := map[string]*string{
		"endpoint":  &cfg.Client.Endpoint,
		"path":      &cfg.Client.CurrentPath,
		"log-level": &cfg.Log.Level,
	}
	for name, target := range overrides {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
		*target = value
	}
	return nil
}

func configureLogger(level string) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("invalid log level %q, keeping %s", level, logrus.GetLevel())
		return
	}
	logrus.SetLevel(lvl)
}

func getApp(cmd *cobra.Command) (*app, error) {
	if v := cmd.Context().Value(appCtxKey); v != nil {
		if a, ok := v.(*app); ok {
			return a, nil
		}
	}
	return nil, errors.New("client is not configured")
}

// useCase wires the operations with the given prompt answers.
func (a *app) useCase(prompter domain.TextPrompter, confirmer domain.Confirmer) *usecases.FileOpsUseCase {
	return usecases.NewFileOpsUseCase(a.api, usecases.Ports{
		Prompter:  prompter,
		Confirmer: confirmer,
		Notifier:  terminal.NewNotifier(a.deps.out, a.cfg.Messages),
		Refresher: terminal.NewReloader(a.api, a.cfg.Client.CurrentPath, a.cfg.Messages.Refreshed, a.deps.out),
	}, a.cfg)
}

func outcomeError(outcome domain.Outcome) error {
	switch outcome.Kind {
	case domain.OutcomeFailure, domain.OutcomeTransportError:
		return fmt.Errorf("%s: %w", outcome, ErrOperationFailed)
	default:
		return nil
	}
}
