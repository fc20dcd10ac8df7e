package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"fileboard-client/internal/adapters/localfiles"
	"fileboard-client/internal/adapters/terminal"
	"fileboard-client/internal/domain"
)

func uploadCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "upload [file...]",
		Short:   "Upload files to the server root in a single request",
		Aliases: []string{"up"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			picker := localfiles.NewPicker(wd)

			if dir != "" && len(args) > 0 {
				return ErrDirWithFiles
			}

			var sel *localfiles.Selection
			if dir != "" {
				sel, err = picker.PickDirectory(dir)
			} else {
				sel, err = picker.Pick(args...)
			}
			if err != nil {
				return fmt.Errorf("failed to select files: %w", err)
			}
			defer sel.Close()

			outcome := a.useCase(a.deps.prompter, a.deps.confirmer).Upload(cmd.Context(), sel.Files)
			return outcomeError(outcome)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Upload every regular, non-hidden file of this directory")
	return cmd
}

func mkdirCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "mkdir",
		Short: "Create a folder, asking for its name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			prompter := a.deps.prompter
			if cmd.Flags().Changed("name") {
				prompter = terminal.StaticPrompter{Value: name}
			}

			outcome := a.useCase(prompter, a.deps.confirmer).CreateDirectory(cmd.Context(), a.cfg.Client.CurrentPath)
			return outcomeError(outcome)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Folder name, skips the prompt")
	return cmd
}

func moveCommand() *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:     "mv <file>",
		Short:   "Rename or move a file, asking for the destination",
		Aliases: []string{"move", "rename"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			prompter := a.deps.prompter
			if cmd.Flags().Changed("to") {
				prompter = terminal.StaticPrompter{Value: destination}
			}

			outcome := a.useCase(prompter, a.deps.confirmer).Move(cmd.Context(), a.cfg.Client.CurrentPath, args[0])
			return outcomeError(outcome)
		},
	}

	cmd.Flags().StringVar(&destination, "to", "", "Destination path, skips the prompt")
	return cmd
}

func deleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <file>",
		Short:   "Move a file to the server trash after confirmation",
		Aliases: []string{"delete", "trash"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			var confirmer domain.Confirmer = a.deps.confirmer
			if yes {
				confirmer = terminal.StaticConfirmer{Answer: true}
			}

			outcome := a.useCase(a.deps.prompter, confirmer).Delete(cmd.Context(), args[0])
			return outcomeError(outcome)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls [path]",
		Short:   "Show the listing of a server directory",
		Aliases: []string{"list"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			path := a.cfg.Client.CurrentPath
			if len(args) == 1 {
				path = args[0]
			}

			notifier := terminal.NewNotifier(a.deps.out, a.cfg.Messages)
			resp, err := a.api.Fetch(cmd.Context(), path)
			if err != nil {
				var urlErr *url.Error
				if errors.As(err, &urlErr) && urlErr.Err != nil {
					err = urlErr.Err
				}
				outcome := domain.TransportError(err.Error())
				notifier.Notify(domain.OperationList, outcome)
				return outcomeError(outcome)
			}
			if !resp.OK() {
				outcome := domain.Failure(resp.Body)
				notifier.Notify(domain.OperationList, outcome)
				return outcomeError(outcome)
			}

			terminal.NewListingPrinter(a.deps.out).Print(path, resp.Body)
			return nil
		},
	}
}
