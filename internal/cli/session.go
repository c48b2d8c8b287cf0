package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionNewCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionGuessCmd())
	cmd.AddCommand(newSessionSkipCmd())
	cmd.AddCommand(newSessionResetCmd())
	cmd.AddCommand(newSessionEndCmd())

	return cmd
}

func newSessionNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.ID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Session
			if err := client.Get(sessionPath(id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}

func newSessionGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <word>",
		Short: "Guess the current word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			req := map[string]string{"guess": strings.Join(args, " ")}

			var result GuessResult
			if err := client.Post(sessionPath(id, "guess"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}

func newSessionSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip",
		Short: "Skip the current word",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Session
			if err := client.Post(sessionPath(id, "skip"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start the current session over",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			var result Session
			if err := client.Post(sessionPath(id, "reset"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}

func newSessionEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			if err := client.Delete(sessionPath(id)); err != nil {
				return err
			}

			if err := cfg.ClearSession(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintMessage("Session ended")
			return nil
		},
	}
}
