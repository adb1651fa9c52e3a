package cmd

import (
	"fmt"

	"github.com/nfrund/voxnote/internal/auth"
	"github.com/nfrund/voxnote/internal/backend"
	"github.com/spf13/cobra"
)

func newExchangeCmd() *cobra.Command {
	var code string

	exchangeCmd := &cobra.Command{
		Use:   "exchange",
		Short: "Relay one authorization code to the backend",
		Long: `Send a single authorization code to BACKEND_EXCHANGE_URL exactly as the
sign-in callback would, and print the outcome.

The command exits non-zero unless the backend reports the user as logged in.

Examples:
  voxnote exchange --code "4/0AVG..."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := loadConfig()

			client := backend.NewClient(cfg.BackendExchangeURL, backend.WithTimeout(cfg.BackendTimeout))
			result := auth.NewHandoff(client).Exchange(cmd.Context(), code)

			fmt.Fprintln(cmd.OutOrStdout(), result.Outcome)
			if !result.LoggedIn() {
				return result.Err
			}
			return nil
		},
	}
	exchangeCmd.Flags().StringVar(&code, "code", "", "authorization code issued by Google")
	_ = exchangeCmd.MarkFlagRequired("code")
	return exchangeCmd
}
