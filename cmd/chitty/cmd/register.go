package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chittyos/chitty-cli/internal/output"
	"github.com/chittyos/chitty-cli/internal/registry"
)

func newRegisterCmd() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register this machine with the ChittyOS registry",
		Long: `Send the service identity of this CLI to the ChittyOS registry and
print the registry's response.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRegister(cmd, endpoint)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Registry endpoint (defaults to the production registry)")

	return cmd
}

func runRegister(cmd *cobra.Command, endpoint string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := output.New(cmd.OutOrStdout())
	out.Status("📡", "Registering with the ChittyOS registry...")

	client := registry.NewClient(endpoint)
	resp, err := client.Register(ctx, registry.DefaultIdentity())
	if resp != "" {
		cmd.Println(resp)
	}
	if err != nil {
		return err
	}

	out.Success("Registered")
	return nil
}
