package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	rcfile "github.com/chittyos/chitty-cli/internal/config"
	cerr "github.com/chittyos/chitty-cli/internal/errors"
	"github.com/chittyos/chitty-cli/internal/installer"
	"github.com/chittyos/chitty-cli/internal/prompt"
	"github.com/chittyos/chitty-cli/internal/scaffold"
	"github.com/chittyos/chitty-cli/internal/ui"
	"github.com/chittyos/chitty-cli/templates"
)

// newOptions holds the flag answers for the new command. Anything left
// unset is asked interactively or filled from .chittyrc.yaml defaults.
type newOptions struct {
	name     string
	tier     string
	apps     []string
	database bool
	auth     bool
	docker   bool
	force    bool
	yes      bool
}

func newNewCmd() *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new ChittyOS project",
		Long: `Create a new ChittyOS project in the current directory.

Runs the interactive installer: project name, installation tier
(minimal, standard, full, or custom), and the optional database,
authentication, and Docker sub-generators.

Every question can be answered with a flag instead; with --yes (or when
stdin is not a terminal) nothing is asked and flags are required.`,
		Example: `  # Interactive
  chitty new

  # Non-interactive
  chitty new my-chittyapp --tier standard --database --yes

  # Custom component set, in install order
  chitty new my-chittyapp --tier custom --app chittytrace --app chittyresolution --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.name = args[0]
			}
			return runNew(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tier, "tier", "t", "", "Installation tier (minimal|standard|full|custom)")
	cmd.Flags().StringArrayVar(&opts.apps, "app", nil, "Component to install (custom tier, repeatable, ordered)")
	cmd.Flags().BoolVar(&opts.database, "database", false, "Set up the PostgreSQL database layer")
	cmd.Flags().BoolVar(&opts.auth, "auth", false, "Add the authentication module")
	cmd.Flags().BoolVar(&opts.docker, "docker", false, "Generate Docker files")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing directory without asking")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Never prompt; use flags and defaults")

	return cmd
}

func runNew(cmd *cobra.Command, opts *newOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cwd, err := os.Getwd()
	if err != nil {
		return cerr.Wrap(cerr.ErrCodeInternal, err)
	}

	cfg := installer.Config{
		Name: opts.name,
		Apps: opts.apps,
		Features: scaffold.Features{
			Database: opts.database,
			Auth:     opts.auth,
			Docker:   opts.docker,
		},
	}
	if opts.tier != "" {
		tier, err := installer.ParseTier(opts.tier)
		if err != nil {
			return cerr.New(cerr.ErrCodeInvalidInput, err.Error(), err)
		}
		cfg.Tier = tier
	}

	defaults, err := rcfile.Load(cwd)
	if err != nil {
		return cerr.Wrap(cerr.ErrCodeInvalidInput, err)
	}
	defaults.Apply(&cfg)

	// Prompting happens inside the pipeline, after environment detection,
	// so a broken runtime fails before the first question. Flag answers
	// are checked up front; they need no environment to be rejected.
	interactive := prompt.Interactive() && !opts.yes
	styles := ui.DefaultStyles()
	confirm := installer.Confirmer(prompt.Confirm)
	collect := installer.Collector(prompt.Collect)
	if !interactive {
		if cfg.Name == "" {
			return cerr.New(cerr.ErrCodeInvalidInput,
				"a project name is required in non-interactive mode", nil).
				WithSuggestion("pass one: chitty new my-chittyapp --yes")
		}
		if cfg.Tier == "" {
			cfg.Tier = installer.TierStandard
		}
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			return err
		}

		styles = ui.NoColorStyles()
		confirm = func(string) (bool, error) { return false, nil }
		collect = nil
	}

	in := installer.New(cfg, cwd, templates.FS,
		installer.WithOutput(cmd.OutOrStdout()),
		installer.WithConfirmer(confirm),
		installer.WithCollector(collect),
		installer.WithForce(opts.force),
		installer.WithStyles(styles),
	)

	if err := in.Run(ctx); err != nil {
		if cerr.IsCancelled(err) {
			cmd.Println("Installation cancelled. Nothing was written.")
		}
		return err
	}
	return nil
}
