// Package prompt collects the installer configuration interactively.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	cerr "github.com/chittyos/chitty-cli/internal/errors"
	"github.com/chittyos/chitty-cli/internal/installer"
	"github.com/chittyos/chitty-cli/internal/validation"
)

// Interactive reports whether stdin is a terminal. Non-interactive runs
// must supply every answer through flags.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// tierOptions builds the tier select options in prompt order.
func tierOptions() []huh.Option[string] {
	labels := map[installer.Tier]string{
		installer.TierMinimal:  "minimal — bare project, no apps",
		installer.TierStandard: "standard — resolution and chronicle",
		installer.TierFull:     "full — every ChittyOS app",
		installer.TierCustom:   "custom — pick the apps yourself",
	}
	opts := make([]huh.Option[string], 0, len(installer.Tiers))
	for _, t := range installer.Tiers {
		opts = append(opts, huh.NewOption(labels[t], string(t)))
	}
	return opts
}

// componentOptions builds the custom-tier multi-select options.
func componentOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(installer.AllComponents))
	for _, c := range installer.AllComponents {
		opts = append(opts, huh.NewOption(c, c))
	}
	return opts
}

// Collect runs the question sequence and fills cfg in place. Values
// already set (from flags or .chittyrc.yaml defaults) pre-seed the form.
// Aborting the form maps to the cancellation outcome.
func Collect(cfg *installer.Config) error {
	tier := string(cfg.Tier)
	if tier == "" {
		tier = string(installer.TierStandard)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("my-chittyapp").
				Validate(validation.ProjectName).
				Value(&cfg.Name),
			huh.NewSelect[string]().
				Title("Installation tier").
				Options(tierOptions()...).
				Value(&tier),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Apps to install").
				Options(componentOptions()...).
				Value(&cfg.Apps),
		).WithHideFunc(func() bool {
			return tier != string(installer.TierCustom)
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Set up a PostgreSQL database layer?").
				Value(&cfg.Features.Database),
			huh.NewConfirm().
				Title("Add the authentication module?").
				Value(&cfg.Features.Auth),
			huh.NewConfirm().
				Title("Generate Docker files?").
				Value(&cfg.Features.Docker),
		).WithHideFunc(func() bool {
			return tier == string(installer.TierMinimal)
		}),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return cerr.ErrCancelled
		}
		return cerr.Wrap(cerr.ErrCodeInvalidInput, err)
	}

	cfg.Tier = installer.Tier(tier)
	return nil
}

// Confirm asks a single yes/no question. It satisfies installer.Confirmer.
func Confirm(question string) (bool, error) {
	answer := false
	err := huh.NewConfirm().
		Title(question).
		Value(&answer).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return answer, nil
}
