// Package installer orchestrates the chitty new pipeline: environment
// detection, target preparation, framework install, template
// materialization, integration, and finalization.
package installer

import (
	"fmt"
	"slices"

	cerr "github.com/chittyos/chitty-cli/internal/errors"
	"github.com/chittyos/chitty-cli/internal/scaffold"
	"github.com/chittyos/chitty-cli/internal/validation"
)

// Tier selects how much of the ChittyOS suite a new project starts with.
type Tier string

const (
	TierMinimal  Tier = "minimal"
	TierStandard Tier = "standard"
	TierFull     Tier = "full"
	TierCustom   Tier = "custom"
)

// AllComponents lists every installable ChittyOS app, in canonical order.
var AllComponents = []string{
	"chittyresolution",
	"chittychronicle",
	"chittycounsel",
	"chittytrace",
}

// standardComponents is the default suite for the standard tier.
var standardComponents = []string{"chittyresolution", "chittychronicle"}

// Tiers lists the selectable tiers in prompt order.
var Tiers = []Tier{TierMinimal, TierStandard, TierFull, TierCustom}

// ParseTier validates a tier name from a flag or prompt.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if slices.Contains(Tiers, t) {
		return t, nil
	}
	return "", fmt.Errorf("unknown tier %q (expected minimal, standard, full, or custom)", s)
}

// Config is the full set of answers the pipeline runs on. It is assembled
// once during configuration collection and read-only afterwards.
type Config struct {
	// Name is the validated project name, also the target directory name.
	Name string

	// Tier determines the component set.
	Tier Tier

	// Apps is the ordered component list. For non-custom tiers it is
	// derived from the tier; only custom honors a user selection.
	Apps []string

	// Features are the optional sub-generator toggles.
	Features scaffold.Features
}

// Normalize derives the component list from the tier and enforces the
// minimal-tier rule: minimal installs nothing optional, whatever the
// collected toggles say.
func (c *Config) Normalize() {
	switch c.Tier {
	case TierMinimal:
		c.Apps = []string{}
		c.Features = scaffold.Features{}
	case TierStandard:
		c.Apps = slices.Clone(standardComponents)
	case TierFull:
		c.Apps = slices.Clone(AllComponents)
	case TierCustom:
		if c.Apps == nil {
			c.Apps = []string{}
		}
	}
}

// Validate checks the collected answers before any filesystem work.
func (c *Config) Validate() error {
	if err := validation.ProjectName(c.Name); err != nil {
		return cerr.New(cerr.ErrCodeInvalidInput, err.Error(), err).
			WithSuggestion("project names are lowercase letters, digits, '.', '_' and '-', starting with a letter")
	}
	if _, err := ParseTier(string(c.Tier)); err != nil {
		return cerr.New(cerr.ErrCodeInvalidInput, err.Error(), err)
	}
	for _, app := range c.Apps {
		if !slices.Contains(AllComponents, app) {
			return cerr.New(cerr.ErrCodeInvalidInput,
				fmt.Sprintf("unknown component %q", app), nil).
				WithSuggestion(fmt.Sprintf("known components: %v", AllComponents))
		}
	}
	return nil
}
