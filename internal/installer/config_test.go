package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/chittyos/chitty-cli/internal/errors"
	"github.com/chittyos/chitty-cli/internal/scaffold"
)

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers {
		got, err := ParseTier(string(tier))
		require.NoError(t, err)
		assert.Equal(t, tier, got)
	}

	_, err := ParseTier("enterprise")
	assert.Error(t, err)
}

func TestNormalizeTierTable(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantApps []string
	}{
		{
			name:     "minimal ignores selections",
			cfg:      Config{Tier: TierMinimal, Apps: []string{"chittytrace"}},
			wantApps: []string{},
		},
		{
			name:     "standard is the default pair",
			cfg:      Config{Tier: TierStandard, Apps: []string{"chittytrace"}},
			wantApps: []string{"chittyresolution", "chittychronicle"},
		},
		{
			name:     "full is every known component",
			cfg:      Config{Tier: TierFull},
			wantApps: []string{"chittyresolution", "chittychronicle", "chittycounsel", "chittytrace"},
		},
		{
			name:     "custom keeps the user's order",
			cfg:      Config{Tier: TierCustom, Apps: []string{"chittytrace", "chittyresolution"}},
			wantApps: []string{"chittytrace", "chittyresolution"},
		},
		{
			name:     "custom with no selection is empty",
			cfg:      Config{Tier: TierCustom},
			wantApps: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Normalize()
			assert.Equal(t, tt.wantApps, tt.cfg.Apps)
		})
	}
}

func TestNormalizeMinimalForcesFeaturesOff(t *testing.T) {
	cfg := Config{
		Tier:     TierMinimal,
		Features: scaffold.Features{Database: true, Auth: true, Docker: true},
	}
	cfg.Normalize()
	assert.Equal(t, scaffold.Features{}, cfg.Features)
}

func TestValidate(t *testing.T) {
	valid := Config{Name: "my-chittyapp", Tier: TierStandard}
	require.NoError(t, valid.Validate())

	badName := Config{Name: "MyApp", Tier: TierStandard}
	err := badName.Validate()
	require.Error(t, err)
	assert.Equal(t, cerr.ErrCodeInvalidInput, cerr.GetCode(err))

	badTier := Config{Name: "ok", Tier: Tier("enterprise")}
	assert.Equal(t, cerr.ErrCodeInvalidInput, cerr.GetCode(badTier.Validate()))

	badApp := Config{Name: "ok", Tier: TierCustom, Apps: []string{"chittybogus"}}
	assert.Equal(t, cerr.ErrCodeInvalidInput, cerr.GetCode(badApp.Validate()))
}
