package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportRender(t *testing.T) {
	r := Report{
		Name:      "my-chittyapp",
		Tier:      "standard",
		Apps:      []string{"chittyresolution", "chittychronicle"},
		Warnings:  []string{"component chittychronicle failed to install"},
		NextSteps: []string{"cd my-chittyapp", "npm run dev"},
	}

	out := r.Render(NoColorStyles())

	assert.Contains(t, out, "Project ready: my-chittyapp")
	assert.Contains(t, out, "Tier: standard")
	assert.Contains(t, out, "chittyresolution, chittychronicle")
	assert.Contains(t, out, "component chittychronicle failed to install")
	assert.Contains(t, out, "cd my-chittyapp")
	assert.Contains(t, out, "npm run dev")
}

func TestReportRenderNoApps(t *testing.T) {
	r := Report{Name: "bare", Tier: "minimal"}
	out := r.Render(NoColorStyles())

	assert.Contains(t, out, "Apps: (none)")
	assert.NotContains(t, out, "Warnings:")
}
