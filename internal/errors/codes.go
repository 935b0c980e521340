// Package errors provides structured error handling for the chitty installer.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Environment errors (runtime, package manager)
//   - 2XX: Input errors (prompt validation)
//   - 3XX: Cancellation
//   - 4XX: Pipeline stage failures
//   - 5XX: Internal errors
package errors

// Stage identifies the installer stage an error belongs to.
type Stage string

const (
	// StageEnvironment covers runtime and package-manager detection.
	StageEnvironment Stage = "ENVIRONMENT"
	// StageInput covers interactive configuration collection.
	StageInput Stage = "INPUT"
	// StageFramework covers target creation and base dependency install.
	StageFramework Stage = "FRAMEWORK"
	// StageTemplates covers template materialization.
	StageTemplates Stage = "TEMPLATES"
	// StageIntegration covers component installs and generated config.
	StageIntegration Stage = "INTEGRATION"
	// StageFinalize covers bulk install, ignore file, and vcs init.
	StageFinalize Stage = "FINALIZE"
	// StageInternal covers unexpected errors.
	StageInternal Stage = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal aborts the whole pipeline with a nonzero exit.
	SeverityFatal Severity = "FATAL"
	// SeverityWarning is logged distinctly and the pipeline continues.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by stage.
const (
	// Environment errors (100-199)
	ErrCodeUnsupportedRuntime = "ERR_101_UNSUPPORTED_RUNTIME"
	ErrCodeNoPackageManager   = "ERR_102_NO_PACKAGE_MANAGER"

	// Input errors (200-299)
	ErrCodeInvalidInput = "ERR_201_INVALID_INPUT"

	// Cancellation (300-399)
	ErrCodeUserCancelled = "ERR_301_USER_CANCELLED"

	// Pipeline stage failures (400-499)
	ErrCodeFrameworkInstall  = "ERR_401_FRAMEWORK_INSTALL"
	ErrCodeTemplateCopy      = "ERR_402_TEMPLATE_COPY"
	ErrCodeIntegrationConfig = "ERR_403_INTEGRATION_CONFIG"
	ErrCodeFinalization      = "ERR_404_FINALIZATION"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// Warning codes. Warnings never abort the pipeline.
const (
	WarnCodeComponentInstall = "WARN_601_COMPONENT_INSTALL"
	WarnCodeVcsInit          = "WARN_602_VCS_INIT"
)

// stageFromCode extracts the stage from an error code.
func stageFromCode(code string) Stage {
	if len(code) < 7 {
		return StageInternal
	}

	switch code[4] {
	case '1':
		return StageEnvironment
	case '2', '3':
		return StageInput
	default:
	}

	switch code {
	case ErrCodeFrameworkInstall:
		return StageFramework
	case ErrCodeTemplateCopy:
		return StageTemplates
	case ErrCodeIntegrationConfig, WarnCodeComponentInstall:
		return StageIntegration
	case ErrCodeFinalization, WarnCodeVcsInit:
		return StageFinalize
	default:
		return StageInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case WarnCodeComponentInstall, WarnCodeVcsInit:
		return SeverityWarning
	default:
		return SeverityFatal
	}
}
