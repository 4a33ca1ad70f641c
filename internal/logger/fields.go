package logger

// Canonical field names for structured logging.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldCommand   = "command"
	FieldArgs      = "args"
	FieldDir       = "dir"
	FieldDryRun    = "dry_run"
	FieldDuration  = "duration"
	FieldPath      = "path"
	FieldFramework = "framework"
	FieldTheme     = "theme"
	FieldPage      = "page"
	FieldStep      = "step"
	FieldInstalled = "installed"
)
