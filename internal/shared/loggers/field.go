package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldDay       = "day"
	FieldProduct   = "product"
	FieldTask      = "task"
	FieldClusterID = "cluster_id"
	FieldFile      = "file"
	FieldLine      = "line"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"
)
