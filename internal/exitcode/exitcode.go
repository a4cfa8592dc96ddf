package exitcode

const (
	Success     = 0
	UsageError  = 1
	SchemaError = 2
	ParseError  = 3
	RuleError   = 4
	ExportError = 5
	ReportError = 6
)
