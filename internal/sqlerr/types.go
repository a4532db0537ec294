package sqlerr

// Code classifies a database error into the categories the API cares about.
type Code int

const (
	// Other covers every SQLSTATE we have no special handling for.
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionFailure
	UndefinedFunction
)

// Severity mirrors the Postgres severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// Error is the normalized form of a Postgres error. It keeps the original
// driver error for Unwrap so errors.As still reaches pgconn.PgError.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code.
//
// SQLSTATE reference: class 23 is integrity constraint violation,
// class 08 is connection exception, 42883 is undefined function (a missing
// or mis-typed stored routine).
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "42883":
		return UndefinedFunction
	}

	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}

	return Other
}

// MapSeverity maps the Postgres severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}
