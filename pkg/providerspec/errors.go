package providerspec

import "fmt"

// SchemaError reports the first structural violation found in a provider
// spec. Compilation is fail-fast: no partial document is ever produced.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, args...)}
}
