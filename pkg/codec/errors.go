package codec

import (
	"errors"
	"fmt"

	"github.com/ssargent/usnjournal/pkg/usn"
)

var (
	// ErrUnrecognizedSchema matches every *SchemaError.
	ErrUnrecognizedSchema = errors.New("unrecognized schema")

	// ErrShortBatch is returned when a record batch cannot hold its cursor.
	ErrShortBatch = errors.New("record batch shorter than cursor prefix")
)

// SchemaError reports a buffer whose length matches no known layout.
type SchemaError struct {
	Kind   string // "descriptor" or "read request"
	Length int    // Observed length in bytes
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unrecognized %s schema: %d bytes", e.Kind, e.Length)
}

// Is makes errors.Is(err, ErrUnrecognizedSchema) true for schema errors.
func (e *SchemaError) Is(target error) bool {
	return target == ErrUnrecognizedSchema
}

// VersionError reports a value whose version has no encoding.
type VersionError struct {
	Kind    string
	Version usn.Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("no %s layout for version %s", e.Kind, e.Version)
}
