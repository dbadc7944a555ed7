package watsonspec

import (
	"errors"
	"fmt"

	"github.com/ibd1279/watsonspec/wire"
)

// ErrStructuralMismatch classifies spec §7 item 3: a value is not the Kind
// a decoder expects, a Library child is not a String, or a record's
// declared size doesn't match the bytes holding it (a Zip's decompressed
// inner record, a top-level document). A Map or Header entry cut short is
// reported as wire.ErrTruncated, and a Snappy payload that doesn't
// decompress as the Snappy error itself.
var ErrStructuralMismatch = errors.New("watsonspec: structural mismatch")

// DecodeError wraps a structural decode failure with the Kind and byte
// offset at which it was detected.
type DecodeError struct {
	Kind   wire.Kind
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("watsonspec: decode %v at offset %d: %v", e.Kind, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(k wire.Kind, offset int, err error) error {
	return &DecodeError{Kind: k, Offset: offset, Err: err}
}
