package primitives

import "fmt"

// SchemaError reports an invalid key schema: an unknown attribute name,
// a non-integer bit width, or an unsupported key type.
type SchemaError struct {
	Msg string
	Err error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("schema error: %s", e.Msg)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// NewSchemaError constructs a SchemaError with an optional wrapped cause.
func NewSchemaError(msg string, err error) *SchemaError {
	return &SchemaError{Msg: msg, Err: err}
}

// SizeError reports a block operation, or a pad/unpad call, given input
// of the wrong length.
type SizeError struct {
	Msg      string
	Got      int
	Expected int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("size error: %s (got %d, expected %d)", e.Msg, e.Got, e.Expected)
}

// NewSizeError constructs a SizeError.
func NewSizeError(msg string, got, expected int) *SizeError {
	return &SizeError{Msg: msg, Got: got, Expected: expected}
}

// FormatError reports bad base64, a decoded value of the wrong length,
// malformed keyfile JSON, or a malformed Paillier tuple.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("format error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("format error: %s", e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }

// NewFormatError constructs a FormatError with an optional wrapped cause.
func NewFormatError(msg string, err error) *FormatError {
	return &FormatError{Msg: msg, Err: err}
}

// CryptoError reports a cryptographic sanity failure: Paillier
// decryption producing a value not congruent to 1 mod n after
// exponentiation, a nonexistent modular inverse, or a failure from an
// underlying primitive such as crypto/rand.
type CryptoError struct {
	Msg string
	Err error
}

func (e *CryptoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crypto error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("crypto error: %s", e.Msg)
}

func (e *CryptoError) Unwrap() error { return e.Err }

// NewCryptoError constructs a CryptoError with an optional wrapped cause.
func NewCryptoError(msg string, err error) *CryptoError {
	return &CryptoError{Msg: msg, Err: err}
}

// TypeError reports an XOR call across byte strings of mismatched
// length.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: %s", e.Msg)
}

// NewTypeError constructs a TypeError.
func NewTypeError(msg string) *TypeError {
	return &TypeError{Msg: msg}
}
