// Package errs defines the sentinel errors returned by ctxdict packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should test for them with errors.Is.
package errs

import "errors"

// Build-time errors. All of them are fatal to the build.
var (
	// ErrUnsortedInput is returned when the phrase stream is not strictly
	// ascending by unsigned byte order of the source phrase.
	ErrUnsortedInput = errors.New("phrase stream is not sorted")
	// ErrDuplicatePhrase is returned when a second phrase terminates at a trie
	// position that already holds a phrase.
	ErrDuplicatePhrase = errors.New("duplicate phrase")
	// ErrNullPointer is returned when a record pointer equal to the reserved
	// null offset is recorded as a phrase.
	ErrNullPointer = errors.New("null record pointer")
	// ErrTooManyChildren is returned when a trie node would need more children
	// than its one-byte child count can hold.
	ErrTooManyChildren = errors.New("too many children for trie node")
	// ErrMalformedRecord is returned when a phrase stream line cannot be parsed.
	ErrMalformedRecord = errors.New("malformed phrase record")
	// ErrInvalidExample is returned when an example references a sentence or
	// byte range outside the corpora.
	ErrInvalidExample = errors.New("invalid phrase pair example")
)

// Query-time errors.
var (
	// ErrCorruptIndex is returned when a read falls outside the index buffer or
	// a decoded length is impossible.
	ErrCorruptIndex = errors.New("corrupt index")
	// ErrDictionaryNotFound is returned by the registry for an unknown id.
	ErrDictionaryNotFound = errors.New("dictionary not found")
	// ErrInvalidCompression is returned for an unsupported compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrClosed is returned when using a dictionary after Close.
	ErrClosed = errors.New("dictionary is closed")
)
