package mmap

import "errors"

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly, which is how trie
	// lookups touch a dictionary.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
)

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the file size is invalid (e.g. negative or too large).
	ErrInvalidSize = errors.New("mmap: invalid file size")
)

// String returns the flag spelling of the pattern.
func (p AccessPattern) String() string {
	switch p {
	case AccessSequential:
		return "sequential"
	case AccessRandom:
		return "random"
	case AccessWillNeed:
		return "willneed"
	default:
		return "default"
	}
}

// ParseAccessPattern is the inverse of AccessPattern.String.
func ParseAccessPattern(s string) (AccessPattern, error) {
	switch s {
	case "", "default":
		return AccessDefault, nil
	case "sequential":
		return AccessSequential, nil
	case "random":
		return AccessRandom, nil
	case "willneed":
		return AccessWillNeed, nil
	default:
		return AccessDefault, errors.New("mmap: unknown access pattern " + s)
	}
}
