package eew

import (
	"errors"
	"fmt"
)

// MinTelegramSize is the minimum size of a telegram in bytes: header and mandatory fields.
const MinTelegramSize = 135

// ErrInvalidArgument indicates that the input is not ASCII text.
var ErrInvalidArgument = errors.New("invalid argument, ASCII text expected")

// ErrFormat is the root of all format errors. Use errors.Is(err, ErrFormat) to check for any FormatError.
var ErrFormat = errors.New("invalid telegram format")

// FormatError indicates that the raw content of a field does not match its defined format.
type FormatError struct {
	Field Field
	Raw   string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v (%s: %q): %v", ErrFormat, e.Field, e.Raw, e.Err)
	}
	return fmt.Sprintf("%v (%s: %q)", ErrFormat, e.Field, e.Raw)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatError(field Field, raw string) error {
	return &FormatError{Field: field, Raw: raw}
}

// Telegram holds the raw text of a fastcast telegram. A Telegram never changes after construction.
type Telegram struct {
	raw string
}

// New creates a telegram from the given text. The text must be at least MinTelegramSize bytes long and ASCII.
// The size is checked first, so any shorter input fails with a FormatError.
func New(text string) (*Telegram, error) {
	if len(text) < MinTelegramSize {
		return nil, &FormatError{Field: FieldSize, Raw: fmt.Sprint(len(text)), Err: fmt.Errorf("too short, at least %d bytes expected", MinTelegramSize)}
	}
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			return nil, fmt.Errorf("%w: non-ASCII byte 0x%X at offset %d", ErrInvalidArgument, text[i], i)
		}
	}
	return &Telegram{raw: text}, nil
}

// NewFromBytes creates a telegram from the given bytes, see New.
func NewFromBytes(bytes []byte) (*Telegram, error) {
	if bytes == nil {
		return nil, ErrInvalidArgument
	}
	return New(string(bytes))
}

// String returns the raw text of the telegram.
func (t *Telegram) String() string {
	return t.raw
}

// Len returns the size of the telegram in bytes.
func (t *Telegram) Len() int {
	return len(t.raw)
}

// Slice returns length bytes starting at offset.
func (t *Telegram) Slice(offset, length int) (string, error) {
	if offset < 0 || length < 0 || offset+length > len(t.raw) {
		return "", &FormatError{Field: FieldSize, Raw: fmt.Sprintf("%d+%d", offset, length), Err: fmt.Errorf("out of bounds, telegram has %d bytes", len(t.raw))}
	}
	return t.raw[offset : offset+length], nil
}

// Equal reports whether both telegrams contain exactly the same text.
func (t *Telegram) Equal(other *Telegram) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.raw == other.raw
}

func (t *Telegram) field(field Field, offset, length int) (string, error) {
	raw, err := t.Slice(offset, length)
	if err != nil {
		return "", &FormatError{Field: field, Err: err}
	}
	return raw, nil
}
