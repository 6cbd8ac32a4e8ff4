package btml

import "errors"

var (
	// ErrBadMagic names data whose first four bytes are not "btml". [Decode]
	// does not return it: it treats such data as a headerless body.
	ErrBadMagic = errors.New("btml: bad magic")
	// ErrUnsupportedVersion is returned for a header version byte this
	// decoder does not know.
	ErrUnsupportedVersion = errors.New("btml: unsupported version")
	// ErrBadFlag is returned for a header flag byte outside {0, 1}.
	ErrBadFlag = errors.New("btml: invalid flag byte")
	// ErrTruncated is returned whenever a read runs past the end of the
	// buffer.
	ErrTruncated = errors.New("btml: truncated data")
	// ErrMissingTerminator is returned when an inline or table string's
	// declared length does not end in a NUL byte.
	ErrMissingTerminator = errors.New("btml: string missing NUL terminator")
	// ErrReservedOffset is returned for a string reference whose 2-byte
	// offset is zero. An offset that points past the end of the data is
	// reported as [ErrTruncated] instead.
	ErrReservedOffset = errors.New("btml: reserved or invalid string table offset")
	ErrNoStringTable  = errors.New("btml: string reference without a string table")
	// ErrUnknownTag is returned for a type byte whose low nibble is not one
	// of the known Tag values.
	ErrUnknownTag = errors.New("btml: unknown type tag")
)
