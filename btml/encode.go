package btml

import (
	"bytes"
	"encoding/binary"

	"go.tmlkit.dev/tml/value"
)

var magic = [4]byte{'b', 't', 'm', 'l'}

const version byte = 1

// EncodeOptions controls how [Encode] frames its output.
type EncodeOptions struct {
	// Header writes the 6-byte magic/version/flag header. Callers that
	// embed BTML inside another framed format may set this false and
	// recover with [DecodeBody].
	Header bool
	// StringTable builds and emits a deduplicated string table when
	// Header is true. Ignored otherwise, since there is nowhere to record
	// the table flag without a header.
	StringTable bool
}

// DefaultEncodeOptions writes a header but no string table.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Header: true}
}

// Encode renders root as BTML. The returned warnings describe any
// strings that didn't fit the string table and were encoded inline
// instead; they are not errors.
func Encode(root value.Value, opts EncodeOptions) ([]byte, []string, error) {
	var (
		table    *stringTable
		warnings []string
	)

	if opts.Header && opts.StringTable {
		table, warnings = buildStringTable(root)
	}

	var buf bytes.Buffer

	if opts.Header {
		buf.Write(magic[:])
		buf.WriteByte(version)

		flag := byte(0)
		if opts.StringTable {
			flag = 1
		}

		buf.WriteByte(flag)

		if opts.StringTable {
			writeStringTable(&buf, table)
		}
	}

	if err := encodeValue(&buf, root, table); err != nil {
		return nil, warnings, err
	}

	return buf.Bytes(), warnings, nil
}

func encodeValue(buf *bytes.Buffer, v value.Value, table *stringTable) error {
	typeByte := byte(v.Tag)
	if v.Tag == value.TagText && v.Quoted {
		typeByte |= 0x10
	}

	buf.WriteByte(typeByte)

	switch v.Tag {
	case value.TagNone, value.TagNull:
		return nil
	case value.TagBool:
		if v.AsBool() {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}

		return nil
	case value.TagFloat:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math32bits(float32(v.AsFloat())))
		buf.Write(b[:])

		return nil
	case value.TagInt:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(int32(v.AsInt())))
		buf.Write(b[:])

		return nil
	case value.TagText, value.TagComment:
		encodeString(buf, v.Text, table)
		return nil
	case value.TagArray:
		writeLenPrefix32(buf, len(v.Array))

		for _, e := range v.Array {
			if err := encodeValue(buf, e, table); err != nil {
				return err
			}
		}

		return nil
	case value.TagObject:
		writeLenPrefix32(buf, len(v.Object))

		for _, p := range v.Object {
			if err := encodeValue(buf, p.Name, table); err != nil {
				return err
			}

			if err := encodeValue(buf, p.Val, table); err != nil {
				return err
			}
		}

		return nil
	default:
		return ErrUnknownTag
	}
}

// encodeString writes s as a table reference (one zero byte plus a 2-byte
// LE offset) when table carries an entry for it, otherwise as a length-
// prefixed inline string terminated by NUL.
func encodeString(buf *bytes.Buffer, s string, table *stringTable) {
	if table != nil {
		if off, ok := table.offsets[s]; ok {
			buf.WriteByte(0)

			var b [2]byte
			binary.LittleEndian.PutUint16(b[:], off)
			buf.Write(b[:])

			return
		}
	}

	writeLenPrefix32(buf, len(s)+1)
	buf.WriteString(s)
	buf.WriteByte(0)
}
