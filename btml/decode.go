package btml

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"go.tmlkit.dev/tml/value"
)

// decoder threads the full input buffer alongside a cursor so that string
// table references (absolute offsets unrelated to the cursor's current
// position) can be resolved independently of normal sequential reads.
type decoder struct {
	data     []byte
	pos      int
	tableRef int // absolute offset of byte 6: the string table's reference origin
	hasTable bool
}

func (d *decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, ErrTruncated
	}

	b := d.data[d.pos]
	d.pos++

	return b, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if d.pos+n > len(d.data) {
		return nil, ErrTruncated
	}

	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b, nil
}

func (d *decoder) readLenPrefix32() (int, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}

	if b < 255 {
		return int(b), nil
	}

	raw, err := d.readBytes(4)
	if err != nil {
		return 0, err
	}

	return int(binary.LittleEndian.Uint32(raw)), nil
}

// Decode parses data as BTML, probing for the 6-byte header by checking
// the leading magic bytes. Data without the header is treated as a single
// headerless value with no string table, per [DecodeBody]. The returned
// warnings report any trailing bytes left unconsumed after the root value.
func Decode(data []byte) (value.Value, []string, error) {
	d := &decoder{data: data}

	var warnings []string

	if len(data) >= 4 && bytes.Equal(data[:4], magic[:]) {
		if len(data) < 6 {
			return value.Value{}, nil, ErrTruncated
		}

		if data[4] != version {
			return value.Value{}, nil, ErrUnsupportedVersion
		}

		flag := data[5]
		if flag > 1 {
			return value.Value{}, nil, ErrBadFlag
		}

		d.pos = 6

		if flag == 1 {
			d.hasTable = true
			d.tableRef = 6

			if err := skipStringTable(d); err != nil {
				return value.Value{}, nil, err
			}
		}
	}

	root, err := decodeValue(d)
	if err != nil {
		return value.Value{}, warnings, err
	}

	if d.pos < len(d.data) {
		warnings = append(warnings, fmt.Sprintf("btml: %d trailing bytes ignored", len(d.data)-d.pos))
	}

	return root, warnings, nil
}

// DecodeBody parses data as a single BTML value with no header and no
// string table, for embedding inside another framed format.
func DecodeBody(data []byte) (value.Value, error) {
	d := &decoder{data: data}
	return decodeValue(d)
}

// skipStringTable advances d.pos past the table without building an index
// of its contents; entries are looked up directly from d.data by absolute
// offset when a reference is decoded.
func skipStringTable(d *decoder) error {
	countBytes, err := d.readBytes(2)
	if err != nil {
		return err
	}

	count := int(binary.LittleEndian.Uint16(countBytes))

	for i := 0; i < count; i++ {
		n, err := d.readLenPrefix16()
		if err != nil {
			return err
		}

		raw, err := d.readBytes(n)
		if err != nil {
			return err
		}

		if n == 0 || raw[n-1] != 0 {
			return ErrMissingTerminator
		}
	}

	return nil
}

func (d *decoder) readLenPrefix16() (int, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}

	if b < 255 {
		return int(b), nil
	}

	raw, err := d.readBytes(2)
	if err != nil {
		return 0, err
	}

	return int(binary.LittleEndian.Uint16(raw)), nil
}

func decodeValue(d *decoder) (value.Value, error) {
	tb, err := d.readByte()
	if err != nil {
		return value.Value{}, err
	}

	tag := value.Tag(tb & 0x0F)
	quoted := tb&0x10 != 0

	switch tag {
	case value.TagNone:
		return value.None(value.NoPosition), nil
	case value.TagNull:
		return value.Null(value.NoPosition), nil
	case value.TagBool:
		b, err := d.readByte()
		if err != nil {
			return value.Value{}, err
		}

		return value.NewBool(b != 0, value.NoPosition), nil
	case value.TagFloat:
		raw, err := d.readBytes(4)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewFloat(floatFromBits(binary.LittleEndian.Uint32(raw)), value.NoPosition), nil
	case value.TagInt:
		raw, err := d.readBytes(4)
		if err != nil {
			return value.Value{}, err
		}

		i := int64(int32(binary.LittleEndian.Uint32(raw)))

		return value.NewInt(i, value.BaseDecimal, value.NoPosition), nil
	case value.TagText, value.TagComment:
		s, err := decodeString(d)
		if err != nil {
			return value.Value{}, err
		}

		if tag == value.TagText {
			return value.NewText(s, quoted, value.NoPosition), nil
		}

		return value.NewComment(s, value.NoPosition), nil
	case value.TagArray:
		n, err := d.readLenPrefix32()
		if err != nil {
			return value.Value{}, err
		}

		elems := make([]value.Value, n)

		for i := range elems {
			elems[i], err = decodeValue(d)
			if err != nil {
				return value.Value{}, err
			}
		}

		return value.NewArray(elems, value.NoPosition), nil
	case value.TagObject:
		n, err := d.readLenPrefix32()
		if err != nil {
			return value.Value{}, err
		}

		pairs := make([]value.Pair, n)

		for i := range pairs {
			name, err := decodeValue(d)
			if err != nil {
				return value.Value{}, err
			}

			val, err := decodeValue(d)
			if err != nil {
				return value.Value{}, err
			}

			pairs[i] = value.Pair{Name: name, Val: val, Depth: -1}
		}

		return value.NewObject(pairs, value.NoPosition), nil
	default:
		return value.Value{}, ErrUnknownTag
	}
}

func decodeString(d *decoder) (string, error) {
	b0, err := d.readByte()
	if err != nil {
		return "", err
	}

	if b0 == 0 {
		if !d.hasTable {
			return "", ErrNoStringTable
		}

		raw, err := d.readBytes(2)
		if err != nil {
			return "", err
		}

		off := binary.LittleEndian.Uint16(raw)
		if off == 0 {
			return "", ErrReservedOffset
		}

		return readStringAt(d.data, d.tableRef+int(off))
	}

	var n int
	if b0 < 255 {
		n = int(b0)
	} else {
		raw, err := d.readBytes(4)
		if err != nil {
			return "", err
		}

		n = int(binary.LittleEndian.Uint32(raw))
	}

	raw, err := d.readBytes(n)
	if err != nil {
		return "", err
	}

	if n == 0 || raw[n-1] != 0 {
		return "", ErrMissingTerminator
	}

	return string(raw[:n-1]), nil
}

// readStringAt resolves a string table reference: abs is the absolute byte
// offset of the entry's own length prefix.
func readStringAt(data []byte, abs int) (string, error) {
	n, next, err := readLenPrefix16At(data, abs)
	if err != nil {
		return "", err
	}

	if next+n > len(data) {
		return "", ErrTruncated
	}

	raw := data[next : next+n]
	if n == 0 || raw[n-1] != 0 {
		return "", ErrMissingTerminator
	}

	return string(raw[:n-1]), nil
}
