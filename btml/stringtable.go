package btml

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"go.tmlkit.dev/tml/value"
)

// stringTableMinLen and stringTableMaxLen bound which strings are eligible
// for deduplication: short strings cost more as a table entry (length
// prefix plus NUL) than as an inline repeat, and very long ones would blow
// the table's own size ceiling.
const (
	stringTableMinLen = 2
	stringTableMaxLen = 32000

	// stringTableMaxBytes and stringTableMaxEntries are the table's own
	// capacity ceiling: a 2-byte entry count and 2-byte offsets can't
	// address more than this.
	stringTableMaxBytes   = 65535
	stringTableMaxEntries = 65535
)

// stringTable is the encode-side deduplication index: which strings got a
// table entry, and at what offset (counted from byte 6, the first byte
// after the header) a decoder would find it.
type stringTable struct {
	offsets map[string]uint16
	entries []string
}

// buildStringTable walks root counting repeated Text/Comment strings and
// assigns table entries to as many as fit, in first-seen order. Strings
// that don't fit the eligibility rule are skipped without a warning;
// strings that would overflow the table's capacity are reported as
// warnings. The caller encodes both kinds inline.
func buildStringTable(root value.Value) (*stringTable, []string) {
	counts := map[string]int{}

	var order []string

	var walk func(v value.Value)
	walk = func(v value.Value) {
		switch v.Tag {
		case value.TagText, value.TagComment:
			if _, seen := counts[v.Text]; !seen {
				order = append(order, v.Text)
			}

			counts[v.Text]++
		case value.TagArray:
			for _, e := range v.Array {
				walk(e)
			}
		case value.TagObject:
			for _, p := range v.Object {
				walk(p.Name)
				walk(p.Val)
			}
		}
	}
	walk(root)

	t := &stringTable{offsets: map[string]uint16{}}

	var warnings []string

	relOffset := 2 // the 2-byte entry count occupies relative offsets 0-1

	for _, s := range order {
		if counts[s] < 2 {
			continue
		}

		if len(s) < stringTableMinLen || len(s) > stringTableMaxLen {
			continue
		}

		entryLen := lenPrefixSize16(len(s)+1) + len(s) + 1

		if relOffset+entryLen > stringTableMaxBytes || len(t.entries)+1 > stringTableMaxEntries {
			warnings = append(warnings, fmt.Sprintf("btml: string table capacity exceeded, %q encoded inline", s))
			continue
		}

		t.offsets[s] = uint16(relOffset)
		t.entries = append(t.entries, s)
		relOffset += entryLen
	}

	return t, warnings
}

func writeStringTable(buf *bytes.Buffer, t *stringTable) {
	var countBytes [2]byte
	binary.LittleEndian.PutUint16(countBytes[:], uint16(len(t.entries)))
	buf.Write(countBytes[:])

	for _, s := range t.entries {
		writeLenPrefix16(buf, len(s)+1)
		buf.WriteString(s)
		buf.WriteByte(0)
	}
}

// lenPrefixSize16 returns how many bytes writeLenPrefix16 spends on n: 1
// byte if n < 255, else 1 marker byte plus a 2-byte LE length.
func lenPrefixSize16(n int) int {
	if n < 255 {
		return 1
	}

	return 3
}

func writeLenPrefix16(buf *bytes.Buffer, n int) {
	if n < 255 {
		buf.WriteByte(byte(n))
		return
	}

	buf.WriteByte(255)

	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(n))
	buf.Write(b[:])
}

func writeLenPrefix32(buf *bytes.Buffer, n int) {
	if n < 255 {
		buf.WriteByte(byte(n))
		return
	}

	buf.WriteByte(255)

	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	buf.Write(b[:])
}

// readLenPrefix16At reads a short length-prefix (as used by string table
// entries) starting at the absolute byte offset pos in data, returning the
// decoded length and the offset immediately following the prefix.
func readLenPrefix16At(data []byte, pos int) (n int, next int, err error) {
	if pos >= len(data) {
		return 0, 0, ErrTruncated
	}

	b := data[pos]
	if b < 255 {
		return int(b), pos + 1, nil
	}

	if pos+3 > len(data) {
		return 0, 0, ErrTruncated
	}

	return int(binary.LittleEndian.Uint16(data[pos+1 : pos+3])), pos + 3, nil
}
