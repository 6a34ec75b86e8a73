package gvs

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// EncodeBasis renders a list of canonical strings into the basis file wire
// format: a header line with the count, then one line per element.
func EncodeBasis(elems []string) []byte {
	var b bytes.Buffer
	b.WriteString(strconv.Itoa(len(elems)))
	b.WriteByte('\n')
	for _, e := range elems {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// DecodeBasis parses the basis file wire format, returning ErrFormat if the
// header's count disagrees with the number of lines that follow.
func DecodeBasis(data []byte) ([]string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return nil, gvsErrorf("DecodeBasis", ErrFormat, "missing header line")
	}
	header := strings.TrimSpace(sc.Text())
	dim, err := strconv.Atoi(header)
	if err != nil || dim < 0 {
		return nil, gvsErrorf("DecodeBasis", ErrFormat, "invalid header %q", header)
	}
	elems := make([]string, 0, dim)
	for sc.Scan() {
		elems = append(elems, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, gvsErrorf("DecodeBasis", ErrFormat, "scan error: %v", err)
	}
	if len(elems) != dim {
		return nil, gvsErrorf("DecodeBasis", ErrFormat, "header says %d, found %d lines", dim, len(elems))
	}
	return elems, nil
}
