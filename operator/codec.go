package operator

import (
	"bufio"
	"bytes"
	"fmt"
)

// matrixTag is the data-type tag in the "d t M" matrix header. This
// implementation only ever stores integer triplets, so the tag is always
// "M".
const matrixTag = "M"

// EncodeMatrix renders m in the triplet wire format: header "d t M", one
// line per nonzero entry with 1-based indices, terminator "0 0 0".
func EncodeMatrix(m SparseMatrix) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d %s\n", m.Rows, m.Cols, matrixTag)
	m.Iterate(func(r, c int, v int64) bool {
		fmt.Fprintf(&buf, "%d %d %d\n", r+1, c+1, v)
		return true
	})
	buf.WriteString("0 0 0\n")
	return buf.Bytes()
}

// DecodeMatrix parses the triplet wire format, validating the header tag,
// 1-based index range, and the mandatory terminator line. It returns
// ErrFormat wrapped with context on any violation.
func DecodeMatrix(data []byte) (SparseMatrix, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	if !sc.Scan() {
		return SparseMatrix{}, operatorErrorf("DecodeMatrix", ErrFormat, "empty input")
	}
	var rows, cols int
	var tag string
	if _, err := fmt.Sscanf(sc.Text(), "%d %d %s", &rows, &cols, &tag); err != nil {
		return SparseMatrix{}, operatorErrorf("DecodeMatrix", ErrFormat, "bad header %q", sc.Text())
	}
	if tag != matrixTag {
		return SparseMatrix{}, operatorErrorf("DecodeMatrix", ErrFormat, "unknown data-type tag %q", tag)
	}

	var entries []Triplet
	terminated := false
	for sc.Scan() {
		line := sc.Text()
		var i, j int
		var v int64
		if _, err := fmt.Sscanf(line, "%d %d %d", &i, &j, &v); err != nil {
			return SparseMatrix{}, operatorErrorf("DecodeMatrix", ErrFormat, "bad entry line %q", line)
		}
		if i == 0 && j == 0 && v == 0 {
			terminated = true
			break
		}
		if i < 1 || i > rows || j < 1 || j > cols {
			return SparseMatrix{}, operatorErrorf("DecodeMatrix", ErrFormat, "index (%d,%d) out of 1..%d x 1..%d", i, j, rows, cols)
		}
		entries = append(entries, Triplet{Row: i - 1, Col: j - 1, Value: v})
	}
	if err := sc.Err(); err != nil {
		return SparseMatrix{}, operatorErrorf("DecodeMatrix", err, "scanning matrix")
	}
	if !terminated {
		return SparseMatrix{}, operatorErrorf("DecodeMatrix", ErrFormat, "missing 0 0 0 terminator")
	}
	return NewSparseMatrix(rows, cols, entries), nil
}
