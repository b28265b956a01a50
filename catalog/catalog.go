/*package catalog reads and writes the whitespace-separated text tables used
throughout grbfit: equilibrium sequence files on the way in and score tables
on the way out.*/
package catalog

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
)

// CommentString returns a comment line naming each column of a table
// written by FormatCols. order gives the output ordering of the columns
// and indexes the concatenation of intNames, floatNames, and strNames.
func CommentString(
	intNames, floatNames, strNames []string, order []int,
) string {
	tokens := []string{"# Column contents:"}
	tokens = append(tokens, intNames...)
	tokens = append(tokens, floatNames...)
	tokens = append(tokens, strNames...)

	orderedTokens := []string{tokens[0]}
	for i, idx := range order {
		if idx >= len(intNames)+len(floatNames)+len(strNames) {
			panic("Column ordering out of range.")
		}

		orderedTokens = append(orderedTokens,
			fmt.Sprintf("%s(%d)", tokens[idx+1], i))
	}

	return strings.Join(orderedTokens, " ")
}

// FormatCols formats columns of ints, floats, and strings into equal-width
// text columns. order gives the output ordering of the columns and indexes
// the concatenation of intCols, floatCols, and strCols.
func FormatCols(
	intCols [][]int, floatCols [][]float64, strCols [][]string, order []int,
) []string {
	nCols := len(intCols) + len(floatCols) + len(strCols)
	if nCols == 0 {
		return []string{}
	}

	height := -1
	checkHeight := func(n int) {
		if height == -1 {
			height = n
		} else if height != n {
			panic("Columns of unequal height.")
		}
	}

	formatted := make([][]string, 0, nCols)
	for i := range intCols {
		checkHeight(len(intCols[i]))
		formatted = append(formatted, formatIntCol(intCols[i]))
	}
	for i := range floatCols {
		checkHeight(len(floatCols[i]))
		formatted = append(formatted, formatFloatCol(floatCols[i]))
	}
	for i := range strCols {
		checkHeight(len(strCols[i]))
		formatted = append(formatted, formatStrCol(strCols[i]))
	}

	if height == 0 {
		return []string{}
	}

	orderedCols := [][]string{}
	for _, idx := range order {
		if idx >= nCols {
			panic("Column ordering out of range.")
		}
		orderedCols = append(orderedCols, formatted[idx])
	}

	lines := []string{}
	tokens := make([]string, len(orderedCols))
	for i := 0; i < height; i++ {
		for j := range orderedCols {
			tokens[j] = orderedCols[j][i]
		}
		lines = append(lines, strings.Join(tokens, " "))
	}

	return lines
}

func formatIntCol(col []int) []string {
	if len(col) == 0 {
		return []string{}
	}

	width := len(fmt.Sprintf("%d", col[0]))
	for i := 1; i < len(col); i++ {
		n := len(fmt.Sprintf("%d", col[i]))
		if n > width {
			width = n
		}
	}

	out := []string{}
	for i := range col {
		out = append(out, fmt.Sprintf("%*d", width, col[i]))
	}

	return out
}

func formatFloatCol(col []float64) []string {
	if len(col) == 0 {
		return []string{}
	}

	width := len(fmt.Sprintf("%.6g", col[0]))
	for i := 1; i < len(col); i++ {
		n := len(fmt.Sprintf("%.6g", col[i]))
		if n > width {
			width = n
		}
	}

	out := []string{}
	for i := range col {
		out = append(out, fmt.Sprintf("%*.6g", width, col[i]))
	}

	return out
}

func formatStrCol(col []string) []string {
	if len(col) == 0 {
		return []string{}
	}

	width := len(col[0])
	for i := 1; i < len(col); i++ {
		if len(col[i]) > width {
			width = len(col[i])
		}
	}

	out := []string{}
	for i := range col {
		out = append(out, fmt.Sprintf("%*s", width, col[i]))
	}

	return out
}

// Parse parses the specified columns in a byte block.
func Parse(data []byte, icolIdxs, fcolIdxs []int) (
	[][]int, [][]float64, error,
) {
	lines, nComm := split(data, '\n', '#')
	lines = uncomment(lines, '#', nComm)
	lines = trim(lines, ' ')
	return parse(lines, ' ', icolIdxs, fcolIdxs)
}

// ReadFile parses the specified columns of a text table file.
func ReadFile(fname string, icolIdxs, fcolIdxs []int) (
	[][]int, [][]float64, error,
) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data, icolIdxs, fcolIdxs)
}

// split splits a byte slice at each separating flag. Faster than
// bytes.Split() because slicing is used instead of allocations and because
// only one separator is used.
//
// Some of the calculations associated with uncommenting are done here for a
// slight performance boost.
func split(data []byte, sep, comm byte) (lines [][]byte, nComm int) {
	n, nComm := 0, 0
	for _, c := range data {
		if c == sep {
			n++
		}
		if c == comm {
			nComm++
		}
	}

	tokens := make([][]byte, n+1)

	idx := 0
	for j := 0; j < n; j++ {
		data = data[idx:]
		idx = bytes.IndexByte(data, sep)
		tokens[j] = data[:idx]
		idx++
	}
	tokens[n] = data[idx:]

	return tokens, nComm
}

// uncomment removes file comments in the form of "data # comment".
// Optimized for the common case where comments are rare and at the start of
// the file.
func uncomment(lines [][]byte, comm byte, nComm int) [][]byte {
	if nComm == 0 {
		return lines
	}

	for i, line := range lines {
		commentStart := bytes.IndexByte(line, comm)
		if commentStart == -1 {
			continue
		}

		lines[i] = line[:commentStart]

		n := 1
		for _, c := range line[commentStart+1:] {
			if c == comm {
				n++
			}
		}

		nComm -= n
		if nComm == 0 {
			return lines
		}
	}

	return lines
}

// trim removes empty lines.
func trim(lines [][]byte, sep byte) [][]byte {
	j := 0

LineLoop:
	for i, line := range lines {
		for _, c := range line {
			if c != sep && c != '\t' && c != '\r' {
				lines[j] = lines[i]
				j++
				continue LineLoop
			}
		}
	}

	return lines[:j]
}

func parse(lines [][]byte, sep byte, icolIdxs, fcolIdxs []int) (
	[][]int, [][]float64, error,
) {
	// Set up output and buffers.

	icols := make([][]int, len(icolIdxs))
	fcols := make([][]float64, len(fcolIdxs))

	for i := range icols {
		icols[i] = make([]int, len(lines))
	}
	for i := range fcols {
		fcols[i] = make([]float64, len(lines))
	}

	if len(lines) == 0 {
		return icols, fcols, nil
	}
	buf := make([][]byte, len(bytes.Fields(lines[0])))

	var err error
	for i, line := range lines {

		// Break line up into fields/words.

		words := fields(line, sep, buf)
		if len(words) != len(buf) {
			return nil, nil, fmt.Errorf(
				"Data (not file) line %d has %d columns, not %d.",
				i+1, len(words), len(buf),
			)
		}

		// Parse strings.

		for j := range icolIdxs {
			icols[j][i], err = strconv.Atoi(
				string(words[icolIdxs[j]]),
			)
			if err != nil {
				return nil, nil, err
			}
		}
		for j := range fcolIdxs {
			fcols[j][i], err = strconv.ParseFloat(
				string(words[fcolIdxs[j]]), 64,
			)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return icols, fcols, nil
}

// fields is an optimized and buffered analog to the standard library's
// bytes.FieldsFunc() function.
func fields(data []byte, sep byte, buf [][]byte) [][]byte {
	n := 0
	inField := false
	for _, c := range data {
		wasInField := inField
		inField = sep != c && c != '\t' && c != '\r'
		if inField && !wasInField {
			n++
		}
	}

	// Lines with more fields than the caller's buffer get a fresh one so
	// the caller can detect the mismatched column count.
	if n > len(buf) {
		buf = make([][]byte, n)
	}

	na := 0
	fieldStart := -1

	for i := 0; i < len(data) && na < n; i++ {
		c := data[i]
		isSep := c == sep || c == '\t' || c == '\r'

		if fieldStart < 0 && !isSep {
			fieldStart = i
			continue
		}

		if fieldStart >= 0 && isSep {
			buf[na] = data[fieldStart:i]
			na++
			fieldStart = -1
		}
	}

	if fieldStart >= 0 {
		buf[na] = data[fieldStart:len(data)]
		na++
	}

	return buf[0:na]
}
