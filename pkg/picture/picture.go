// Package picture composes rectangular character pictures. Pictures are
// plain values: every operation builds a new buffer and nothing is shared.
package picture

import "strings"

// Picture is a height x width grid of bytes stored row-major. Short rows
// are padded with spaces.
type Picture struct {
	height int
	width  int
	data   []byte
}

// New returns a picture with one row per line, as wide as the longest line.
func New(lines ...string) Picture {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	p := blank(len(lines), w)
	for i, l := range lines {
		copy(p.data[i*w:], l)
	}
	return p
}

func blank(h, w int) Picture {
	data := make([]byte, h*w)
	for i := range data {
		data[i] = ' '
	}
	return Picture{height: h, width: w, data: data}
}

// Height returns the number of rows.
func (p Picture) Height() int { return p.height }

// Width returns the number of columns.
func (p Picture) Width() int { return p.width }

// At returns the byte at row, col.
func (p Picture) At(row, col int) byte {
	return p.data[p.index(row, col)]
}

func (p Picture) index(row, col int) int {
	if row < 0 || row >= p.height || col < 0 || col >= p.width {
		panic("picture: position out of range")
	}
	return row*p.width + col
}

func (p Picture) set(row, col int, c byte) {
	p.data[p.index(row, col)] = c
}

// copyBlock copies src into p with its top-left corner at row, col.
func (p Picture) copyBlock(row, col int, src Picture) {
	for i := 0; i < src.height; i++ {
		copy(p.data[(row+i)*p.width+col:], src.data[i*src.width:(i+1)*src.width])
	}
}

// Clone returns a deep copy of p.
func (p Picture) Clone() Picture {
	r := Picture{height: p.height, width: p.width, data: make([]byte, len(p.data))}
	copy(r.data, p.data)
	return r
}

// Frame returns p surrounded by a border of '+' corners, '-' edges and
// '|' sides.
func Frame(p Picture) Picture {
	r := blank(p.height+2, p.width+2)
	for i := 1; i < r.height-1; i++ {
		r.set(i, 0, '|')
		r.set(i, r.width-1, '|')
	}
	for j := 1; j < r.width-1; j++ {
		r.set(0, j, '-')
		r.set(r.height-1, j, '-')
	}
	for _, c := range [][2]int{{0, 0}, {0, r.width - 1}, {r.height - 1, 0}, {r.height - 1, r.width - 1}} {
		r.set(c[0], c[1], '+')
	}
	r.copyBlock(1, 1, p)
	return r
}

// Above returns top stacked over bottom, left-aligned.
func Above(top, bottom Picture) Picture {
	r := blank(top.height+bottom.height, max(top.width, bottom.width))
	r.copyBlock(0, 0, top)
	r.copyBlock(top.height, 0, bottom)
	return r
}

// Beside returns left and right side by side, top-aligned.
func Beside(left, right Picture) Picture {
	r := blank(max(left.height, right.height), left.width+right.width)
	r.copyBlock(0, 0, left)
	r.copyBlock(0, left.width, right)
	return r
}

// Lines returns the rows of p, padding included.
func (p Picture) Lines() []string {
	lines := make([]string, p.height)
	for i := range lines {
		lines[i] = string(p.data[i*p.width : (i+1)*p.width])
	}
	return lines
}

// String returns the rows of p, each followed by a newline.
func (p Picture) String() string {
	var b strings.Builder
	for _, l := range p.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
