package picture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func paris() Picture {
	return New("Paris", "in the", "Spring")
}

func TestNewPadsRows(t *testing.T) {
	p := paris()

	assert.Equal(t, 3, p.Height())
	assert.Equal(t, 6, p.Width())
	assert.Equal(t, []string{"Paris ", "in the", "Spring"}, p.Lines())
	assert.Equal(t, byte(' '), p.At(0, 5))
	assert.Equal(t, byte('S'), p.At(2, 0))
}

func TestNewEmpty(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.Height())
	assert.Equal(t, 0, p.Width())
	assert.Equal(t, "", p.String())
}

func TestAtOutOfRangePanics(t *testing.T) {
	p := paris()
	assert.Panics(t, func() { p.At(3, 0) })
	assert.Panics(t, func() { p.At(0, -1) })
}

func TestFrame(t *testing.T) {
	want := strings.Join([]string{
		"+------+",
		"|Paris |",
		"|in the|",
		"|Spring|",
		"+------+",
	}, "\n") + "\n"

	assert.Equal(t, want, Frame(paris()).String())
}

func TestBeside(t *testing.T) {
	p := paris()
	want := []string{
		"Paris +------+",
		"in the|Paris |",
		"Spring|in the|",
		"      |Spring|",
		"      +------+",
	}

	assert.Equal(t, want, Beside(p, Frame(p)).Lines())
}

func TestAbove(t *testing.T) {
	p := paris()
	q := Frame(p)
	s := Above(q, Beside(p, q))

	want := []string{
		"+------+      ",
		"|Paris |      ",
		"|in the|      ",
		"|Spring|      ",
		"+------+      ",
		"Paris +------+",
		"in the|Paris |",
		"Spring|in the|",
		"      |Spring|",
		"      +------+",
	}
	assert.Equal(t, want, s.Lines())

	framed := Frame(s)
	assert.Equal(t, 12, framed.Height())
	assert.Equal(t, 16, framed.Width())
	assert.Equal(t, "+--------------+", framed.Lines()[0])
	assert.Equal(t, "||Paris |      |", framed.Lines()[2])
	assert.Equal(t, "|      +------+|", framed.Lines()[10])
}

func TestOperationsDoNotShareBuffers(t *testing.T) {
	p := paris()
	c := p.Clone()
	c.set(0, 0, 'X')

	assert.Equal(t, byte('P'), p.At(0, 0))

	f := Frame(p)
	f.set(1, 1, 'Y')
	assert.Equal(t, byte('P'), p.At(0, 0))
}
