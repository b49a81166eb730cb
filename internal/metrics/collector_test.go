package metrics

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/expr"
	"github.com/mesh-intelligence/cowbox/pkg/point"
	"github.com/mesh-intelligence/cowbox/pkg/types"
)

func TestCollectorCountsHandleWorkload(t *testing.T) {
	c := NewCollector(nil)
	opt := cow.WithTracker(c)

	h1 := point.New(10, 20, opt)
	h2 := h1.Copy()
	h3 := h1.Copy()
	h2.SetX(1).SetY(2)

	s, err := c.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, Snapshot{Allocated: 2, Duplicated: 1, Freed: 0, Live: 2}, s)

	h1.Release()
	h2.Release()
	h3.Release()

	s, err = c.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, Snapshot{Allocated: 2, Duplicated: 1, Freed: 2, Live: 0}, s)
}

func TestCollectorCountsExpressionDAG(t *testing.T) {
	c := NewCollector(nil)
	opt := cow.WithTracker(c)

	e1 := expr.Const(5, opt)
	e2 := expr.Binary(types.OpAdd, e1, e1, opt)
	e1.Release()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.allocated))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.live))

	e2.Release()
	assert.Equal(t, 2.0, testutil.ToFloat64(c.freed))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.live))
}

func TestCollectorLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewCollector(logger)

	h := cow.New(1, cow.WithTracker(c))
	id := h.BoxID()
	h.Copy().Write(func(v *int) { *v = 2 })
	h.Release()

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "box allocated"))
	assert.Equal(t, 1, strings.Count(out, "box duplicated"))
	assert.Equal(t, 1, strings.Count(out, "box freed"))
	assert.Contains(t, out, "box="+id)
}
