package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
)

type fakeCollector struct {
	name      string
	data      interface{}
	err       error
	available bool
}

func (f fakeCollector) Name() string { return f.name }
func (f fakeCollector) Collect(context.Context) (interface{}, error) {
	return f.data, f.err
}
func (f fakeCollector) IsAvailable() bool { return f.available }

func TestRegistry_SkipsUnavailable(t *testing.T) {
	r := NewRegistry(zaptest.NewLogger(t))
	r.Register(fakeCollector{name: "a", available: true})
	r.Register(fakeCollector{name: "b", available: false})

	require.Len(t, r.Collectors(), 1)
	assert.Equal(t, "a", r.Collectors()[0].Name())
}

func TestRegistry_CollectAllMergesResults(t *testing.T) {
	r := NewRegistry(zaptest.NewLogger(t))
	r.Register(fakeCollector{name: "a", data: 1, available: true})
	r.Register(fakeCollector{name: "b", data: "two", available: true})

	results, err := r.CollectAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": "two"}, results)
}

func TestRegistry_CollectAllCombinesErrors(t *testing.T) {
	r := NewRegistry(zaptest.NewLogger(t))
	r.Register(fakeCollector{name: "ok", data: 1, available: true})
	r.Register(fakeCollector{name: "bad1", err: errors.New("boom"), available: true})
	r.Register(fakeCollector{name: "bad2", err: errors.New("bang"), available: true})

	results, err := r.CollectAll(context.Background())
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, map[string]interface{}{"ok": 1}, results)
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry(zaptest.NewLogger(t))

	var names []string
	for _, c := range r.Collectors() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{NameHost, NameMemory, NameCPU, NameUptime}, names)
}
