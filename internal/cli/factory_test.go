package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connormcn37/pipe-graph/internal/compiler"
	"github.com/connormcn37/pipe-graph/internal/logging"
)

const demoGraph = `
name: demo
nodes:
  - name: level
    kind: constant
    params: {value: 0.5}
  - name: fill
    kind: solid
    params: {width: 2, height: 2, channels: 3}
    inputs: [level]
`

func TestBuildEngine(t *testing.T) {
	plan, err := compiler.NewParser().Parse([]byte(demoGraph))
	require.NoError(t, err)

	engine, err := BuildEngine(plan, BuildOptions{Workers: 2}, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, engine.Len())

	// First tick: the fill node still reads the boot void. Second tick:
	// the committed level reaches it.
	ctx := context.Background()
	require.NoError(t, engine.Step(ctx))
	require.NoError(t, engine.Step(ctx))

	sig, err := engine.Output(1)
	require.NoError(t, err)
	frame, ok := sig.Frame()
	require.True(t, ok, "fill node should emit a frame")
	assert.Equal(t, byte(127), frame.Data()[0])
}

func TestBuildEngineUnknownKind(t *testing.T) {
	plan, err := compiler.NewParser().Parse([]byte(`
nodes:
  - name: mystery
    kind: warp
`))
	require.NoError(t, err)

	_, err = BuildEngine(plan, BuildOptions{}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error building node mystery")
	assert.Contains(t, err.Error(), "node kind not found")
}

func TestBuildEngineBadParams(t *testing.T) {
	plan, err := compiler.NewParser().Parse([]byte(`
nodes:
  - name: fill
    kind: solid
    params: {width: -4, height: 2, channels: 3}
`))
	require.NoError(t, err)

	_, err = BuildEngine(plan, BuildOptions{}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error building node fill")
}

func TestLoadEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoGraph), 0644))

	engine, err := LoadEngine(path, BuildOptions{}, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, engine.Len())
}

func TestLoadEngineMissingFile(t *testing.T) {
	_, err := LoadEngine(filepath.Join(t.TempDir(), "absent.yaml"), BuildOptions{}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read graph definition")
}
