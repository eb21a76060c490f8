package yaml_adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K4R-IAI/UROSActionLib/internal/config"
	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
)

func writeAndLoad(t *testing.T, content string) (*config.Model, string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	model, err := NewLoader().Load(context.Background(), path)
	return model, path, err
}

func TestLoad(t *testing.T) {
	t.Setenv("ACTIONGEN_TEST_OUT", "/generated")

	model, path, err := writeAndLoad(t, `
packages:
  - name: robot_actions
    source_dir: robot_actions/action
    output_dir: ${ACTIONGEN_TEST_OUT}/robot_actions/msg
    actions:
      - stem: Fetch
        source: robot_actions/action/Fetch.action
  - name: control_msgs
    actions:
      - source: control/GripperCommand.action
`)
	require.NoError(t, err)

	expected := &config.Model{
		Path: path,
		Packages: []*config.Package{
			{
				Name:      "robot_actions",
				SourceDir: "robot_actions/action",
				OutputDir: "/generated/robot_actions/msg",
				Actions:   []*config.Action{{Stem: "Fetch", Source: "robot_actions/action/Fetch.action"}},
			},
			{
				Name:    "control_msgs",
				Actions: []*config.Action{{Source: "control/GripperCommand.action"}},
			},
		},
	}
	if diff := cmp.Diff(expected, model); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	model, _, err := writeAndLoad(t, "")
	require.NoError(t, err)
	assert.Empty(t, model.Packages)
}

func TestLoad_UnknownKeyIsRejected(t *testing.T) {
	_, _, err := writeAndLoad(t, "packages:\n  - name: p\n    sources: typo\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode YAML file")
	assert.True(t, errors.Is(err, config.ErrInvalidProject))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ioerr.ErrIO))
}
