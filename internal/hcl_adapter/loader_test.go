package hcl_adapter

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

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actions.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("ACTIONGEN_TEST_OUT", "/generated")

	path := writeProject(t, `
package "robot_actions" {
  source_dir = "robot_actions/action"
  output_dir = "${env.ACTIONGEN_TEST_OUT}/${lower("ROBOT")}"

  action "Fetch" {
    source = "${project_dir}/robot_actions/action/Fetch.action"
  }
}

package "control_msgs" {
  action "GripperCommand" {
    source = "control/GripperCommand.action"
  }
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	expected := &config.Model{
		Path: path,
		Packages: []*config.Package{
			{
				Name:      "robot_actions",
				SourceDir: "robot_actions/action",
				OutputDir: "/generated/robot",
				Actions: []*config.Action{
					{Stem: "Fetch", Source: filepath.Dir(path) + "/robot_actions/action/Fetch.action"},
				},
			},
			{
				Name: "control_msgs",
				Actions: []*config.Action{
					{Stem: "GripperCommand", Source: "control/GripperCommand.action"},
				},
			},
		},
	}
	if diff := cmp.Diff(expected, model); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_InvalidHCLIsRejected(t *testing.T) {
	path := writeProject(t, `package "broken" {`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
	assert.True(t, errors.Is(err, config.ErrInvalidProject))
}

func TestLoad_UnknownAttributeIsRejected(t *testing.T) {
	path := writeProject(t, `
package "p" {
  sources = "typo"
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file")
	assert.True(t, errors.Is(err, config.ErrInvalidProject))
}

func TestLoad_MissingActionSource(t *testing.T) {
	path := writeProject(t, `
package "p" {
  action "Fetch" {}
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ioerr.ErrIO))
}
