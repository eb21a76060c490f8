package msggen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K4R-IAI/UROSActionLib/internal/actiondef"
	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
)

var fetch = Identity{Package: "robot_actions", Stem: "Fetch"}

func fetchDefinition(t *testing.T) *actiondef.Definition {
	t.Helper()
	def, err := actiondef.Parse([]string{"# comment", "int32 x", "---", "bool success", "---", "Header header"})
	require.NoError(t, err)
	return def
}

func TestBuildAll(t *testing.T) {
	docs := BuildAll(fetch, fetchDefinition(t))

	expected := []Document{
		{FileName: "FetchActionGoal.msg", Lines: []string{
			"std_msgs/Header header",
			"actionlib_msgs/GoalID goal_id",
			"robot_actions/FetchGoal goal",
		}},
		{FileName: "FetchGoal.msg", Lines: []string{"int32 x"}},
		{FileName: "FetchActionResult.msg", Lines: []string{
			"std_msgs/Header header",
			"actionlib_msgs/GoalStatus goal_status",
			"robot_actions/FetchActionResultResult result",
		}},
		{FileName: "FetchResult.msg", Lines: []string{"std_msgs/Header header", "bool success"}},
		{FileName: "FetchActionFeedback.msg", Lines: []string{
			"std_msgs/Header header",
			"actionlib_msgs/GoalStatus goal_status",
			"robot_actions/FetchActionFeedback feedback",
		}},
		{FileName: "FetchFeedback.msg", Lines: []string{"std_msgs/Header header"}},
	}

	if diff := cmp.Diff(expected, docs); diff != "" {
		t.Errorf("BuildAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	section := []string{"int32 a", "int32 b"}
	for _, v := range Variants {
		first := v.Build(fetch, section)
		second := v.Build(fetch, section)
		assert.Equal(t, first.Bytes(), second.Bytes(), v.Suffix)
	}
	assert.Equal(t, []string{"int32 a", "int32 b"}, section, "Build must not modify its input")
}

func TestBuild_WrapperIgnoresSection(t *testing.T) {
	doc := Variants[0].Build(fetch, []string{"int32 ignored"})
	assert.NotContains(t, doc.Lines, "int32 ignored")
}

func TestBuild_EmptySection(t *testing.T) {
	def, err := actiondef.Parse([]string{"int32 order", "---", "int32[] sequence", "---"})
	require.NoError(t, err)

	docs := BuildAll(Identity{Package: "demo", Stem: "Fibonacci"}, def)
	feedback := docs[len(docs)-1]
	assert.Equal(t, "FibonacciFeedback.msg", feedback.FileName)
	assert.Empty(t, feedback.Lines)
	assert.Empty(t, feedback.Bytes())
}

func TestDocument_Bytes(t *testing.T) {
	doc := Document{FileName: "X.msg", Lines: []string{"int32 a", "int32 b"}}
	assert.Equal(t, "int32 a\nint32 b\n", string(doc.Bytes()))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "FetchGoal.msg")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	err := Save(Document{FileName: "FetchGoal.msg", Lines: []string{"int32 x"}}, dir)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int32 x\n", string(content))
}

func TestSave_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "msg")

	err := Save(Document{FileName: "FetchGoal.msg"}, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ioerr.ErrIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
