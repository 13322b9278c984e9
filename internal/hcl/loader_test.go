package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "pipeline.hcl", `
task "print" "greet" {
  arguments {
    message = "hello"
    retries = 3
    verbose = true
    tags    = ["a", "b"]
    limits  = { cpu = 2, mem = 512 }
  }
}

task "print" "farewell" {
  positional = [1, "two", 3.5]

  dependency {
    task   = "greet"
    as_arg = true
  }

  dependency {
    task     = "greet"
    as_named = "greeting"
  }
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Tasks, 2)

	greet := model.Tasks[0]
	require.Equal(t, "print", greet.RunnerType)
	require.Equal(t, "greet", greet.Name)
	require.Equal(t, "hello", greet.Arguments["message"])
	require.Equal(t, int64(3), greet.Arguments["retries"])
	require.Equal(t, true, greet.Arguments["verbose"])
	require.Equal(t, []any{"a", "b"}, greet.Arguments["tags"])
	require.Equal(t, map[string]any{"cpu": int64(2), "mem": int64(512)}, greet.Arguments["limits"])
	require.Empty(t, greet.Dependencies)

	farewell := model.Tasks[1]
	require.Equal(t, "farewell", farewell.Name)
	require.Equal(t, []any{int64(1), "two", 3.5}, farewell.Positional)
	require.Len(t, farewell.Dependencies, 2)
	require.Equal(t, "greet", farewell.Dependencies[0].Task)
	require.True(t, farewell.Dependencies[0].AsArg)
	require.Empty(t, farewell.Dependencies[0].AsNamed)
	require.Equal(t, "greeting", farewell.Dependencies[1].AsNamed)
	require.False(t, farewell.Dependencies[1].AsArg)
}

func TestLoad_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.hcl", `
task "print" "second" {}
`)
	writeFile(t, dir, "a.hcl", `
task "print" "first" {}
`)
	writeFile(t, dir, "notes.txt", "not a pipeline file")

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Tasks, 2)

	// Directory scans are sorted, so a.hcl contributes before b.hcl.
	require.Equal(t, "first", model.Tasks[0].Name)
	require.Equal(t, "second", model.Tasks[1].Name)
}

func TestLoad_ParseError(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "broken.hcl", `task "print" "x" {`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access config path")
}

func TestLoad_PositionalMustBeList(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.hcl", `
task "print" "x" {
  positional = "not-a-list"
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "positional must be a list")
}

func TestLoad_TaskWithoutArguments(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bare.hcl", `
task "delay" "pause" {}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Tasks, 1)
	require.Nil(t, model.Tasks[0].Arguments)
	require.Nil(t, model.Tasks[0].Positional)
}
