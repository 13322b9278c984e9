package env_vars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/taskflowgo/internal/task"
)

func TestOnRunEnvVars_NamedVariable(t *testing.T) {
	t.Setenv("TASKFLOWGO_TEST_VAR", "present")

	value, err := OnRunEnvVars(context.Background(), task.Args{
		Named: map[string]any{"name": "TASKFLOWGO_TEST_VAR"},
	})
	require.NoError(t, err)
	require.Equal(t, "present", value)
}

func TestOnRunEnvVars_DefaultFallback(t *testing.T) {
	t.Parallel()

	value, err := OnRunEnvVars(context.Background(), task.Args{
		Named: map[string]any{"name": "TASKFLOWGO_SURELY_UNSET", "default": "fallback"},
	})
	require.NoError(t, err)
	require.Equal(t, "fallback", value)
}

func TestOnRunEnvVars_UnsetWithoutDefault(t *testing.T) {
	t.Parallel()

	_, err := OnRunEnvVars(context.Background(), task.Args{
		Named: map[string]any{"name": "TASKFLOWGO_SURELY_UNSET"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "is not set")
}

func TestOnRunEnvVars_NameMustBeString(t *testing.T) {
	t.Parallel()

	_, err := OnRunEnvVars(context.Background(), task.Args{
		Named: map[string]any{"name": 42},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "'name' must be a string")
}

func TestOnRunEnvVars_FullEnvironment(t *testing.T) {
	t.Setenv("TASKFLOWGO_TEST_VAR", "present")

	value, err := OnRunEnvVars(context.Background(), task.Args{})
	require.NoError(t, err)

	envMap, ok := value.(map[string]string)
	require.True(t, ok)
	require.Equal(t, "present", envMap["TASKFLOWGO_TEST_VAR"])
}
