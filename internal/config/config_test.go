package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlp/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// newFlags declares the flags the CLI binds, unparsed.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data", "", "")
	fs.StringSlice("resources", nil, "")
	fs.StringSlice("prices", nil, "")
	fs.String("rule", "dantzig", "")
	fs.Int("max-iterations", 10000, "")
	fs.Duration("time-limit", 0, "")
	fs.String("log-level", "info", "")

	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Data)
	assert.Empty(t, cfg.Resources)
	assert.Equal(t, "dantzig", cfg.Solver.Rule)
	assert.Equal(t, 10000, cfg.Solver.MaxIterations)
	assert.Zero(t, cfg.Solver.TimeLimit)
	assert.Equal(t, 1e-9, cfg.Solver.Epsilon)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.ErrorIs(t, cfg.RequireProblem(), config.ErrNoResources)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "lvlp.yaml", `
data: feed.csv
resources: [20, 16, 12, 8]
prices: [10, 12, 15, 8, 9.5]
solver:
  rule: Bland
  max_iterations: 50
  time_limit: 2s
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "feed.csv", cfg.Data)
	assert.Equal(t, []float64{20, 16, 12, 8}, cfg.Resources)
	assert.Equal(t, []float64{10, 12, 15, 8, 9.5}, cfg.Prices)
	assert.Equal(t, "bland", cfg.Solver.Rule)
	assert.Equal(t, 50, cfg.Solver.MaxIterations)
	assert.Equal(t, 2*time.Second, cfg.Solver.TimeLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Logging().Format)
	assert.NoError(t, cfg.RequireProblem())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "lvlp.toml", `
resources = [1, 2]
prices = [3]

[solver]
max_iterations = 7
`)
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, cfg.Resources)
	assert.Equal(t, 7, cfg.Solver.MaxIterations)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "lvlp.yaml", "solver:\n  max_iterations: 50\n")
	t.Setenv("LVLP_SOLVER_MAX_ITERATIONS", "75")
	t.Setenv("LVLP_RESOURCES", "1,2,3")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.Solver.MaxIterations)
	assert.Equal(t, []float64{1, 2, 3}, cfg.Resources)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("LVLP_SOLVER_RULE", "bland")
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{
		"--rule", "dantzig",
		"--resources", "20,16,12,8",
		"--prices", "10,12.5",
		"--time-limit", "1500ms",
	}))

	cfg, err := config.Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "dantzig", cfg.Solver.Rule)
	assert.Equal(t, []float64{20, 16, 12, 8}, cfg.Resources)
	assert.Equal(t, []float64{10, 12.5}, cfg.Prices)
	assert.Equal(t, 1500*time.Millisecond, cfg.Solver.TimeLimit)
}

func TestLoad_UnsetFlagKeepsEnv(t *testing.T) {
	t.Setenv("LVLP_SOLVER_RULE", "bland")
	fs := newFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := config.Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "bland", cfg.Solver.Rule)
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"unknown rule":      "solver:\n  rule: steepest\n",
		"zero iterations":   "solver:\n  max_iterations: 0\n",
		"negative resource": "resources: [1, -2]\n",
		"unknown log level": "log:\n  level: loud\n",
		"negative time":     "solver:\n  time_limit: -1s\n",
		"infinite epsilon":  "solver:\n  epsilon: .inf\n",
		"NaN epsilon":       "solver:\n  epsilon: .nan\n",
		"epsilon too large": "solver:\n  epsilon: 1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "lvlp.yaml", body), nil)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs), "want validation errors, got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"), nil)
	require.Error(t, err)
}

func TestRequireProblem(t *testing.T) {
	cfg := config.Config{Resources: []float64{1}}
	require.ErrorIs(t, cfg.RequireProblem(), config.ErrNoPrices)

	cfg.Prices = []float64{1}
	require.NoError(t, cfg.RequireProblem())
}
