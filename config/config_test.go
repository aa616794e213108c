package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/resample/config"
	"github.com/katalvlaran/resample/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullDocument(t *testing.T) {
	yamlConfig := `
dataset_size: 768
strategy:
  kind: repeated
  seed: 11
  test_fraction: 0.25
  repeats: 4
`
	cfg, err := config.Parse([]byte(yamlConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 768, cfg.DatasetSize)
	s, err := cfg.BuildStrategy()
	require.NoError(t, err)
	assert.Equal(t, split.RepeatedSplitStrategy{Repeats: 4, TestFraction: 0.25, Seed: 11}, s)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte("dataset_size: 150\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Strategy, cfg.Strategy)

	s, err := cfg.BuildStrategy()
	require.NoError(t, err)
	assert.Equal(t, split.KFoldStrategy{K: 10, Seed: 7}, s)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
	assert.ErrorIs(t, cfg.Validate(), split.ErrEmptyDataset)
}

func TestParse_ExplicitZeroSeedAndNoShuffle(t *testing.T) {
	yamlConfig := `
dataset_size: 9
strategy:
  kind: kfold
  k: 3
  seed: 0
  shuffle: false
`
	cfg, err := config.Parse([]byte(yamlConfig))
	require.NoError(t, err)
	s, err := cfg.BuildStrategy()
	require.NoError(t, err)
	assert.Equal(t, split.KFoldStrategy{K: 3, Seed: 0, NoShuffle: true}, s)
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"unknown top-level key", "dataset_size: 10\nfolds: 3\n"},
		{"unknown strategy key", "strategy:\n  kind: kfold\n  stratify: true\n"},
		{"wrong type", "dataset_size: many\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tc.doc))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "dataset_size: 10\nstrategy:\n  kind: bootstrap\n", config.ErrUnknownKind},
		{"k above n", "dataset_size: 5\nstrategy:\n  kind: kfold\n  k: 6\n", split.ErrInvalidK},
		{"bad fraction", "dataset_size: 5\nstrategy:\n  kind: holdout\n  test_fraction: 1.5\n", split.ErrInvalidFraction},
		{"zero repeats", "dataset_size: 5\nstrategy:\n  kind: repeated\n  repeats: 0\n", split.ErrInvalidRepeats},
		{"negative size", "dataset_size: -1\nstrategy:\n  kind: loo\n", split.ErrEmptyDataset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tc.doc))
			require.NoError(t, err)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset_size: 20\nstrategy:\n  kind: loo\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	s, err := cfg.BuildStrategy()
	require.NoError(t, err)
	assert.Equal(t, split.LeaveOneOutStrategy{}, s)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
