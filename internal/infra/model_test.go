package infra

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farecast/internal/config"
	"farecast/internal/modules/predictor"
)

func TestLoadModel_File(t *testing.T) {
	var cfg config.Config
	cfg.Model.Source = config.ModelSourceFile
	cfg.Model.Path = filepath.Join("..", "..", "ny_taxifare_predictor.json")

	m, err := LoadModel(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, predictor.KindLinear, m.Info.Kind)
	assert.Len(t, m.Info.Checksum, 40)

	row := make([]float64, 13)
	row[5], row[10] = 2012, 1
	out, err := m.Predict(context.Background(), [][]float64{row})
	require.NoError(t, err)
	assert.Greater(t, out[0], 0.0)
}

func TestLoadModel_MissingFile(t *testing.T) {
	var cfg config.Config
	cfg.Model.Source = config.ModelSourceFile
	cfg.Model.Path = filepath.Join(t.TempDir(), "missing.json")

	_, err := LoadModel(context.Background(), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadModel_UnknownSource(t *testing.T) {
	var cfg config.Config
	cfg.Model.Source = "s3"
	_, err := LoadModel(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		log, err := NewLogger(env, "fare-api")
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}
