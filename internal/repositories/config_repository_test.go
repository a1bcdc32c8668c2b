package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"elemental/internal/database"
	"elemental/internal/models"
	"elemental/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestConfigRepository_Get_EmptyDatabaseReturnsDefaults(t *testing.T) {
	repo := repositories.NewConfigRepository(openTestDB(t))

	record, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConfig(), *record)
}

func TestConfigRepository_SetThenGetRoundTrips(t *testing.T) {
	repo := repositories.NewConfigRepository(openTestDB(t))
	ctx := context.Background()

	want := models.ConfigRecord{
		Model:     "gpt-4",
		BaseURL:   "http://x",
		SystemMsg: "sys\nline two",
		Examples: []models.ExamplePair{
			{FromStr: "Earth+Water", ResultStr: "Plant"},
			{FromStr: "Fire+Water", ResultStr: "Steam"},
			{FromStr: "Earth+Water", ResultStr: "Plant"},
		},
	}
	require.NoError(t, repo.Set(ctx, &want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestConfigRepository_SetReplacesWholesale(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewConfigRepository(db)
	ctx := context.Background()

	first := models.DefaultConfig()
	require.NoError(t, repo.Set(ctx, &first))

	second := models.ConfigRecord{
		Model:     "llama3",
		BaseURL:   "",
		SystemMsg: "",
		Examples:  []models.ExamplePair{{FromStr: "a", ResultStr: "b"}},
	}
	require.NoError(t, repo.Set(ctx, &second))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, *got)

	var count int64
	require.NoError(t, db.Model(&models.Example{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var row models.AppConfig
	require.NoError(t, db.First(&row, 1).Error)
	assert.Equal(t, 2, row.Version)
}

func TestConfigRepository_SetEmptyExamples(t *testing.T) {
	repo := repositories.NewConfigRepository(openTestDB(t))
	ctx := context.Background()

	record := models.ConfigRecord{Model: "gpt-4", BaseURL: "http://x", SystemMsg: "sys"}
	require.NoError(t, repo.Set(ctx, &record))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Examples)
	assert.NotNil(t, got.Examples)
}

func TestConfigRepository_Set_NilRecord(t *testing.T) {
	repo := repositories.NewConfigRepository(openTestDB(t))

	err := repo.Set(context.Background(), nil)
	assert.ErrorIs(t, err, repositories.ErrStoreWriteFailed)
}

func TestConfigRepository_Get_FillsMissingColumnsFromDefaults(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewConfigRepository(db)

	model := "gpt-4"
	require.NoError(t, db.Create(&models.AppConfig{ID: 1, Version: 1, Model: &model}).Error)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", got.Model)
	assert.Equal(t, models.DefaultBaseURL, got.BaseURL)
	assert.Equal(t, models.DefaultSystemMsg, got.SystemMsg)
	assert.Empty(t, got.Examples)
}

func TestConfigRepository_RemoveExample_FirstMatchOnly(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewConfigRepository(db)
	ctx := context.Background()

	record := models.ConfigRecord{
		Model: "gpt-4",
		Examples: []models.ExamplePair{
			{FromStr: "a", ResultStr: "1"},
			{FromStr: "b", ResultStr: "2"},
			{FromStr: "a", ResultStr: "1"},
			{FromStr: "c", ResultStr: "3"},
		},
	}
	require.NoError(t, repo.Set(ctx, &record))

	require.NoError(t, repo.RemoveExample(ctx, models.ExamplePair{FromStr: "a", ResultStr: "1"}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ExamplePair{
		{FromStr: "b", ResultStr: "2"},
		{FromStr: "a", ResultStr: "1"},
		{FromStr: "c", ResultStr: "3"},
	}, got.Examples)

	var positions []int
	require.NoError(t, db.Model(&models.Example{}).Order("position ASC").Pluck("position", &positions).Error)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestConfigRepository_RemoveExample_NoMatchIsNoop(t *testing.T) {
	repo := repositories.NewConfigRepository(openTestDB(t))
	ctx := context.Background()

	record := models.ConfigRecord{Model: "gpt-4", Examples: []models.ExamplePair{{FromStr: "a", ResultStr: "1"}}}
	require.NoError(t, repo.Set(ctx, &record))

	require.NoError(t, repo.RemoveExample(ctx, models.ExamplePair{FromStr: "a", ResultStr: "2"}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, record.Examples, got.Examples)
}

func TestConfigRepository_RemoveExample_FromDefaults(t *testing.T) {
	repo := repositories.NewConfigRepository(openTestDB(t))
	ctx := context.Background()

	defaults := models.DefaultExamples()
	require.NoError(t, repo.RemoveExample(ctx, defaults[0]))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaults[1:], got.Examples)
	assert.Equal(t, models.DefaultModel, got.Model)
}

func TestConfigRepository_Get_ClosedDatabase(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewConfigRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.Get(context.Background())
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)

	record := models.DefaultConfig()
	assert.ErrorIs(t, repo.Set(context.Background(), &record), repositories.ErrStoreWriteFailed)
}
