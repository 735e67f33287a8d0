package config

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/scout-plus/scout-ai/src/data"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "WEB_PORT", "AI_PROVIDER", "OPENAI_API_KEY", "CLAUDE_API_KEY",
		"DISCORD_TOKEN", "MYSQL_DSN", "REDIS_URL", "CACHE_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load(nil)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "8001", cfg.WebPort)
	assert.Equal(t, "openai", cfg.AIProvider)
	assert.Empty(t, cfg.OpenAIKey, "missing key is degraded mode, not an error")
	assert.Equal(t, 256, cfg.CacheSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("AI_PROVIDER", "claude")
	t.Setenv("CLAUDE_API_KEY", "ck-123")
	t.Setenv("CACHE_SIZE", "32")

	cfg := Load(nil)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "claude", cfg.AIProvider)
	assert.Equal(t, "ck-123", cfg.ClaudeKey)
	assert.Equal(t, 32, cfg.CacheSize)
}

func newSettingsDB(t *testing.T, rows *sqlmock.Rows) *gorm.DB {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `settings`").WillReturnRows(rows)

	// Later tests must see an empty settings cache again.
	t.Cleanup(func() {
		empty, emptyMock, err := sqlmock.New()
		require.NoError(t, err)
		defer empty.Close()
		edb, err := gorm.Open(mysql.New(mysql.Config{
			Conn:                      empty,
			SkipInitializeWithVersion: true,
		}), &gorm.Config{
			Logger:               logger.Default.LogMode(logger.Silent),
			DisableAutomaticPing: true,
		})
		require.NoError(t, err)
		emptyMock.ExpectQuery("SELECT \\* FROM `settings`").WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "value"}))
		require.NoError(t, data.LoadSettings(edb))
	})

	return db
}

func TestLoad_DBSettingWinsOverEnv(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("WEB_PORT", "")

	db := newSettingsDB(t, sqlmock.NewRows([]string{"id", "name", "value"}).
		AddRow(1, "port", "9999"))

	cfg := Load(db)

	assert.Equal(t, "9999", cfg.Port, "settings table value wins over env")
	assert.Equal(t, "8001", cfg.WebPort, "defaults still apply for settings absent everywhere")
}

func TestLoad_EnvUsedWhenSettingAbsentFromDB(t *testing.T) {
	t.Setenv("AI_PROVIDER", "claude")

	db := newSettingsDB(t, sqlmock.NewRows([]string{"id", "name", "value"}).
		AddRow(1, "port", "9999"))

	cfg := Load(db)

	assert.Equal(t, "claude", cfg.AIProvider)
}

func TestGetSetting_FallbackOrder(t *testing.T) {
	t.Setenv("SCOUTAI_TEST_ENV", "from-env")

	assert.Equal(t, "from-env", getSetting("no_such_setting", "SCOUTAI_TEST_ENV", "fallback"))
	assert.Equal(t, "fallback", getSetting("no_such_setting", "SCOUTAI_TEST_UNSET", "fallback"))
}
