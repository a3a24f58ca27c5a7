package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "shopledger", cfg.MongoDB.DBName)
	require.Equal(t, "0 20 * * *", cfg.Snapshot.CronSchedule)
	require.Equal(t, "UTC", cfg.Snapshot.Timezone)
	require.Equal(t, "$", cfg.Currency.Symbol)
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGODB_DB_NAME", "ledger_test")
	t.Setenv("CURRENCY_SYMBOL", "€")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "ledger_test", cfg.MongoDB.DBName)
	require.Equal(t, "€", cfg.Currency.Symbol)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg = &Config{
		Server:   ServerConfig{Port: "8080"},
		MongoDB:  MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "shopledger"},
		Snapshot: SnapshotConfig{CronSchedule: "0 20 * * *", Timezone: "UTC"},
	}
	require.NoError(t, cfg.Validate())

	cfg.MongoDB.URI = ""
	require.Error(t, cfg.Validate())
}
