package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CHART_MONTHS", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("CHART_CACHE_TTL", "")
	t.Setenv("CHART_REFRESH_INTERVAL", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Chart.Months)
	assert.Equal(t, "jalali", cfg.Chart.Calendar)
	assert.Zero(t, cfg.Chart.CacheTTL)
	assert.False(t, cfg.Chart.RefreshEnabled())
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, 1024, cfg.Storage.MaxUploadKB)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CHART_MONTHS", "6")
	t.Setenv("CHART_CACHE_TTL", "90s")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 6, cfg.Chart.Months)
	assert.Equal(t, 90*time.Second, cfg.Chart.CacheTTL)
	assert.True(t, cfg.Storage.MinioUseSSL)
	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
}

func TestChartRefreshEnabled(t *testing.T) {
	cases := []struct {
		name string
		cfg  ChartConfig
		want bool
	}{
		{"cache off", ChartConfig{CacheTTL: 0, RefreshInterval: time.Minute}, false},
		{"interval off", ChartConfig{CacheTTL: time.Minute, RefreshInterval: 0}, false},
		{"negative interval", ChartConfig{CacheTTL: time.Minute, RefreshInterval: -time.Second}, false},
		{"both set", ChartConfig{CacheTTL: time.Minute, RefreshInterval: time.Minute}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.RefreshEnabled())
		})
	}
}

func TestGetDSNPrefersURL(t *testing.T) {
	c := DBConfig{DSN: "postgres://u:p@db/shop"}
	assert.Equal(t, "postgres://u:p@db/shop", c.GetDSN())

	c = DBConfig{Host: "db", User: "u", Password: "p", Name: "shop", Port: "5432", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=shop port=5432 sslmode=disable TimeZone=UTC", c.GetDSN())
}
