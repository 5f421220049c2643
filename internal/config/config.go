package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	DataDir string

	DBDriver string
	DBDSN    string

	Lang         string
	HistoryLimit int

	EnableAnalytics bool
}

func FromEnv() Config {
	dataDir := envOr("MAQAMAT_DATA_DIR", defaultDataDir())
	return Config{
		DataDir:         dataDir,
		DBDriver:        envOr("MAQAMAT_DB_DRIVER", "sqlite"),
		DBDSN:           envOr("MAQAMAT_DB_DSN", ""),
		Lang:            envOr("MAQAMAT_LANG", "en"),
		HistoryLimit:    envInt("MAQAMAT_HISTORY_LIMIT", 50),
		EnableAnalytics: envBool("MAQAMAT_ANALYTICS", true),
	}
}

// SQLiteDSN is the default database location under the data dir, used when
// MAQAMAT_DB_DSN is unset and the driver is sqlite.
func (c Config) SQLiteDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	path := filepath.Join(c.DataDir, "maqamat.db")
	return "file:" + path + "?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
}

func defaultDataDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "maqamat")
	}
	return "./data"
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
