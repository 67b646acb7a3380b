package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverJSONFile = "jsonfile"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr      string
	StorageDriver string
	DataDir       string
	SQLitePath    string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKINGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":6060")
	v.SetDefault("storage.driver", DriverJSONFile)
	v.SetDefault("storage.data_dir", "_data")
	v.SetDefault("storage.sqlite_path", "./database.db")

	_ = v.BindEnv("http.addr", "BOOKINGS_HTTP_ADDR", "HTTP_ADDR")
	_ = v.BindEnv("storage.driver", "BOOKINGS_STORAGE_DRIVER", "STORAGE_DRIVER")
	_ = v.BindEnv("storage.data_dir", "BOOKINGS_DATA_DIR", "DATA_DIR")
	_ = v.BindEnv("storage.sqlite_path", "BOOKINGS_SQLITE_PATH", "SQLITE_PATH")

	driver := strings.ToLower(strings.TrimSpace(v.GetString("storage.driver")))
	switch driver {
	case DriverJSONFile, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", driver)
	}

	return Config{
		HTTPAddr:      strings.TrimSpace(v.GetString("http.addr")),
		StorageDriver: driver,
		DataDir:       v.GetString("storage.data_dir"),
		SQLitePath:    v.GetString("storage.sqlite_path"),
	}, nil
}
