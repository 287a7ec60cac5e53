package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "modscan"

var (
	appDir = ""
	once   sync.Once
)

func init() {
	if appDir = os.Getenv("MODSCAN_DB_PATH"); appDir == "" {
		dataDir, err := os.UserCacheDir()
		cobra.CheckErr(err)

		appDir = filepath.Join(dataDir, appName)
	}
}

func GetApplicationDirectory() string {
	once.Do(makeDirIfNotExists(appDir))

	return appDir
}

// GetCatalogPath returns the default location of the scan catalog
// database.
func GetCatalogPath() string {
	return filepath.Join(GetApplicationDirectory(), appName+".db")
}

func makeDirIfNotExists(dir string) func() {
	return func() {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}
}

// InitViper seeds configuration defaults and wires the MODSCAN_*
// environment variables. An optional config file is read from the
// user config directory when present.
func InitViper() {
	viper.SetDefault("providers", []string{"golist", "gosyntax", "linescan"})
	viper.SetDefault("exclude_core", false)
	viper.SetDefault("corelist.disabled", false)
	viper.SetDefault("catalog.path", GetCatalogPath())

	viper.SetEnvPrefix("MODSCAN")
	viper.AutomaticEnv()

	if cfgDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(cfgDir, appName))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// A missing config file is the normal case.
		_ = viper.ReadInConfig()
	}
}
