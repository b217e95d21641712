package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

var (
	configDir      = "haru"
	configFileName = "config.yml"
	dbFileName     = "haru.db"
	logFileName    = "haru.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database, and log file locations.
// Setting HARU_ENV switches to suffixed file names so tests and development
// never touch real data.
func InitializePaths() {
	haruEnv := strings.TrimSpace(os.Getenv("HARU_ENV"))
	if haruEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", haruEnv)
		dbFileName = fmt.Sprintf("haru_%s.db", haruEnv)
		logFileName = fmt.Sprintf("haru_%s.log", haruEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}
