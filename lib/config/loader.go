package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvFile - the dotenv file read from the working directory
const DefaultEnvFile = ".env"

// Load - reads the settings from the environment. Variables found in envFile
// are applied only when the environment does not already define them. A
// missing envFile is ignored.
func Load(envFile string) (*Settings, error) {

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errEnvFile("Load", envFile, err)
		}
	}

	settings := new(Settings)

	if err := envconfig.Process("", settings); err != nil {
		return nil, errDecode("Load", err)
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Loader - loads the settings once and hands out copies of them afterwards
type Loader struct {
	envFile  string
	once     sync.Once
	settings Settings
	err      error
}

// NewLoader - creates a new loader reading the given dotenv file
func NewLoader(envFile string) *Loader {

	return &Loader{
		envFile: envFile,
	}
}

// Load - returns a copy of the cached settings, reading the environment on the
// first call only. Changing the copy never changes what later calls return.
func (l *Loader) Load() (Settings, error) {

	l.once.Do(func() {
		var settings *Settings
		if settings, l.err = Load(l.envFile); l.err == nil {
			l.settings = *settings
		}
	})

	return l.settings, l.err
}
