package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prefkit/prefkit/lib/codec"
	"github.com/prefkit/prefkit/lib/store"
	"github.com/prefkit/prefkit/lib/store/filestore"
	"github.com/prefkit/prefkit/lib/store/instrument"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var b strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		if lineWidth > 0 && lineWidth+1+len(word) > Wrap {
			b.WriteByte('\n')
			lineWidth = 0
		} else if lineWidth > 0 {
			b.WriteByte(' ')
			lineWidth++
		}
		b.WriteString(word)
		lineWidth += len(word)
	}

	return b.String()
}

// SetupStoreFlags adds the common store selection flags to a command
func SetupStoreFlags(cmd *cobra.Command) {
	key := "file"
	cmd.PersistentFlags().String(key, "", WrapString("Path to the preference snapshot file (defaults to a prefkit dir below the user config dir)"))

	key = "codec"
	cmd.PersistentFlags().String(key, "json", WrapString("Snapshot codec to use (json or gob)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("Log level (debug, info, warn, error)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("prefkit")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// OpenStore opens the file-backed preference store selected by the current
// configuration, wrapped with operation metrics.
func OpenStore() (store.Store, error) {
	if lvl, err := logrus.ParseLevel(viper.GetString("log-level")); err == nil {
		logrus.SetLevel(lvl)
	}

	path := viper.GetString("file")
	if path == "" {
		var err error
		if path, err = filestore.DefaultPath("prefkit"); err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	c, err := codec.New(viper.GetString("codec"))
	if err != nil {
		return nil, err
	}

	s, err := filestore.Open(path, c)
	if err != nil {
		return nil, err
	}

	logrus.WithField("path", path).Debug("opened preference store")
	return instrument.NewInstrumentedStore("file", s), nil
}
