package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

var cfgFile string

// Keys of the configuration file and their NBS_* environment variables.
const (
	KeyIncludeSubslides = "include_subslides"
	KeySkipTypes        = "skip_types"
	KeyShowStatus       = "show_status"
	KeySpacerLines      = "spacer_lines"
	KeyDataDir          = "data_dir"
	KeyLogLevel         = "log_level"
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "nbs")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("NBS")
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			cobra.CheckErr(err)
		}
	}
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	defaults := models.DefaultConfig()
	v.SetDefault(KeyIncludeSubslides, defaults.IncludeSubslides)
	v.SetDefault(KeySkipTypes, []string{})
	v.SetDefault(KeyShowStatus, defaults.ShowStatus)
	v.SetDefault(KeySpacerLines, defaults.SpacerLines)
	v.SetDefault(KeyDataDir, defaultDataDir())
	v.SetDefault(KeyLogLevel, "warn")
}

// defaultDataDir resolves the home directory the same way InitConfig does;
// without one it falls back to the temp directory.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "nbs")
	}
	return filepath.Join(home, ".local", "share", "nbs")
}

// Settings reads the slide settings from viper every time they are
// requested, so edits to the environment or config take effect on the next
// command.
type Settings struct {
	v      *viper.Viper
	logger logrus.FieldLogger
}

// NewSettings returns settings backed by v; nil means the global viper.
func NewSettings(v *viper.Viper, logger logrus.FieldLogger) *Settings {
	if v == nil {
		v = viper.GetViper()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Settings{v: v, logger: logger}
}

func (s *Settings) Current() models.Config {
	cfg := models.Config{
		IncludeSubslides: s.v.GetBool(KeyIncludeSubslides),
		ShowStatus:       s.v.GetBool(KeyShowStatus),
		SpacerLines:      s.v.GetInt(KeySpacerLines),
		SkipTypes:        []models.SlideType{},
	}
	if cfg.SpacerLines < 1 {
		cfg.SpacerLines = models.DefaultSpacerLines
	}
	for _, raw := range s.skipTypes() {
		t := models.SlideType(strings.ToLower(strings.TrimSpace(raw)))
		if !t.Known() {
			s.logger.WithField("skip_type", raw).Warn("ignoring unknown slide type in skip_types")
			continue
		}
		cfg.SkipTypes = append(cfg.SkipTypes, t)
	}
	return cfg
}

// skipTypes accepts a YAML list or a comma separated string (NBS_SKIP_TYPES).
func (s *Settings) skipTypes() []string {
	var out []string
	for _, item := range s.v.GetStringSlice(KeySkipTypes) {
		for _, part := range strings.Split(item, ",") {
			if strings.TrimSpace(part) != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// DataDir is where the deck catalog lives.
func (s *Settings) DataDir() string {
	return s.v.GetString(KeyDataDir)
}

// Effective is the resolved configuration as printed by `nbs config`.
type Effective struct {
	models.Config `yaml:",inline"`
	DataDir       string `yaml:"data_dir"`
	LogLevel      string `yaml:"log_level"`
	ConfigFile    string `yaml:"config_file,omitempty"`
}

func (s *Settings) Effective() Effective {
	return Effective{
		Config:     s.Current(),
		DataDir:    s.DataDir(),
		LogLevel:   s.v.GetString(KeyLogLevel),
		ConfigFile: s.v.ConfigFileUsed(),
	}
}

// NewLogger creates the stderr logger at the configured level.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(viper.GetString(KeyLogLevel))
	if err != nil {
		level = logrus.WarnLevel // Keep it quiet unless there are issues.
	}
	logger.SetLevel(level)
	return logger
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nbs/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag(KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))
}
