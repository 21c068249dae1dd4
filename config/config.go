package config

import (
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"github.com/bytom/timepart/datefmt"
	"github.com/bytom/timepart/locale"
)

type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`
	// Options for services
	Partition  *PartitionConfig  `mapstructure:"partition" toml:"partition"`
	Log        *LogConfig        `mapstructure:"log" toml:"log"`
	Checkpoint *CheckpointConfig `mapstructure:"checkpoint" toml:"checkpoint"`
}

// Default configurable parameters.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Partition:  DefaultPartitionConfig(),
		Log:        DefaultLogConfig(),
		Checkpoint: DefaultCheckpointConfig(),
	}
}

// Set the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

//-----------------------------------------------------------------------------
// BaseConfig
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home" toml:"-"`

	//log level to set
	LogLevel string `mapstructure:"log_level" toml:"log_level"`

	// write logs to rotated files under the log dir instead of stderr
	LogToFile bool `mapstructure:"log_to_file" toml:"log_to_file"`
}

// Default configurable base parameters.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel: "info",
	}
}

// PartitionConfig describes the partition layout being worked on.
type PartitionConfig struct {
	// Template in the datefmt placeholder language, e.g. "data/%Y/%m/%d".
	Template string `mapstructure:"template" toml:"template"`
	// Locale tag such as "en_US"; empty for none.
	Locale string `mapstructure:"locale" toml:"locale"`
	// IANA time zone the template's fields are read in; empty for UTC.
	TimeZone string `mapstructure:"time_zone" toml:"time_zone"`
	// Default step between partitions, in seconds.
	Delta int64 `mapstructure:"delta" toml:"delta"`
	// Directory scanned and watched for partitions.
	Root string `mapstructure:"root" toml:"root"`
}

// Default configurable partition parameters.
func DefaultPartitionConfig() *PartitionConfig {
	return &PartitionConfig{
		Template: "%Y%M%D%H",
		Delta:    3600,
		Root:     "partitions",
	}
}

// Policy builds the calendar policy.
func (p *PartitionConfig) Policy() (*locale.Policy, error) {
	return locale.New(p.Locale, p.TimeZone)
}

// NewDateFormat builds the date format the partition config describes.
func (p *PartitionConfig) NewDateFormat() (*datefmt.DateFormat, error) {
	policy, err := p.Policy()
	if err != nil {
		return nil, err
	}
	return datefmt.New(p.Template, policy), nil
}

// LogConfig controls the rotated log files.
type LogConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
	// Suffix appended to each module's log file, as a datefmt template.
	FileTemplate string `mapstructure:"file_template" toml:"file_template"`
	// Seconds a rotated file is kept.
	MaxAge int64 `mapstructure:"max_age" toml:"max_age"`
	// Seconds between rotations.
	RotationTime int64 `mapstructure:"rotation_time" toml:"rotation_time"`
}

// Default configurable log parameters.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Dir:          "log",
		FileTemplate: "%Y%M%D",
		MaxAge:       604800,
		RotationTime: 86400,
	}
}

type CheckpointConfig struct {
	DBPath string `mapstructure:"db_dir" toml:"db_dir"`
}

// Default configurable checkpoint parameters.
func DefaultCheckpointConfig() *CheckpointConfig {
	return &CheckpointConfig{
		DBPath: "data",
	}
}

func (cfg *Config) LogDir() string {
	return rootify(cfg.Log.Dir, cfg.RootDir)
}

func (cfg *Config) DBDir() string {
	return rootify(cfg.Checkpoint.DBPath, cfg.RootDir)
}

func (cfg *Config) PartitionDir() string {
	return rootify(cfg.Partition.Root, cfg.RootDir)
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// ExpandHome resolves a leading "~" in path.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}

// DefaultDataDir is the default root directory.
func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		log.WithField("err", err).Warning("home directory lookup failed")
		return "./.timepart"
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Timepart")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Timepart")
	default:
		return filepath.Join(home, ".timepart")
	}
}
