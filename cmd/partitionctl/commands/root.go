package commands

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	cfg "github.com/bytom/timepart/config"
	"github.com/bytom/timepart/datefmt"
	tlog "github.com/bytom/timepart/log"
	"github.com/bytom/timepart/util"
)

const (
	logModule = "cmd"
	debugEnv  = "TIMEPART_DEBUG"
)

var (
	config  = cfg.DefaultConfig()
	logHook *tlog.Hook
)

var RootCmd = &cobra.Command{
	Use:   "partitionctl",
	Short: "Format, parse and step time-partitioned names",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		home, err := cfg.ExpandHome(viper.GetString("home"))
		if err != nil {
			return err
		}

		viper.SetConfigFile(filepath.Join(home, "config.toml"))
		if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			return err
		}

		if err := viper.Unmarshal(config); err != nil {
			return err
		}
		config.SetRoot(home)

		if os.Getenv(debugEnv) != "" {
			setDebugLogger()
		} else {
			setLogLevel(config.LogLevel)
		}

		if config.LogToFile && logHook == nil {
			if logHook, err = tlog.InitLogFile(config); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	RootCmd.PersistentFlags().String("home", cfg.DefaultDataDir(), "Root directory for config, checkpoints and logs")
	RootCmd.PersistentFlags().String("log_level", config.LogLevel, "Select log level(debug, info, warn, error or fatal")
	RootCmd.PersistentFlags().Bool("log_to_file", config.LogToFile, "Write logs to rotated files under the log directory")

	RootCmd.PersistentFlags().String("partition.template", config.Partition.Template, "Partition template, e.g. data/%Y/%m/%d")
	RootCmd.PersistentFlags().String("partition.locale", config.Partition.Locale, "Locale tag, e.g. en_US")
	RootCmd.PersistentFlags().String("partition.time_zone", config.Partition.TimeZone, "IANA time zone the template is read in")
	RootCmd.PersistentFlags().Int64("partition.delta", config.Partition.Delta, "Default step between partitions in seconds")
	RootCmd.PersistentFlags().String("partition.root", config.Partition.Root, "Directory holding the partitions")

	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	AddCommands()
	_, err := RootCmd.ExecuteC()
	closeLogHook()
	if err != nil {
		os.Exit(util.ErrLocalExe)
	}
}

func closeLogHook() {
	if logHook == nil {
		return
	}

	if err := logHook.Close(); err != nil {
		jww.ERROR.Println(err)
	}
	logHook = nil
}

// AddCommands adds child commands to the root command.
func AddCommands() {
	RootCmd.AddCommand(initFilesCmd)

	RootCmd.AddCommand(formatCmd)
	RootCmd.AddCommand(parseCmd)
	RootCmd.AddCommand(matchCmd)
	RootCmd.AddCommand(nextCmd)
	RootCmd.AddCommand(rangeCmd)

	RootCmd.AddCommand(scanCmd)
	RootCmd.AddCommand(watchCmd)

	RootCmd.AddCommand(checkpointCmd)

	RootCmd.AddCommand(versionCmd)
}

// setDebugLogger reports the calling file, function and line on every entry.
func setDebugLogger() {
	log.SetReportCaller(true)
	log.SetLevel(log.DebugLevel)
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func mustDateFormat() *datefmt.DateFormat {
	f, err := config.Partition.NewDateFormat()
	util.ExitOnError(err)
	return f
}
