package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/bytom/timepart/config"
	"github.com/bytom/timepart/util"
)

var initFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the root directory and write the default config.toml",
	Args:  cobra.NoArgs,
	Run:   initFiles,
}

func initFiles(cmd *cobra.Command, args []string) {
	util.ExitOnError(cfg.EnsureRoot(config.RootDir))
	log.WithFields(log.Fields{"module": logModule, "home": config.RootDir}).Info("Initialized timepart")
}
