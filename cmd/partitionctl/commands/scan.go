package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timepart/datefmt"
	"github.com/bytom/timepart/partition"
	"github.com/bytom/timepart/util"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List the partitions below dir (default partition.root)",
	Args:  cobra.RangeArgs(0, 1),
	Run: func(cmd *cobra.Command, args []string) {
		lines, err := scanPartitions(afero.NewOsFs(), mustDateFormat(), dirArg(args))
		util.ExitOnError(err)
		for _, line := range lines {
			jww.FEEDBACK.Println(line)
		}
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Print partitions as they are created in dir (default partition.root)",
	Args:  cobra.RangeArgs(0, 1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := dirArg(args)
		w, err := partition.NewWatcher(mustDateFormat(), dir)
		util.ExitOnError(err)
		defer w.Close()

		log.WithFields(log.Fields{"module": logModule, "dir": dir}).Info("watching for partitions")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		for {
			select {
			case p := <-w.Events():
				jww.FEEDBACK.Println(partitionLine(p))
			case err := <-w.Errors():
				log.WithFields(log.Fields{"module": logModule, "err": err}).Error("watch failed")
			case <-sig:
				return
			}
		}
	},
}

func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.PartitionDir()
}

func scanPartitions(fs afero.Fs, f *datefmt.DateFormat, dir string) ([]string, error) {
	parts, err := partition.NewScanner(fs, f).Scan(dir)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, partitionLine(p))
	}
	return lines, nil
}

func partitionLine(p partition.Partition) string {
	return fmt.Sprintf("%s\t%s", p.Label, p.Time.Format(time.RFC3339))
}
