package commands

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timepart/partition"
	"github.com/bytom/timepart/util"
)

var rangeLimit int

var nextCmd = &cobra.Command{
	Use:   "next <label> [delta]",
	Short: "Step a label by delta seconds (default partition.delta)",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		delta, err := deltaArg(args, 1)
		util.ExitOnError(err)

		next, err := mustDateFormat().NextPartition(args[0], delta)
		util.ExitOnError(err)
		jww.FEEDBACK.Println(next)
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range <from> <to> [delta]",
	Short: "List the labels from <from> through <to>",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		delta, err := deltaArg(args, 2)
		util.ExitOnError(err)

		labels, err := partition.Range(mustDateFormat(), args[0], args[1], delta, rangeLimit)
		util.ExitOnError(err)
		if len(labels) > 0 {
			jww.FEEDBACK.Println(strings.Join(labels, "\n"))
		}
	},
}

func init() {
	rangeCmd.Flags().IntVar(&rangeLimit, "limit", 10000, "Maximum number of labels, 0 for no limit")
}

// deltaArg reads the step from args[i], falling back to the configured delta.
func deltaArg(args []string, i int) (int64, error) {
	if len(args) <= i {
		return config.Partition.Delta, nil
	}

	delta, err := cast.ToInt64E(args[i])
	if err != nil {
		return 0, errors.Wrapf(err, "invalid delta %q", args[i])
	}
	return delta, nil
}
