package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timepart/database"
	"github.com/bytom/timepart/util"
)

var checkpointCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "Manage named partition checkpoints",
}

var getCheckpointCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a checkpoint",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(s *database.CheckpointStore) (interface{}, error) {
			return s.Get(args[0])
		})
	},
}

var setCheckpointCmd = &cobra.Command{
	Use:   "set <name> <label>",
	Short: "Store a label under a checkpoint name",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		f := mustDateFormat()
		withStore(func(s *database.CheckpointStore) (interface{}, error) {
			return s.Set(args[0], f, args[1])
		})
	},
}

var advanceCheckpointCmd = &cobra.Command{
	Use:   "advance <name> [delta]",
	Short: "Move a checkpoint to its next partition",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		delta, err := deltaArg(args, 1)
		util.ExitOnError(err)

		f := mustDateFormat()
		withStore(func(s *database.CheckpointStore) (interface{}, error) {
			return s.Advance(args[0], f, delta)
		})
	},
}

var listCheckpointsCmd = &cobra.Command{
	Use:   "list",
	Short: "List every checkpoint",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(s *database.CheckpointStore) (interface{}, error) {
			return s.List()
		})
	},
}

var deleteCheckpointCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a checkpoint",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(func(s *database.CheckpointStore) (interface{}, error) {
			return nil, s.Delete(args[0])
		})
	},
}

func init() {
	checkpointCmd.AddCommand(getCheckpointCmd)
	checkpointCmd.AddCommand(setCheckpointCmd)
	checkpointCmd.AddCommand(advanceCheckpointCmd)
	checkpointCmd.AddCommand(listCheckpointsCmd)
	checkpointCmd.AddCommand(deleteCheckpointCmd)
}

func withStore(fn func(*database.CheckpointStore) (interface{}, error)) {
	s, err := database.Open(config.DBDir())
	util.ExitOnError(err)

	data, err := fn(s)
	if closeErr := s.Close(); err == nil {
		err = closeErr
	}
	util.ExitOnError(err)

	if data != nil {
		printJSON(data)
	}
}

func printJSON(data interface{}) {
	rawData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		jww.ERROR.Println(err)
		return
	}
	jww.FEEDBACK.Println(string(rawData))
}
