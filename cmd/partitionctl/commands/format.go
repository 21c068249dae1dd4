package commands

import (
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timepart/datefmt"
	"github.com/bytom/timepart/partition"
	"github.com/bytom/timepart/util"
)

var formatCmd = &cobra.Command{
	Use:   "format [time]",
	Short: "Render a time (RFC3339 or unix milliseconds, default now) through the template",
	Args:  cobra.RangeArgs(0, 1),
	Run: func(cmd *cobra.Command, args []string) {
		f := mustDateFormat()
		out, err := formatTime(f, args, clockwork.NewRealClock())
		if err != nil {
			jww.ERROR.Println(err)
			os.Exit(util.ErrLocalParse)
		}
		jww.FEEDBACK.Println(out)
	},
}

func formatTime(f *datefmt.DateFormat, args []string, clock clockwork.Clock) (string, error) {
	if len(args) == 0 {
		return partition.Current(f, clock), nil
	}

	t, err := parseTimeArg(args[0])
	if err != nil {
		return "", err
	}
	return f.Format(t), nil
}

func parseTimeArg(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	ms, err := cast.ToInt64E(s)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid time %q: want RFC3339 or unix milliseconds", s)
	}
	return time.Unix(0, ms*int64(time.Millisecond)).UTC(), nil
}
