package commands

import (
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timepart/datefmt"
	"github.com/bytom/timepart/util"
)

var parseDebug bool

var parseCmd = &cobra.Command{
	Use:   "parse <label>",
	Short: "Recover the time a label encodes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := parseLabel(mustDateFormat(), args[0], parseDebug)
		util.ExitOnError(err)
		jww.FEEDBACK.Println(out)
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <label>",
	Short: "Check whether a label matches the template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ok := mustDateFormat().Matches(args[0])
		jww.FEEDBACK.Println(ok)
		if !ok {
			util.ExitOnError(datefmt.ErrNoMatch)
		}
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseDebug, "debug", false, "Dump the matched field assignments")
}

func parseLabel(f *datefmt.DateFormat, label string, debug bool) (string, error) {
	t, err := f.Parse(label)
	if err != nil {
		return "", err
	}

	out := t.Format(time.RFC3339Nano)
	if !debug {
		return out, nil
	}

	as, err := f.ParseAssignments(label)
	if err != nil {
		return "", err
	}
	return out + "\n" + strings.TrimSpace(spew.Sdump(as)), nil
}
