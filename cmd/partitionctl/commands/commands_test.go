package commands

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/bytom/timepart/config"
	"github.com/bytom/timepart/datefmt"
	tlog "github.com/bytom/timepart/log"
)

func TestFormatTime(t *testing.T) {
	f := datefmt.New("%Y%M%D%H%I", nil)
	clock := clockwork.NewFakeClockAt(time.Date(2018, 1, 19, 5, 0, 0, 0, time.UTC))

	cases := []struct {
		args []string
		want string
		err  bool
	}{
		{args: nil, want: "201801190500"},
		{args: []string{"2018-02-14T22:07:36Z"}, want: "201802142207"},
		{args: []string{"1516338000000"}, want: "201801190500"},
		{args: []string{"yesterday"}, err: true},
	}

	for _, c := range cases {
		got, err := formatTime(f, c.args, clock)
		if c.err {
			assert.Error(t, err, "%v", c.args)
			continue
		}
		require.NoError(t, err, "%v", c.args)
		assert.Equal(t, c.want, got, "%v", c.args)
	}
}

func TestParseLabel(t *testing.T) {
	f := datefmt.New("%Y%m%d", nil)

	got, err := parseLabel(f, "2018115", false)
	require.NoError(t, err)
	assert.Equal(t, "2018-11-05T00:00:00Z", got)

	got, err = parseLabel(f, "2018115", true)
	require.NoError(t, err)
	assert.Contains(t, got, "2018-11-05T00:00:00Z\n")
	assert.Contains(t, got, "Value: (int) 11")

	_, err = parseLabel(f, "x", false)
	assert.Equal(t, datefmt.ErrNoMatch, errors.Cause(err))
}

func TestDeltaArg(t *testing.T) {
	delta, err := deltaArg([]string{"label"}, 1)
	require.NoError(t, err)
	assert.Equal(t, config.Partition.Delta, delta)

	delta, err = deltaArg([]string{"label", "86400"}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(86400), delta)

	_, err = deltaArg([]string{"label", "daily"}, 1)
	assert.Error(t, err)
}

func TestScanPartitions(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, dir := range []string{"/p/2018011906", "/p/2018011905", "/p/tmp"} {
		require.NoError(t, fs.MkdirAll(dir, 0755))
	}

	lines, err := scanPartitions(fs, datefmt.New("%Y%M%D%H", nil), "/p")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2018011905\t2018-01-19T05:00:00Z",
		"2018011906\t2018-01-19T06:00:00Z",
	}, lines)
}

func TestSetDebugLogger(t *testing.T) {
	std := log.StandardLogger()
	defer func(level log.Level, reportCaller bool) {
		std.SetLevel(level)
		std.SetReportCaller(reportCaller)
	}(std.GetLevel(), std.ReportCaller)

	std.SetLevel(log.InfoLevel)
	std.SetReportCaller(false)
	setDebugLogger()
	assert.Equal(t, log.DebugLevel, std.GetLevel())
	assert.True(t, std.ReportCaller)
}

func TestCloseLogHook(t *testing.T) {
	dir, err := ioutil.TempDir("", "commands-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	clock := clockwork.NewFakeClockAt(time.Date(2018, 1, 19, 5, 0, 0, 0, time.UTC))
	hook, err := tlog.NewHook(dir, cfg.DefaultLogConfig(), clock)
	require.NoError(t, err)

	logger := log.New()
	logger.SetOutput(ioutil.Discard)
	logger.AddHook(hook)
	logger.WithField("module", logModule).Info("scan finished")

	logHook = hook
	closeLogHook()
	assert.Nil(t, logHook)
	closeLogHook()

	data, err := ioutil.ReadFile(filepath.Join(dir, "cmd.20180119"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "scan finished")
}
