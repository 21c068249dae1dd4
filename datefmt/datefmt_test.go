package datefmt

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytom/timepart/locale"
)

func TestRoundTrip(t *testing.T) {
	templates := []string{
		"%Y-%M-%D %H:%I:%S.%Z",
		"%Y/%m/%d/%h:%i:%s.%Z",
		"%y%M%D%H%I%S%Z",
	}
	start := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, raw := range templates {
		f := New(raw, nil)
		for i := 0; i < 500; i++ {
			when := start.Add(time.Duration(i) * 7919 * time.Minute).Add(time.Duration(i*37%1000) * time.Millisecond)
			got, err := f.Parse(f.Format(when))
			require.NoError(t, err, raw)
			assert.True(t, when.Equal(got), "%s: %v != %v", raw, when, got)
		}
	}
}

func TestParseEncodedFieldsOnly(t *testing.T) {
	f := New("%H:%I", nil)
	got, err := f.Parse("05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1970, 1, 1, 5, 30, 0, 0, time.UTC), got)
}

func TestParseNoMatch(t *testing.T) {
	f := New("%Y-%M-%D", nil)
	_, err := f.Parse("not-a-date")
	assert.Equal(t, ErrNoMatch, errors.Cause(err))
	assert.False(t, f.Matches("not-a-date"))
	assert.False(t, f.Matches("2018-13-01"))
	assert.True(t, f.Matches("2018-12-01"))

	_, err = f.ParseAssignments("2018-13-01")
	assert.Equal(t, ErrNoMatch, errors.Cause(err))
}

func TestParseDuplicateLastWins(t *testing.T) {
	f := New("%Y-%Y", nil)
	got, err := f.Parse("2018-2019")
	require.NoError(t, err)
	assert.Equal(t, 2019, got.Year())
}

func TestParseRollsOver(t *testing.T) {
	f := New("%Y%M%D", nil)
	got, err := f.Parse("20180231")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 3, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestPercent(t *testing.T) {
	f := New("100%%", nil)
	assert.Equal(t, "100%", f.Format(time.Now()))
	assert.True(t, f.Matches("100%"))

	f = New("load-%", nil)
	assert.Equal(t, "load-%", f.Format(time.Now()))
	assert.True(t, f.Matches("load-%"))
	assert.False(t, f.Matches("load-"))
	assert.False(t, f.Matches("load-%x"))
}

func TestNextPartition(t *testing.T) {
	cases := []struct {
		tmpl  string
		label string
		delta int64
		want  string
	}{
		{tmpl: "%Y%M%D%H%I", label: "201801190500", delta: 3600, want: "201801190600"},
		{tmpl: "hadoop/t2/%Y%M%D%H%I/ad", label: "hadoop/t2/201801190500/ad", delta: 300, want: "hadoop/t2/201801190505/ad"},
		{tmpl: "%Y%M%D", label: "20181231", delta: 86400, want: "20190101"},
		{tmpl: "data/%Y/%m/%d", label: "data/2016/2/28", delta: 86400, want: "data/2016/2/29"},
		{tmpl: "%Y%M%D%H", label: "2018011900", delta: -3600, want: "2018011823"},
		{tmpl: "%h:%i:%s", label: "5:13:22", delta: 38, want: "5:14:0"},
		{tmpl: "%Y", label: "2000", delta: 10000000000, want: "2316"},
		{tmpl: "%Y", label: "2000", delta: -10000000000, want: "1683"},
		{tmpl: "%Y%M%D%H%I%S%Z", label: "20000101000000250", delta: 10000000000, want: "23161120174640250"},
	}

	for _, c := range cases {
		got, err := New(c.tmpl, nil).NextPartition(c.label, c.delta)
		require.NoError(t, err, c.label)
		assert.Equal(t, c.want, got, c.label)
	}

	_, err := New("%Y%M%D", nil).NextPartition("2018-01-01", 60)
	assert.Equal(t, ErrNoMatch, errors.Cause(err))
}

func TestLocalePolicy(t *testing.T) {
	shanghai, err := locale.New("zh_CN", "Asia/Shanghai")
	require.NoError(t, err)

	f := New("%Y%M%D%H", shanghai)
	got, err := f.Parse("2018011905")
	require.NoError(t, err)
	assert.Equal(t, shanghai.Location(), got.Location())
	assert.True(t, time.Date(2018, 1, 18, 21, 0, 0, 0, time.UTC).Equal(got))

	// rendering converts into the policy's location first
	assert.Equal(t, "2018011905", f.Format(time.Date(2018, 1, 18, 21, 0, 0, 0, time.UTC)))
}

func TestReconfigure(t *testing.T) {
	f := New("%Y%M%D", nil)
	when := time.Date(2018, 1, 19, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, "20180119", f.Format(when))

	f.SetTemplate("%Y/%M/%D")
	assert.Equal(t, "2018/01/19", f.Format(when))
	assert.Equal(t, "%Y/%M/%D", f.Template().Raw())

	tokyo, err := locale.New("ja_JP", "Asia/Tokyo")
	require.NoError(t, err)
	f.SetLocale(tokyo)
	assert.Equal(t, tokyo, f.Locale())
	assert.Equal(t, "%Y/%M/%D", f.Template().Raw())
	assert.Equal(t, "2018/01/19", f.Format(when))

	f.SetLocale(nil)
	assert.Equal(t, locale.UTC, f.Locale())
}

func TestConcurrentReconfigure(t *testing.T) {
	f := New("%Y%M%D", nil)
	when := time.Date(2018, 1, 19, 5, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got := f.Format(when)
				if got != "20180119" && got != "2018-01-19" {
					t.Errorf("unexpected render %q", got)
				}
			}
		}()
	}
	for j := 0; j < 200; j++ {
		if j%2 == 0 {
			f.SetTemplate("%Y-%M-%D")
		} else {
			f.SetTemplate("%Y%M%D")
		}
	}
	wg.Wait()
}
