package locale

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		tag      string
		timeZone string
		wantTag  string
		wantLoc  string
		err      error
	}{
		{tag: "", timeZone: "", wantTag: "", wantLoc: "UTC"},
		{tag: "en", timeZone: "", wantTag: "en", wantLoc: "UTC"},
		{tag: "en_US", timeZone: "America/New_York", wantTag: "en_US", wantLoc: "America/New_York"},
		{tag: "zh-CN", timeZone: "Asia/Shanghai", wantTag: "zh_CN", wantLoc: "Asia/Shanghai"},
		{tag: "english", err: ErrInvalidTag},
		{tag: "EN", err: ErrInvalidTag},
		{tag: "en_us", err: ErrInvalidTag},
		{tag: "en", timeZone: "Mars/Olympus_Mons", err: ErrInvalidTimeZone},
	}

	for i, c := range cases {
		p, err := New(c.tag, c.timeZone)
		if c.err != nil {
			assert.Equal(t, c.err, errors.Cause(err), "case %d", i)
			assert.Nil(t, p, "case %d", i)
			continue
		}

		require.NoError(t, err, "case %d", i)
		assert.Equal(t, c.wantTag, p.Tag(), "case %d", i)
		assert.Equal(t, c.wantLoc, p.Location().String(), "case %d", i)
	}
}

func TestWithLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	p, err := WithLocation("zh_CN", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, p.Location())
	assert.Equal(t, "zh_CN@UTC+8", p.String())

	p, err = WithLocation("", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, p.Location())
	assert.Equal(t, "UTC", p.String())
}

func TestNeutralPolicy(t *testing.T) {
	assert.Equal(t, "", UTC.Tag())
	assert.Equal(t, time.UTC, UTC.Location())
}
