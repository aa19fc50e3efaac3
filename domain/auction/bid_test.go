package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMinimumNextBid(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		currentPrice float64
		increment    float64
		want         float64
	}{
		{100, 10, 110},
		{0.1, 0.2, 0.3},
		{19.99, 0.01, 20},
		{1.1, 2.2, 3.3},
	}
	for _, c := range cases {
		req.Equal(c.want, MinimumNextBid(c.currentPrice, c.increment))
	}
}

func TestMeetsMinimum(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		desc         string
		amount       float64
		currentPrice float64
		increment    float64
		want         bool
	}{
		{"above minimum", 120, 100, 10, true},
		{"exactly minimum", 110, 100, 10, true},
		{"below minimum", 109.99, 100, 10, false},
		{"equal to current price", 100, 100, 10, false},
		// 0.1+0.2 != 0.3 in binary floats, the decimal comparison must
		// still accept the exact minimum
		{"float drift at minimum", 0.3, 0.1, 0.2, true},
	}
	for _, c := range cases {
		req.Equal(c.want, MeetsMinimum(c.amount, c.currentPrice, c.increment), c.desc)
	}
}

func TestOpen(t *testing.T) {
	req := require.New(t)
	now := time.Now()

	cases := []struct {
		desc    string
		status  Status
		endTime time.Time
		want    bool
	}{
		{"active before end", StatusActive, now.Add(time.Hour), true},
		{"active past end", StatusActive, now.Add(-time.Second), false},
		{"pending", StatusPending, now.Add(time.Hour), false},
		{"ended", StatusEnded, now.Add(time.Hour), false},
		{"rejected", StatusRejected, now.Add(time.Hour), false},
	}
	for _, c := range cases {
		a := Auction{Status: c.status, EndTime: c.endTime}
		req.Equal(c.want, a.Open(now), c.desc)
	}
}

func TestStatusTerminal(t *testing.T) {
	req := require.New(t)

	req.False(StatusPending.Terminal())
	req.False(StatusActive.Terminal())
	req.True(StatusEnded.Terminal())
	req.True(StatusRejected.Terminal())
	req.True(StatusCancelled.Terminal())
}
