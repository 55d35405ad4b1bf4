package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goserg/pairingserver/internal/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ColorCoinFlip()
	m.ColorCoinFlip()
	m.ForcedRematch(domain.Pairing{Player1: 1, Player2: 2})
	m.ColorGuardDropped(5)
	m.ObserveRound(domain.Swiss, time.Millisecond, nil)
	m.ObserveRound(domain.Swiss, time.Millisecond, errors.New("boom"))
	m.ObserveRound(domain.RoundRobin, time.Millisecond, nil)
	m.ResultRecorded()
	m.RatingsFinalized([]int{16, -16})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.coinFlips))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rematches))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.guardDrops))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rounds.WithLabelValues("swiss", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rounds.WithLabelValues("swiss", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rounds.WithLabelValues("round-robin", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.results))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.finalizations))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ForcedRematch(domain.Pairing{})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "pairing_forced_rematches_total 1"), body)
}
