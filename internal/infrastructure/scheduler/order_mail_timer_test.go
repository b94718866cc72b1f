package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

type fakeSender struct {
	calls atomic.Int32
	err   error
}

func (s *fakeSender) SendOrder(context.Context) (*order.Result, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &order.Result{Lines: []order.Line{{ArticleID: 1, Description: "Sauser"}}}, nil
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestOrderMailTimer_EjecutaPeriodicamente(t *testing.T) {
	sender := &fakeSender{}
	timer := NewOrderMailTimer(sender, logger.Nop(), OrderMailTimerConfig{
		Enabled: true, Delay: time.Millisecond, Period: 5 * time.Millisecond,
	})
	require.NoError(t, timer.Start(context.Background()))
	require.NoError(t, timer.Start(context.Background()))

	assert.Eventually(t, func() bool { return sender.calls.Load() >= 3 }, 2*time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, timer.Stop(ctx))

	after := sender.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, sender.calls.Load())
}

func TestOrderMailTimer_SinArticulosNoEsFallo(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("%w: No Articles found to order!", domain.ErrNoArticlesForOrder)}
	out := &syncBuffer{}
	timer := NewOrderMailTimer(sender, logger.FromWriter(out), OrderMailTimerConfig{
		Enabled: true, Delay: 0, Period: time.Hour,
	})
	require.NoError(t, timer.Start(context.Background()))
	assert.Eventually(t, func() bool { return sender.calls.Load() == 1 }, 2*time.Second, time.Millisecond)
	require.NoError(t, timer.Stop(context.Background()))

	assert.Contains(t, out.String(), "sin artículos para pedir")
	assert.NotContains(t, out.String(), `"level":"error"`)
}

func TestOrderMailTimer_Deshabilitado(t *testing.T) {
	sender := &fakeSender{}
	timer := NewOrderMailTimer(sender, logger.Nop(), OrderMailTimerConfig{Enabled: false, Period: time.Millisecond})
	require.NoError(t, timer.Start(context.Background()))
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, sender.calls.Load())
	assert.NoError(t, timer.Stop(context.Background()))
}

func TestOrderMailTimer_PeriodoInvalido(t *testing.T) {
	timer := NewOrderMailTimer(&fakeSender{}, logger.Nop(), OrderMailTimerConfig{Enabled: true})
	assert.Error(t, timer.Start(context.Background()))
}

// slowSender tarda en cada envío y registra cuándo empezó cada uno.
type slowSender struct {
	mu     sync.Mutex
	starts []time.Time
	took   time.Duration
}

func (s *slowSender) SendOrder(ctx context.Context) (*order.Result, error) {
	s.mu.Lock()
	s.starts = append(s.starts, time.Now())
	s.mu.Unlock()
	select {
	case <-time.After(s.took):
	case <-ctx.Done():
	}
	return &order.Result{}, nil
}

func (s *slowSender) startTimes() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Time(nil), s.starts...)
}

func TestOrderMailTimer_TasaFija(t *testing.T) {
	// cada envío tarda 60ms con periodo de 100ms: a tasa fija los inicios quedan a ~100ms;
	// esperando el periodo tras cada envío quedarían a ~160ms
	sender := &slowSender{took: 60 * time.Millisecond}
	timer := NewOrderMailTimer(sender, logger.Nop(), OrderMailTimerConfig{
		Enabled: true, Delay: 0, Period: 100 * time.Millisecond,
	})
	require.NoError(t, timer.Start(context.Background()))
	assert.Eventually(t, func() bool { return len(sender.startTimes()) >= 4 }, 3*time.Second, 5*time.Millisecond)
	require.NoError(t, timer.Stop(context.Background()))

	starts := sender.startTimes()
	span := starts[3].Sub(starts[0])
	assert.Less(t, span, 420*time.Millisecond, "3 intervalos: %v", span)
	assert.GreaterOrEqual(t, span, 250*time.Millisecond, "3 intervalos: %v", span)
}
