package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// OrderSender envía el pedido de artículos con poco stock.
type OrderSender interface {
	SendOrder(ctx context.Context) (*order.Result, error)
}

// OrderMailTimerConfig planificación del envío.
type OrderMailTimerConfig struct {
	Enabled bool
	// Delay espera antes del primer envío.
	Delay time.Duration
	// Period intervalo entre inicios de envíos consecutivos (tasa fija).
	Period time.Duration
	// RunTimeout tiempo máximo de un envío.
	RunTimeout time.Duration
}

// OrderMailTimer ejecuta el envío del pedido periódicamente en segundo plano.
type OrderMailTimer struct {
	sender    OrderSender
	log       *logger.Logger
	config    OrderMailTimerConfig
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewOrderMailTimer construye el timer.
func NewOrderMailTimer(sender OrderSender, log *logger.Logger, config OrderMailTimerConfig) *OrderMailTimer {
	if config.RunTimeout <= 0 {
		config.RunTimeout = 5 * time.Minute
	}
	return &OrderMailTimer{sender: sender, log: log.Component("order-mail-timer"), config: config}
}

// Start arranca el bucle; llamadas repetidas no tienen efecto.
func (t *OrderMailTimer) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.isRunning {
		return nil
	}
	if !t.config.Enabled {
		t.log.Info().Msg("timer de pedidos deshabilitado")
		return nil
	}
	if t.config.Period <= 0 {
		return errors.New("scheduler: el periodo debe ser positivo")
	}
	t.isRunning = true

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)
	go t.run(ctx)

	t.log.Info().
		Dur("delay", t.config.Delay).
		Dur("period", t.config.Period).
		Msg("timer de pedidos iniciado")
	return nil
}

// Stop detiene el bucle y espera al envío en curso o a que venza ctx.
func (t *OrderMailTimer) Stop(ctx context.Context) error {
	t.mu.Lock()
	if !t.isRunning {
		t.mu.Unlock()
		return nil
	}
	t.isRunning = false
	t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.log.Info().Msg("timer de pedidos detenido")
		return nil
	case <-ctx.Done():
		t.log.Warn().Msg("timeout deteniendo el timer de pedidos")
		return ctx.Err()
	}
}

func (t *OrderMailTimer) run(ctx context.Context) {
	defer t.wg.Done()

	delay := time.NewTimer(t.config.Delay)
	defer delay.Stop()
	select {
	case <-ctx.Done():
		return
	case <-delay.C:
	}

	// El ticker se crea una sola vez: el periodo cuenta desde el inicio de cada envío.
	// Si un envío dura más que el periodo, los ticks vencidos se descartan y no se solapan.
	ticker := time.NewTicker(t.config.Period)
	defer ticker.Stop()
	t.execute(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.execute(ctx)
		}
	}
}

// execute un envío; "sin artículos" se registra y no se considera fallo.
func (t *OrderMailTimer) execute(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, t.config.RunTimeout)
	defer cancel()

	res, err := t.sender.SendOrder(runCtx)
	switch {
	case errors.Is(err, domain.ErrNoArticlesForOrder):
		t.log.Info().Err(err).Msg("sin artículos para pedir")
	case err != nil:
		t.log.Error().Err(err).Msg("envío de pedido fallido")
	default:
		t.log.Info().Int("articles", len(res.Lines)).Msg("pedido periódico enviado")
	}
}
