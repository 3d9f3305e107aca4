// Package attribution обрабатывает начисление партнерских комиссий за
// проведенные продажи в фоне, отдельно от ответа покупателю.
package attribution

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-shop/internal/service"
)

const (
	defaultServiceTimeout      = 3 * time.Second
	defaultWorkers        uint = 5
	// DefaultQueueSize - емкость очереди задач. Очередь буферизованная, чтобы
	// проведение платежа никогда не ждало атрибуцию.
	DefaultQueueSize = 256
)

// Processor читает задачи атрибуции из канала и прогоняет их через сервисный
// слой. Любая ошибка атрибуции логируется и на этом ее жизнь заканчивается:
// комиссия - advisory шаг, продажу он не трогает.
type Processor struct {
	svs     Servicer
	tasks   <-chan service.AttributeArgs
	l       *logrus.Entry
	workers uint
}

// New создает новый экземпляр процессора атрибуции комиссий.
func New(svs Servicer, tasks <-chan service.AttributeArgs, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "attribution",
		"module":    "processor",
	})

	return &Processor{
		svs:     svs,
		tasks:   tasks,
		l:       loggerEntry,
		workers: defaultWorkers,
	}
}

// SetWorkers устанавливает кол-во воркеров, обрабатывающих задачи.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// Run запускает воркеров и блокируется до отмены контекста. Воркеры дочитывают
// канал и выходят когда контекст отменен и канал закрыт.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithField("workers", p.workers).Info("Starting")

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) //nolint:gosec

	for i := uint(0); i < p.workers; i++ {
		go p.worker(ctx, wg, i+1)
	}
	wg.Wait()

	p.l.Info("Got stop signal, exiting...")
}

func (p *Processor) worker(ctx context.Context, wg *sync.WaitGroup, workerID uint) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			p.processTask(ctx, workerID, task)
		}
	}
}

func (p *Processor) processTask(ctx context.Context, workerID uint, task service.AttributeArgs) {
	l := p.l.WithFields(logrus.Fields{
		"worker":       workerID,
		"orderID":      task.OrderID,
		"referralCode": task.ReferralCode,
	})

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if err := p.svs.Attribute(reqCtx, task); err != nil {
		// Ошибка глотается сознательно: двойной выплаты не будет (уникальный
		// order_id), а недостающую комиссию админ выверяет по логам.
		l.WithError(err).Error("commission attribution failed")
		return
	}
	l.Debug("attribution task processed")
}
