package citizenship

import (
	"context"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultReloadCronSpec = "@daily"

// Worker reloads the citizenship table on a cron schedule.
type Worker struct {
	log     *zap.Logger
	service contracts.CitizenshipService
	spec    string
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

func NewWorker(log *zap.Logger, service contracts.CitizenshipService, spec string) *Worker {
	return &Worker{log: log, service: service, spec: spec}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, w.runOnce)
	if err != nil {
		w.log.Warn("citizenship.worker: invalid cron spec; falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, w.spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultReloadCronSpec, w.runOnce)
	}
	c.Start()
	w.cron = c
}

// Stop waits for an in-flight reload to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce() {
	count, err := w.service.Reload(w.runCtx)
	if err != nil {
		w.log.Warn("citizenship.worker: reload failed, keeping previous table", zap.Error(err))
		return
	}
	w.log.Info("citizenship.worker: table reloaded", zap.Int(constvars.LoggingCitizenshipCountKey, count))
}
