package reminder

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler runs the dispatch loop on a cron schedule.
type Scheduler struct {
	service *Service
	cron    *cron.Cron
}

// NewScheduler wires DispatchDue to the given cron expression, e.g.
// "*/5 * * * *" for every five minutes. The schedule comes from config.
func NewScheduler(service *Service, schedule string) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		dispatched, err := service.DispatchDue(context.Background())
		if err != nil {
			log.Errorf("reminder dispatch failed: %v", err)
			return
		}
		if dispatched > 0 {
			log.Infof("Dispatched %d reminder(s)", dispatched)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}
	return &Scheduler{service: service, cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop. A dispatch already in flight finishes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
