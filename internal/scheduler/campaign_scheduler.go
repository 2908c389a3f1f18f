package scheduler

import (
	"context"
	"time"

	"makotools/internal/service"
	"makotools/pkg/logger"
)

// CampaignScheduler re-warms the event and scout caches on a fixed interval
// so most requests hit warm data. Birthday campaigns are projected per
// request against the request clock and need no refresh here.
type CampaignScheduler struct {
	campaignService *service.CampaignService
	logger          *logger.Logger
	quit            chan struct{}
}

// NewCampaignScheduler creates a campaign scheduler.
func NewCampaignScheduler(campaignService *service.CampaignService, logger *logger.Logger) *CampaignScheduler {
	return &CampaignScheduler{
		campaignService: campaignService,
		logger:          logger,
		quit:            make(chan struct{}),
	}
}

// Start launches the refresh loop.
func (s *CampaignScheduler) Start() {
	go s.refreshLoop()

	s.logger.Info("campaign scheduler started")
}

// Stop halts the refresh loop.
func (s *CampaignScheduler) Stop() {
	close(s.quit)
	s.logger.Info("campaign scheduler stopped")
}

// refreshLoop re-warms the event and scout caches every 10 minutes, starting
// with an immediate pass.
func (s *CampaignScheduler) refreshLoop() {
	s.refresh()

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh()
		case <-s.quit:
			return
		}
	}
}

func (s *CampaignScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := s.campaignService.RefreshCache(ctx); err != nil {
		s.logger.Error("campaign cache refresh failed", "error", err)
	} else {
		s.logger.Info("campaign cache refreshed")
	}
}
