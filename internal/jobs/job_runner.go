package jobs

import (
	"booklend-backend/internal/config"
	"booklend-backend/internal/logger"
	"booklend-backend/internal/repository"
	"booklend-backend/internal/service"
)

// JobRunner owns the scheduled background jobs.
type JobRunner struct {
	settlement service.SettlementService
	email      service.EmailService
	loans      repository.LoanRepository
	books      repository.BookRepository
	parts      repository.ParticipantRepository
	cfg        *config.Config
}

func NewJobRunner(
	settlementSvc service.SettlementService,
	emailSvc service.EmailService,
	loanRepo repository.LoanRepository,
	bookRepo repository.BookRepository,
	participantRepo repository.ParticipantRepository,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		settlement: settlementSvc,
		email:      emailSvc,
		loans:      loanRepo,
		books:      bookRepo,
		parts:      participantRepo,
		cfg:        cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.cfg
}

// runWithRecovery keeps a panicking job from taking down the scheduler.
func (jr *JobRunner) runWithRecovery(name string, job func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", name, "panic", r)
		}
	}()
	logger.Debug("Job starting", "job", name)
	job()
	logger.Debug("Job finished", "job", name)
}
