// File: internal/jobs/invite_expiry.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"backoffice_backend/internal/config"
	"backoffice_backend/internal/invite"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InviteExpiryJob holds dependencies for the invite expiry job.
type InviteExpiryJob struct {
	inviteService invite.Service
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewInviteExpiryJob creates a new InviteExpiryJob.
func NewInviteExpiryJob(
	inviteService invite.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *InviteExpiryJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &InviteExpiryJob{
		inviteService: inviteService,
		logger:        logger.Named("InviteExpiryJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *InviteExpiryJob) SetupAndStart() error {
	jobSpec := j.cfg.InviteExpiryJobSchedule // e.g., "@daily", "0 1 * * *"
	if jobSpec == "" {
		j.logger.Warn("Invite expiry job schedule not defined (INVITE_EXPIRY_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule invite expiry job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Invite expiry job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// runJob is the actual work performed by the cron job.
func (j *InviteExpiryJob) runJob() {
	j.logger.Info("Starting invite expiry job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	revokedCount, err := j.inviteService.RevokeExpired(ctx)
	if err != nil {
		j.logger.Error("Invite expiry job run failed", zap.Error(err))
	} else {
		j.logger.Info("Invite expiry job run completed", zap.Int64("invites_revoked", revokedCount))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *InviteExpiryJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping invite expiry job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Invite expiry job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Invite expiry job scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine messages from cron.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	cl.zl.Info(msg, fields...)
}

// Error logs error messages from cron.
func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
