package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/agbru/karatcalc/internal/digit"
	apperrors "github.com/agbru/karatcalc/internal/errors"
	"github.com/agbru/karatcalc/internal/logging"
	"github.com/agbru/karatcalc/internal/server"
)

// runServe starts the HTTP API and blocks until shutdown.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewDefaultLogger()
	opts := digit.Options{ParallelThreshold: a.Config.Threshold}

	srv := server.NewServer(a.Config.Serve, a.Factory, opts, logger)
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
