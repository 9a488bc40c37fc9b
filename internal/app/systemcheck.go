package app

import (
	"context"
	"os"

	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
	"github.com/wyc-thg/broker/internal/usecase/systemcheck"
	"github.com/wyc-thg/broker/pkg/version"
)

// Systemcheck runs a single validation probe with the configured settings.
// The returned error is non-nil only when the probe could not be attempted.
func Systemcheck(ctx context.Context, configPath string) (domain.SystemcheckResult, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return domain.SystemcheckResult{}, err
	}

	log, cleanup, err := logging.Setup(cfg.LoggingConfig(), os.Stderr)
	if err != nil {
		return domain.SystemcheckResult{}, err
	}
	defer cleanup()

	sanitizer := domain.NewSanitizer(cfg.Secrets())
	svc := systemcheck.NewService(newProber(cfg, log), cfg.ValidationSettings(), sanitizer, version.UserAgent(), log)

	vc, outcome, err := svc.Run(ctx)
	return domain.SystemcheckResult{ValidationConfig: vc, ValidationOutcome: outcome}, err
}
