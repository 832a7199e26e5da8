package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/logger"
	"go.uber.org/zap"
)

// Service names accepted in REQUIRED_SERVICES
const (
	ServiceDatabase = "database"
	ServiceRedis    = "redis"
	ServiceS3       = "s3"
)

const defaultCheckTimeout = 10 * time.Second

// Check pings one service
type Check func(ctx context.Context) error

// ServiceValidator handles validation of optional services
type ServiceValidator struct {
	requiredServices []string
	checks           map[string]Check
	timeout          time.Duration
}

// NewServiceValidator creates a validator for required services.
// checks holds the pings of the services this process has configured.
func NewServiceValidator(requiredServices []string, checks map[string]Check) *ServiceValidator {
	if checks == nil {
		checks = map[string]Check{}
	}
	return &ServiceValidator{
		requiredServices: requiredServices,
		checks:           checks,
		timeout:          defaultCheckTimeout,
	}
}

// ValidateServices validates all required services. A required service that is
// known but not configured is an error; an unknown name is only logged.
func (sv *ServiceValidator) ValidateServices(ctx context.Context) error {
	if len(sv.requiredServices) == 0 {
		logger.Log.Info("No required services configured for validation")
		return nil
	}

	logger.Log.Info("Validating required services",
		zap.Strings("services", sv.requiredServices),
	)

	for _, serviceName := range sv.requiredServices {
		check, ok := sv.checks[serviceName]
		if !ok {
			if !isKnownService(serviceName) {
				logger.Log.Warn("Unknown service type in validation",
					zap.String("service", serviceName),
				)
				continue
			}
			return fmt.Errorf("required service '%s' is not configured", serviceName)
		}

		timeoutCtx, cancel := context.WithTimeout(ctx, sv.timeout)
		err := check(timeoutCtx)
		cancel()
		if err != nil {
			logger.Log.Error("Required service validation failed",
				zap.String("service", serviceName),
				zap.Error(err),
			)
			return fmt.Errorf("required service '%s' validation failed: %w", serviceName, err)
		}

		logger.Log.Info("Service validated successfully",
			zap.String("service", serviceName),
		)
	}

	logger.Log.Info("All required services validated successfully")
	return nil
}

func isKnownService(name string) bool {
	switch name {
	case ServiceDatabase, ServiceRedis, ServiceS3:
		return true
	}
	return false
}
