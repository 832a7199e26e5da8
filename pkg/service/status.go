package service

import (
	"sort"

	"github.com/KlienGumapac/freedomewall/pkg/api"
	"github.com/KlienGumapac/freedomewall/pkg/config"
	"github.com/KlienGumapac/freedomewall/pkg/output"
)

// StatusService reports on the server
type StatusService struct{}

// NewStatusService creates a new status service
func NewStatusService() *StatusService {
	return &StatusService{}
}

// Status prints the server health. A degraded server still renders its services.
func (s *StatusService) Status() error {
	health, err := api.Health()
	if health == nil || health.Status == "" {
		return err
	}

	if output.GetOutputFormat() == output.FormatJSON {
		if jsonErr := output.PrintJSON(health); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	names := make([]string, 0, len(health.Services))
	for name := range health.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, health.Services[name]})
	}

	output.PrintInfo("%s at %s: %s", health.Service, config.GetString("api.base_url"), health.Status)
	if len(rows) > 0 {
		output.PrintTable([]string{"SERVICE", "STATUS"}, rows)
	}
	return err
}
