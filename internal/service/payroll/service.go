package payroll

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/akwaba-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/akwaba-hr/payroll-backend-go/internal/fixtures"
	"github.com/google/uuid"
)

type PayrollServiceImpl struct {
	configRepo payroll.ConfigRepository
	engine     *Engine

	// Configuration snapshots are immutable, so caching per country across
	// calls is a pure optimization; correctness never depends on it.
	mu    sync.RWMutex
	cache map[string]payroll.CountryPayrollConfig
}

func NewPayrollService(configRepo payroll.ConfigRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		configRepo: configRepo,
		engine:     NewEngine(),
		cache:      make(map[string]payroll.CountryPayrollConfig),
	}
}

func (s *PayrollServiceImpl) ComputePayslip(ctx context.Context, req payroll.ComputePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	cfg, err := s.loadConfig(ctx, req.CountryCode)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	result, err := s.engine.Compute(req.ToInput(false), cfg)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	result.RunID = uuid.NewString()

	return payroll.MapToPayslipResponse(result), nil
}

func (s *PayrollServiceImpl) PreviewPayslip(ctx context.Context, req payroll.ComputePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	cfg, err := s.loadConfig(ctx, req.CountryCode)
	if err != nil {
		if !errors.Is(err, payroll.ErrCountryConfigNotFound) {
			return payroll.PayslipResponse{}, err
		}
		// Estimates for not-yet-activated tenants run against the seeded
		// default profile instead of a second configuration round-trip.
		cfg = fixtures.PreviewConfig(req.CountryCode)
	}

	result, err := s.engine.Compute(req.ToInput(true), cfg)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	result.RunID = uuid.NewString()

	return payroll.MapToPayslipResponse(result), nil
}

func (s *PayrollServiceImpl) GetCountryConfig(ctx context.Context, countryCode string) (payroll.CountryConfigResponse, error) {
	cfg, err := s.loadConfig(ctx, countryCode)
	if err != nil {
		return payroll.CountryConfigResponse{}, err
	}
	return payroll.MapToCountryConfigResponse(cfg), nil
}

func (s *PayrollServiceImpl) ListCountries(ctx context.Context) ([]string, error) {
	countries, err := s.configRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll countries: %w", err)
	}
	return countries, nil
}

// loadConfig fetches and validates the country configuration, caching the
// snapshot for subsequent calls.
func (s *PayrollServiceImpl) loadConfig(ctx context.Context, countryCode string) (payroll.CountryPayrollConfig, error) {
	s.mu.RLock()
	cfg, ok := s.cache[countryCode]
	s.mu.RUnlock()
	if ok {
		return cfg, nil
	}

	cfg, err := s.configRepo.GetCountryConfig(ctx, countryCode)
	if err != nil {
		if errors.Is(err, payroll.ErrCountryConfigNotFound) {
			return payroll.CountryPayrollConfig{}, err
		}
		return payroll.CountryPayrollConfig{}, fmt.Errorf("failed to load payroll configuration for %s: %w", countryCode, err)
	}

	if err := cfg.Validate(); err != nil {
		return payroll.CountryPayrollConfig{}, err
	}

	s.mu.Lock()
	s.cache[countryCode] = cfg
	s.mu.Unlock()

	return cfg, nil
}
