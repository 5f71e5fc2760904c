package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a scenario id has no row.
var ErrNotFound = errors.New("scenario not found")

// Repository handles scenario persistence
// ⭐ SSOT: scenario reads and writes happen here and nowhere else.
//
// Metrics are stored as float8 columns, not JSON: Postgres float8 accepts
// Infinity, so the +Inf payback sentinel survives the round trip without
// the lowering the JSON wire form needs.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new scenario repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Save inserts or updates a scenario and bumps its updated_at.
func (r *Repository) Save(ctx context.Context, s *Scenario) error {
	inputsJSON, err := json.Marshal(s.Inputs)
	if err != nil {
		return fmt.Errorf("failed to marshal inputs: %w", err)
	}

	s.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO roi.scenarios (
			id, name, company, inputs,
			total_initial_investment, total_annual_operational_costs, total_costs_over_horizon,
			annual_cost_savings, annual_efficiency_value, annual_revenue_impact,
			total_annual_benefits, total_benefits_over_horizon,
			net_annual_benefit, net_benefits_over_horizon,
			roi_percentage, payback_period_years, net_present_value,
			interpretation, draft, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			company = EXCLUDED.company,
			inputs = EXCLUDED.inputs,
			total_initial_investment = EXCLUDED.total_initial_investment,
			total_annual_operational_costs = EXCLUDED.total_annual_operational_costs,
			total_costs_over_horizon = EXCLUDED.total_costs_over_horizon,
			annual_cost_savings = EXCLUDED.annual_cost_savings,
			annual_efficiency_value = EXCLUDED.annual_efficiency_value,
			annual_revenue_impact = EXCLUDED.annual_revenue_impact,
			total_annual_benefits = EXCLUDED.total_annual_benefits,
			total_benefits_over_horizon = EXCLUDED.total_benefits_over_horizon,
			net_annual_benefit = EXCLUDED.net_annual_benefit,
			net_benefits_over_horizon = EXCLUDED.net_benefits_over_horizon,
			roi_percentage = EXCLUDED.roi_percentage,
			payback_period_years = EXCLUDED.payback_period_years,
			net_present_value = EXCLUDED.net_present_value,
			interpretation = EXCLUDED.interpretation,
			draft = EXCLUDED.draft,
			updated_at = EXCLUDED.updated_at
	`

	m := s.Metrics
	_, err = r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Company, inputsJSON,
		m.TotalInitialInvestment, m.TotalAnnualOperationalCosts, m.TotalCostsOverHorizon,
		m.AnnualCostSavings, m.AnnualEfficiencyValue, m.AnnualRevenueImpact,
		m.TotalAnnualBenefits, m.TotalBenefitsOverHorizon,
		m.NetAnnualBenefit, m.NetBenefitsOverHorizon,
		m.ROIPercentage, m.PaybackPeriodYears, m.NetPresentValue,
		s.Interpretation, s.Draft, s.CreatedAt, s.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}

	return nil
}

// Get retrieves a scenario by id
func (r *Repository) Get(ctx context.Context, id string) (*Scenario, error) {
	query := `
		SELECT
			id, name, company, inputs,
			total_initial_investment, total_annual_operational_costs, total_costs_over_horizon,
			annual_cost_savings, annual_efficiency_value, annual_revenue_impact,
			total_annual_benefits, total_benefits_over_horizon,
			net_annual_benefit, net_benefits_over_horizon,
			roi_percentage, payback_period_years, net_present_value,
			interpretation, draft, created_at, updated_at
		FROM roi.scenarios
		WHERE id = $1
	`

	var s Scenario
	var inputsJSON []byte

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Company, &inputsJSON,
		&s.Metrics.TotalInitialInvestment, &s.Metrics.TotalAnnualOperationalCosts, &s.Metrics.TotalCostsOverHorizon,
		&s.Metrics.AnnualCostSavings, &s.Metrics.AnnualEfficiencyValue, &s.Metrics.AnnualRevenueImpact,
		&s.Metrics.TotalAnnualBenefits, &s.Metrics.TotalBenefitsOverHorizon,
		&s.Metrics.NetAnnualBenefit, &s.Metrics.NetBenefitsOverHorizon,
		&s.Metrics.ROIPercentage, &s.Metrics.PaybackPeriodYears, &s.Metrics.NetPresentValue,
		&s.Interpretation, &s.Draft, &s.CreatedAt, &s.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("scenario %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}

	if err := json.Unmarshal(inputsJSON, &s.Inputs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inputs: %w", err)
	}

	return &s, nil
}

// List retrieves scenarios, most recently updated first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Scenario, error) {
	query := `
		SELECT
			id, name, company, inputs,
			total_initial_investment, total_annual_operational_costs, total_costs_over_horizon,
			annual_cost_savings, annual_efficiency_value, annual_revenue_impact,
			total_annual_benefits, total_benefits_over_horizon,
			net_annual_benefit, net_benefits_over_horizon,
			roi_percentage, payback_period_years, net_present_value,
			interpretation, draft, created_at, updated_at
		FROM roi.scenarios
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := make([]Scenario, 0)

	for rows.Next() {
		var s Scenario
		var inputsJSON []byte

		err := rows.Scan(
			&s.ID, &s.Name, &s.Company, &inputsJSON,
			&s.Metrics.TotalInitialInvestment, &s.Metrics.TotalAnnualOperationalCosts, &s.Metrics.TotalCostsOverHorizon,
			&s.Metrics.AnnualCostSavings, &s.Metrics.AnnualEfficiencyValue, &s.Metrics.AnnualRevenueImpact,
			&s.Metrics.TotalAnnualBenefits, &s.Metrics.TotalBenefitsOverHorizon,
			&s.Metrics.NetAnnualBenefit, &s.Metrics.NetBenefitsOverHorizon,
			&s.Metrics.ROIPercentage, &s.Metrics.PaybackPeriodYears, &s.Metrics.NetPresentValue,
			&s.Interpretation, &s.Draft, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}

		if err := json.Unmarshal(inputsJSON, &s.Inputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inputs: %w", err)
		}

		scenarios = append(scenarios, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return scenarios, nil
}

// Delete removes a scenario by id
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM roi.scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("scenario %s: %w", id, ErrNotFound)
	}
	return nil
}

// PruneDrafts deletes draft scenarios not updated since the cutoff.
// Returns the number of rows removed.
func (r *Repository) PruneDrafts(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM roi.scenarios WHERE draft = TRUE AND updated_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to prune draft scenarios: %w", err)
	}
	return tag.RowsAffected(), nil
}
