package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/plandesk/biz_planning_app/internal/models"
)

// ToModelAnalysis converts a domain Analysis to a model Analysis, serializing
// the plan for the JSONB column.
func ToModelAnalysis(d domain.Analysis) (models.Analysis, error) {
	planJSON, err := json.Marshal(d.Plan)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return models.Analysis{
		AnalysisID:  d.AnalysisID,
		ClientID:    d.ClientID,
		Name:        d.Name,
		BaseYear:    d.BaseYear,
		PlanJSON:    planJSON,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainAnalysis converts a model Analysis to a domain Analysis, decoding
// the stored plan document.
func ToDomainAnalysis(m models.Analysis) (domain.Analysis, error) {
	var plan domain.Plan
	if len(m.PlanJSON) > 0 {
		if err := json.Unmarshal(m.PlanJSON, &plan); err != nil {
			return domain.Analysis{}, fmt.Errorf("failed to unmarshal plan for analysis %s: %w", m.AnalysisID, err)
		}
	}
	return domain.Analysis{
		AnalysisID:  m.AnalysisID,
		ClientID:    m.ClientID,
		Name:        m.Name,
		BaseYear:    m.BaseYear,
		Plan:        plan,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainAnalysisSlice converts a slice of model Analyses to domain Analyses
func ToDomainAnalysisSlice(ms []models.Analysis) ([]domain.Analysis, error) {
	ds := make([]domain.Analysis, len(ms))
	for i, m := range ms {
		d, err := ToDomainAnalysis(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
