package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/plandesk/biz_planning_app/internal/apperrors"
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/plandesk/biz_planning_app/internal/core/planning"
	portsrepo "github.com/plandesk/biz_planning_app/internal/core/ports/repositories"
	portssvc "github.com/plandesk/biz_planning_app/internal/core/ports/services"
	"github.com/plandesk/biz_planning_app/internal/dto"
	"github.com/plandesk/biz_planning_app/internal/utils"
	"github.com/shopspring/decimal"
)

// standardSectionLabels names the seeded section for each category, in the
// canonical order of domain.SectionCategories.
var standardSectionLabels = map[domain.SectionCategory]string{
	domain.CategoryRevenue:        "Revenue",
	domain.CategoryMaterial:       "Material expenses",
	domain.CategoryPersonnel:      "Personnel costs",
	domain.CategoryDepreciation:   "Depreciation",
	domain.CategoryOperating:      "Operating costs",
	domain.CategorySales:          "Sales costs",
	domain.CategoryAdministration: "Administration costs",
	domain.CategoryFinance:        "Finance costs",
	domain.CategoryTaxAndPrivate:  "Taxes and private",
}

// analysisService implements the AnalysisSvcFacade interface
type analysisService struct {
	BaseService
	analysisRepo portsrepo.AnalysisRepositoryFacade
	clientRepo   portsrepo.ClientReader
}

// NewAnalysisService creates a new analysis service with the provided dependencies
func NewAnalysisService(analysisRepo portsrepo.AnalysisRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.AnalysisSvcFacade {
	return &analysisService{
		analysisRepo: analysisRepo,
		clientRepo:   clientRepo,
	}
}

var _ portssvc.AnalysisSvcFacade = (*analysisService)(nil)

// seedPlan builds the standard empty plan every new analysis starts from.
func seedPlan() domain.Plan {
	sections := make([]domain.Section, 0, len(domain.SectionCategories))
	for i, category := range domain.SectionCategories {
		sections = append(sections, domain.Section{
			SectionID:  uuid.NewString(),
			Label:      standardSectionLabels[category],
			OrderIndex: i,
			Category:   category,
			Items:      []domain.LineItem{},
		})
	}
	// Categories are unique by construction here.
	plan, _ := domain.NewPlan(sections)
	return plan
}

func (s *analysisService) CreateAnalysis(ctx context.Context, clientID string, req dto.CreateAnalysisRequest, userID string) (*domain.Analysis, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, err
	}

	now := time.Now()
	analysis := domain.Analysis{
		AnalysisID: uuid.NewString(),
		ClientID:   clientID,
		Name:       req.Name,
		BaseYear:   req.BaseYear,
		Plan:       seedPlan(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.analysisRepo.SaveAnalysis(ctx, analysis); err != nil {
		s.LogError(ctx, err, "Failed to save analysis",
			slog.String("analysis_id", analysis.AnalysisID),
			slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Analysis created",
		slog.String("analysis_id", analysis.AnalysisID),
		slog.String("client_id", clientID))
	return &analysis, nil
}

func (s *analysisService) GetAnalysisByID(ctx context.Context, analysisID string) (*domain.Analysis, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find analysis by ID",
				slog.String("analysis_id", analysisID))
		}
		return nil, err
	}
	return analysis, nil
}

func (s *analysisService) ListAnalysesByClient(ctx context.Context, clientID string) ([]domain.Analysis, error) {
	analyses, err := s.analysisRepo.ListAnalysesByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list analyses",
			slog.String("client_id", clientID))
		return nil, err
	}
	if analyses == nil {
		return []domain.Analysis{}, nil
	}
	return analyses, nil
}

func (s *analysisService) RenameAnalysis(ctx context.Context, analysisID string, req dto.RenameAnalysisRequest, userID string) (*domain.Analysis, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	analysis.Name = req.Name
	analysis.LastUpdatedAt = time.Now()
	analysis.LastUpdatedBy = userID

	if err := s.analysisRepo.UpdateAnalysis(ctx, *analysis); err != nil {
		s.LogError(ctx, err, "Failed to rename analysis",
			slog.String("analysis_id", analysisID))
		return nil, err
	}
	return analysis, nil
}

func (s *analysisService) DuplicateAnalysis(ctx context.Context, analysisID string, req dto.DuplicateAnalysisRequest, userID string) (*domain.Analysis, error) {
	source, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dup := domain.Analysis{
		AnalysisID: uuid.NewString(),
		ClientID:   source.ClientID,
		Name:       req.Name,
		BaseYear:   source.BaseYear,
		Plan:       clonePlan(source.Plan),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.analysisRepo.SaveAnalysis(ctx, dup); err != nil {
		s.LogError(ctx, err, "Failed to save duplicated analysis",
			slog.String("source_analysis_id", analysisID),
			slog.String("analysis_id", dup.AnalysisID))
		return nil, err
	}

	s.LogInfo(ctx, "Analysis duplicated",
		slog.String("source_analysis_id", analysisID),
		slog.String("analysis_id", dup.AnalysisID))
	return &dup, nil
}

// clonePlan deep-copies a plan, minting fresh IDs for sections and items so
// the copy is fully independent of its source.
func clonePlan(plan domain.Plan) domain.Plan {
	sections := make([]domain.Section, len(plan.Sections))
	for i, section := range plan.Sections {
		items := make([]domain.LineItem, len(section.Items))
		for j, item := range section.Items {
			items[j] = item
			items[j].ItemID = uuid.NewString()
			items[j].Values = cloneValues(item.Values)
		}
		sections[i] = section
		sections[i].SectionID = uuid.NewString()
		sections[i].Items = items
	}
	return domain.Plan{Sections: sections}
}

func cloneValues(values map[int]decimal.Decimal) map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(values))
	for month, v := range values {
		out[month] = v
	}
	return out
}

func (s *analysisService) DeleteAnalysis(ctx context.Context, analysisID string, userID string) error {
	if err := s.analysisRepo.DeleteAnalysis(ctx, analysisID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete analysis",
				slog.String("analysis_id", analysisID))
		}
		return err
	}

	s.LogInfo(ctx, "Analysis deleted",
		slog.String("analysis_id", analysisID),
		slog.String("user_id", userID))
	return nil
}

func (s *analysisService) ReplacePlan(ctx context.Context, analysisID string, req dto.ReplacePlanRequest, userID string) (*domain.Analysis, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	plan, err := domain.NewPlan(req.Sections)
	if err != nil {
		return nil, err
	}
	analysis.Plan = plan

	return s.storePlan(ctx, analysis, userID)
}

func (s *analysisService) AddLineItem(ctx context.Context, analysisID string, req dto.AddLineItemRequest, userID string) (*domain.Analysis, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	section, ok := analysis.Plan.SectionByID(req.SectionID)
	if !ok {
		return nil, fmt.Errorf("section %s: %w", req.SectionID, apperrors.ErrNotFound)
	}

	item := domain.LineItem{
		ItemID:        uuid.NewString(),
		AccountNumber: req.AccountNumber,
		Label:         req.Label,
		Kind:          req.Kind,
		TaxKind:       req.TaxKind,
		Values:        planning.DistributeEvenly(utils.ParseAmount(req.YearlyTotal)),
	}
	section.Items = append(section.Items, item)

	return s.storePlan(ctx, analysis, userID)
}

func (s *analysisService) UpdateItemMonth(ctx context.Context, analysisID string, itemID string, req dto.UpdateItemMonthRequest, userID string) (*domain.Analysis, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	item, err := findItem(&analysis.Plan, itemID)
	if err != nil {
		return nil, err
	}

	if item.Values == nil {
		item.Values = make(map[int]decimal.Decimal)
	}
	item.Values[req.Month] = utils.ParseAmount(req.Value)

	return s.storePlan(ctx, analysis, userID)
}

func (s *analysisService) SetItemYearTotal(ctx context.Context, analysisID string, itemID string, req dto.SetItemYearTotalRequest, userID string) (*domain.Analysis, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	item, err := findItem(&analysis.Plan, itemID)
	if err != nil {
		return nil, err
	}

	item.Values = planning.RescaleProportionally(utils.ParseAmount(req.Total), item.Values)

	return s.storePlan(ctx, analysis, userID)
}

func (s *analysisService) RemoveLineItem(ctx context.Context, analysisID string, itemID string, userID string) (*domain.Analysis, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	removed := false
	for i := range analysis.Plan.Sections {
		section := &analysis.Plan.Sections[i]
		for j := range section.Items {
			if section.Items[j].ItemID == itemID {
				section.Items = append(section.Items[:j], section.Items[j+1:]...)
				removed = true
				break
			}
		}
		if removed {
			break
		}
	}
	if !removed {
		return nil, fmt.Errorf("line item %s: %w", itemID, apperrors.ErrNotFound)
	}

	return s.storePlan(ctx, analysis, userID)
}

// storePlan persists a plan mutation. Untagged rows of the tax-and-private
// section are auto-tagged here, once, before the plan is written.
func (s *analysisService) storePlan(ctx context.Context, analysis *domain.Analysis, userID string) (*domain.Analysis, error) {
	for i := range analysis.Plan.Sections {
		if analysis.Plan.Sections[i].Category == domain.CategoryTaxAndPrivate {
			planning.AutoTagTaxItems(&analysis.Plan.Sections[i])
		}
	}

	analysis.LastUpdatedAt = time.Now()
	analysis.LastUpdatedBy = userID

	if err := s.analysisRepo.UpdateAnalysis(ctx, *analysis); err != nil {
		s.LogError(ctx, err, "Failed to store plan",
			slog.String("analysis_id", analysis.AnalysisID))
		return nil, err
	}
	return analysis, nil
}

// findItem locates a line item anywhere in the plan.
func findItem(plan *domain.Plan, itemID string) (*domain.LineItem, error) {
	for i := range plan.Sections {
		for j := range plan.Sections[i].Items {
			if plan.Sections[i].Items[j].ItemID == itemID {
				return &plan.Sections[i].Items[j], nil
			}
		}
	}
	return nil, fmt.Errorf("line item %s: %w", itemID, apperrors.ErrNotFound)
}
