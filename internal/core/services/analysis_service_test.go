package services_test

import (
	"context"
	"testing"

	"github.com/plandesk/biz_planning_app/internal/apperrors"
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	portssvc "github.com/plandesk/biz_planning_app/internal/core/ports/services"
	"github.com/plandesk/biz_planning_app/internal/core/services"
	"github.com/plandesk/biz_planning_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AnalysisRepository (based on analysisService usage) ---
type MockAnalysisRepository struct {
	mock.Mock
}

func (m *MockAnalysisRepository) FindAnalysisByID(ctx context.Context, analysisID string) (*domain.Analysis, error) {
	args := m.Called(ctx, analysisID)
	var analysis *domain.Analysis
	if args.Get(0) != nil {
		analysis = args.Get(0).(*domain.Analysis)
	}
	return analysis, args.Error(1)
}

func (m *MockAnalysisRepository) ListAnalysesByClient(ctx context.Context, clientID string) ([]domain.Analysis, error) {
	args := m.Called(ctx, clientID)
	var analyses []domain.Analysis
	if args.Get(0) != nil {
		analyses = args.Get(0).([]domain.Analysis)
	}
	return analyses, args.Error(1)
}

func (m *MockAnalysisRepository) SaveAnalysis(ctx context.Context, analysis domain.Analysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockAnalysisRepository) UpdateAnalysis(ctx context.Context, analysis domain.Analysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockAnalysisRepository) DeleteAnalysis(ctx context.Context, analysisID string) error {
	args := m.Called(ctx, analysisID)
	return args.Error(0)
}

// --- Mock ClientRepository (reader side only; that is all the service needs) ---
type MockClientReader struct {
	mock.Mock
}

func (m *MockClientReader) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientReader) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

// --- Test Suite ---
type AnalysisServiceTestSuite struct {
	suite.Suite
	mockAnalysisRepo *MockAnalysisRepository
	mockClientRepo   *MockClientReader
	service          portssvc.AnalysisSvcFacade
}

func (suite *AnalysisServiceTestSuite) SetupTest() {
	suite.mockAnalysisRepo = new(MockAnalysisRepository)
	suite.mockClientRepo = new(MockClientReader)
	suite.service = services.NewAnalysisService(suite.mockAnalysisRepo, suite.mockClientRepo)
}

// testAnalysis builds a small two-section plan with a single revenue row worth
// 1200 spread evenly, plus an empty tax-and-private section.
func testAnalysis() *domain.Analysis {
	values := make(map[int]decimal.Decimal, 12)
	for month := 1; month <= 12; month++ {
		values[month] = decimal.NewFromInt(100)
	}
	return &domain.Analysis{
		AnalysisID: "a1",
		ClientID:   "c1",
		Name:       "Plan 2026",
		BaseYear:   2026,
		Plan: domain.Plan{
			Sections: []domain.Section{
				{
					SectionID: "sec-rev",
					Label:     "Revenue",
					Category:  domain.CategoryRevenue,
					Items: []domain.LineItem{
						{
							ItemID: "item-rev",
							Label:  "Consulting fees",
							Kind:   domain.ItemRevenue,
							Values: values,
						},
					},
				},
				{
					SectionID:  "sec-tax",
					Label:      "Taxes and private",
					OrderIndex: 1,
					Category:   domain.CategoryTaxAndPrivate,
					Items:      []domain.LineItem{},
				},
			},
		},
	}
}

// --- CreateAnalysis Tests ---

func (suite *AnalysisServiceTestSuite) TestCreateAnalysis_SeedsStandardSections() {
	ctx := context.Background()
	client := &domain.Client{ClientID: "c1", Name: "Muster GmbH"}

	suite.mockClientRepo.On("FindClientByID", ctx, "c1").Return(client, nil).Once()
	suite.mockAnalysisRepo.On("SaveAnalysis", ctx, mock.MatchedBy(func(a domain.Analysis) bool {
		if len(a.Plan.Sections) != len(domain.SectionCategories) {
			return false
		}
		for i, section := range a.Plan.Sections {
			if section.Category != domain.SectionCategories[i] {
				return false
			}
			if section.SectionID == "" || len(section.Items) != 0 {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	created, err := suite.service.CreateAnalysis(ctx, "c1", dto.CreateAnalysisRequest{
		Name:     "Plan 2027",
		BaseYear: 2027,
	}, "u1")

	suite.Require().NoError(err)
	suite.Equal("c1", created.ClientID)
	suite.Equal(2027, created.BaseYear)
	suite.NotEmpty(created.AnalysisID)
	suite.Equal("u1", created.CreatedBy)
	suite.mockAnalysisRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *AnalysisServiceTestSuite) TestCreateAnalysis_UnknownClient() {
	ctx := context.Background()
	suite.mockClientRepo.On("FindClientByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateAnalysis(ctx, "ghost", dto.CreateAnalysisRequest{Name: "x", BaseYear: 2026}, "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(created)
	suite.mockAnalysisRepo.AssertNotCalled(suite.T(), "SaveAnalysis", mock.Anything, mock.Anything)
}

// --- DuplicateAnalysis Tests ---

func (suite *AnalysisServiceTestSuite) TestDuplicateAnalysis_DeepCopiesWithFreshIDs() {
	ctx := context.Background()
	source := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(source, nil).Once()
	suite.mockAnalysisRepo.On("SaveAnalysis", ctx, mock.AnythingOfType("domain.Analysis")).Return(nil).Once()

	dup, err := suite.service.DuplicateAnalysis(ctx, "a1", dto.DuplicateAnalysisRequest{Name: "Plan 2026 (copy)"}, "u2")

	suite.Require().NoError(err)
	suite.NotEqual(source.AnalysisID, dup.AnalysisID)
	suite.Equal(source.ClientID, dup.ClientID)
	suite.Equal(source.BaseYear, dup.BaseYear)
	suite.Equal("Plan 2026 (copy)", dup.Name)
	suite.Equal("u2", dup.CreatedBy)

	suite.Require().Len(dup.Plan.Sections, len(source.Plan.Sections))
	suite.NotEqual(source.Plan.Sections[0].SectionID, dup.Plan.Sections[0].SectionID)
	suite.Require().Len(dup.Plan.Sections[0].Items, 1)
	suite.NotEqual(source.Plan.Sections[0].Items[0].ItemID, dup.Plan.Sections[0].Items[0].ItemID)

	// Mutating the copy's month map must not touch the source.
	dup.Plan.Sections[0].Items[0].Values[1] = decimal.NewFromInt(999)
	suite.True(source.Plan.Sections[0].Items[0].Values[1].Equal(decimal.NewFromInt(100)))

	suite.mockAnalysisRepo.AssertExpectations(suite.T())
}

// --- Plan Editing Tests ---

func (suite *AnalysisServiceTestSuite) TestAddLineItem_DistributesYearlyTotalEvenly() {
	ctx := context.Background()
	analysis := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()
	suite.mockAnalysisRepo.On("UpdateAnalysis", ctx, mock.AnythingOfType("domain.Analysis")).Return(nil).Once()

	updated, err := suite.service.AddLineItem(ctx, "a1", dto.AddLineItemRequest{
		SectionID:   "sec-rev",
		Label:       "Licence income",
		Kind:        domain.ItemRevenue,
		YearlyTotal: "100",
	}, "u1")

	suite.Require().NoError(err)
	section, ok := updated.Plan.SectionByID("sec-rev")
	suite.Require().True(ok)
	suite.Require().Len(section.Items, 2)

	item := section.Items[1]
	suite.Equal("Licence income", item.Label)
	// 100/12 floored to cents for Jan-Nov, December takes the remainder.
	suite.True(item.Values[1].Equal(decimal.RequireFromString("8.33")))
	suite.True(item.Values[11].Equal(decimal.RequireFromString("8.33")))
	suite.True(item.Values[12].Equal(decimal.RequireFromString("8.37")))
	suite.True(item.YearTotal().Equal(decimal.NewFromInt(100)))

	suite.mockAnalysisRepo.AssertExpectations(suite.T())
}

func (suite *AnalysisServiceTestSuite) TestAddLineItem_UnknownSection() {
	ctx := context.Background()
	analysis := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()

	updated, err := suite.service.AddLineItem(ctx, "a1", dto.AddLineItemRequest{
		SectionID:   "no-such-section",
		Label:       "x",
		Kind:        domain.ItemExpense,
		YearlyTotal: "10",
	}, "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockAnalysisRepo.AssertNotCalled(suite.T(), "UpdateAnalysis", mock.Anything, mock.Anything)
}

func (suite *AnalysisServiceTestSuite) TestUpdateItemMonth_MalformedValueFailsClosedToZero() {
	ctx := context.Background()
	analysis := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()
	suite.mockAnalysisRepo.On("UpdateAnalysis", ctx, mock.AnythingOfType("domain.Analysis")).Return(nil).Once()

	updated, err := suite.service.UpdateItemMonth(ctx, "a1", "item-rev", dto.UpdateItemMonthRequest{
		Month: 3,
		Value: "12,34abc",
	}, "u1")

	suite.Require().NoError(err)
	item := updated.Plan.Sections[0].Items[0]
	suite.True(item.Values[3].IsZero())
	// Other months are untouched.
	suite.True(item.Values[4].Equal(decimal.NewFromInt(100)))

	suite.mockAnalysisRepo.AssertExpectations(suite.T())
}

func (suite *AnalysisServiceTestSuite) TestUpdateItemMonth_AcceptsCommaDecimalSeparator() {
	ctx := context.Background()
	analysis := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()
	suite.mockAnalysisRepo.On("UpdateAnalysis", ctx, mock.AnythingOfType("domain.Analysis")).Return(nil).Once()

	updated, err := suite.service.UpdateItemMonth(ctx, "a1", "item-rev", dto.UpdateItemMonthRequest{
		Month: 7,
		Value: "1234,56",
	}, "u1")

	suite.Require().NoError(err)
	item := updated.Plan.Sections[0].Items[0]
	suite.True(item.Values[7].Equal(decimal.RequireFromString("1234.56")))
}

func (suite *AnalysisServiceTestSuite) TestSetItemYearTotal_RescalesProportionally() {
	ctx := context.Background()
	analysis := testAnalysis()
	// Skew January so the rescale has a real profile to preserve.
	analysis.Plan.Sections[0].Items[0].Values[1] = decimal.NewFromInt(1300)

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()
	suite.mockAnalysisRepo.On("UpdateAnalysis", ctx, mock.AnythingOfType("domain.Analysis")).Return(nil).Once()

	// Old total 1300+11*100 = 2400; halving it halves every month.
	updated, err := suite.service.SetItemYearTotal(ctx, "a1", "item-rev", dto.SetItemYearTotalRequest{Total: "1200"}, "u1")

	suite.Require().NoError(err)
	item := updated.Plan.Sections[0].Items[0]
	suite.True(item.Values[1].Equal(decimal.NewFromInt(650)))
	suite.True(item.Values[2].Equal(decimal.NewFromInt(50)))
	suite.True(item.YearTotal().Equal(decimal.NewFromInt(1200)))
}

func (suite *AnalysisServiceTestSuite) TestRemoveLineItem_NotFound() {
	ctx := context.Background()
	analysis := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()

	updated, err := suite.service.RemoveLineItem(ctx, "a1", "no-such-item", "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockAnalysisRepo.AssertNotCalled(suite.T(), "UpdateAnalysis", mock.Anything, mock.Anything)
}

func (suite *AnalysisServiceTestSuite) TestRemoveLineItem_Success() {
	ctx := context.Background()
	analysis := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()
	suite.mockAnalysisRepo.On("UpdateAnalysis", ctx, mock.AnythingOfType("domain.Analysis")).Return(nil).Once()

	updated, err := suite.service.RemoveLineItem(ctx, "a1", "item-rev", "u1")

	suite.Require().NoError(err)
	suite.Empty(updated.Plan.Sections[0].Items)
	suite.mockAnalysisRepo.AssertExpectations(suite.T())
}

func (suite *AnalysisServiceTestSuite) TestReplacePlan_RejectsDuplicateCategories() {
	ctx := context.Background()
	analysis := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()

	updated, err := suite.service.ReplacePlan(ctx, "a1", dto.ReplacePlanRequest{
		Sections: []domain.Section{
			{SectionID: "s1", Label: "Revenue A", Category: domain.CategoryRevenue},
			{SectionID: "s2", Label: "Revenue B", Category: domain.CategoryRevenue},
		},
	}, "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockAnalysisRepo.AssertNotCalled(suite.T(), "UpdateAnalysis", mock.Anything, mock.Anything)
}

// --- Auto-Tagging on Store ---

func (suite *AnalysisServiceTestSuite) TestStorePlan_AutoTagsUntaggedTaxItems() {
	ctx := context.Background()
	analysis := testAnalysis()
	analysis.Plan.Sections[1].Items = []domain.LineItem{
		{ItemID: "item-svs", Label: "SVS Beiträge", Kind: domain.ItemExpense, Values: map[int]decimal.Decimal{}},
		{ItemID: "item-est", Label: "Einkommensteuer", Kind: domain.ItemExpense, Values: map[int]decimal.Decimal{}},
		{ItemID: "item-keep", Label: "Something else", Kind: domain.ItemExpense, TaxKind: domain.TaxPrivateWithdrawal, Values: map[int]decimal.Decimal{}},
	}

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()
	suite.mockAnalysisRepo.On("UpdateAnalysis", ctx, mock.AnythingOfType("domain.Analysis")).Return(nil).Once()

	updated, err := suite.service.UpdateItemMonth(ctx, "a1", "item-rev", dto.UpdateItemMonthRequest{
		Month: 1,
		Value: "100",
	}, "u1")

	suite.Require().NoError(err)
	taxSection := updated.Plan.Sections[1]
	suite.Equal(domain.TaxSVS, taxSection.Items[0].TaxKind)
	suite.Equal(domain.TaxIncomeTax, taxSection.Items[1].TaxKind)
	// An explicit tag is never overwritten.
	suite.Equal(domain.TaxPrivateWithdrawal, taxSection.Items[2].TaxKind)
}

// --- Rename / Delete Tests ---

func (suite *AnalysisServiceTestSuite) TestRenameAnalysis_Success() {
	ctx := context.Background()
	analysis := testAnalysis()

	suite.mockAnalysisRepo.On("FindAnalysisByID", ctx, "a1").Return(analysis, nil).Once()
	suite.mockAnalysisRepo.On("UpdateAnalysis", ctx, mock.MatchedBy(func(a domain.Analysis) bool {
		return a.Name == "Renamed" && a.LastUpdatedBy == "u1"
	})).Return(nil).Once()

	updated, err := suite.service.RenameAnalysis(ctx, "a1", dto.RenameAnalysisRequest{Name: "Renamed"}, "u1")

	suite.Require().NoError(err)
	suite.Equal("Renamed", updated.Name)
	suite.mockAnalysisRepo.AssertExpectations(suite.T())
}

func (suite *AnalysisServiceTestSuite) TestDeleteAnalysis_NotFound() {
	ctx := context.Background()
	suite.mockAnalysisRepo.On("DeleteAnalysis", ctx, "ghost").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAnalysis(ctx, "ghost", "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AnalysisServiceTestSuite) TestListAnalysesByClient_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockAnalysisRepo.On("ListAnalysesByClient", ctx, "c1").Return(nil, nil).Once()

	analyses, err := suite.service.ListAnalysesByClient(ctx, "c1")

	suite.Require().NoError(err)
	suite.NotNil(analyses)
	suite.Empty(analyses)
}

func TestAnalysisServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisServiceTestSuite))
}
