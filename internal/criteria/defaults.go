package criteria

// Default returns the stock quality-value defaults. Category weights follow
// the documented 25/20/20/15/10/10 split; band anchors come from the same
// threshold tables the weights do. All of it is configuration; callers are
// expected to override per run.
func Default() Criteria {
	return Criteria{
		Name: "quality-value-default",
		Weights: Weights{
			Valuation:       0.25,
			FinancialHealth: 0.20,
			Profitability:   0.20,
			Growth:          0.15,
			Management:      0.10,
			Ethics:          0.10,
		},
		Valuation: ValuationBands{
			PERatio:        Band{Excellent: 15, Poor: 30},
			PBRatio:        Band{Excellent: 1.5, Poor: 5},
			PSRatio:        Band{Excellent: 1, Poor: 4},
			PEGRatio:       Band{Excellent: 1, Poor: 2.5},
			MarginOfSafety: Band{Excellent: 0.30, Poor: -0.10},
		},
		FinancialHealth: FinancialHealthBands{
			CurrentRatio:     Band{Excellent: 2.0, Poor: 0.8},
			QuickRatio:       Band{Excellent: 1.5, Poor: 0.4},
			DebtToEquity:     Band{Excellent: 0.5, Poor: 2.5},
			InterestCoverage: Band{Excellent: 10, Poor: 1.5},
		},
		Profitability: ProfitabilityBands{
			ROE:             Band{Excellent: 0.20, Poor: 0.05},
			ROIC:            Band{Excellent: 0.15, Poor: 0.04},
			ROA:             Band{Excellent: 0.10, Poor: 0.02},
			OperatingMargin: Band{Excellent: 0.20, Poor: 0.05},
			NetMargin:       Band{Excellent: 0.15, Poor: 0.02},
		},
		Growth: GrowthBands{
			EarningsGrowth:    Band{Excellent: 0.15, Poor: -0.05},
			RevenueGrowth:     Band{Excellent: 0.15, Poor: -0.05},
			QuarterlyMomentum: Band{Excellent: 0.15, Poor: -0.05},
		},
		Management: ManagementBands{
			InsiderOwnership:   Band{Excellent: 0.10, Poor: 0.005},
			InstitutionalRange: Range{Low: 0.40, High: 0.80},
			InstitutionalSlack: 0.30,
			EfficiencyROE:      Band{Excellent: 0.20, Poor: 0.05},
		},
		Ethics: EthicsBands{
			ESGScore:        Band{Excellent: 70, Poor: 25},
			GovernanceScore: Band{Excellent: 70, Poor: 30},
		},
		EthicalProfile: ProfileModerate,
		DCF: DCF{
			HorizonYears: 5,
			Bull:         Scenario{GrowthRate: 0.12, DiscountRate: 0.09, TerminalGrowth: 0.03},
			Base:         Scenario{GrowthRate: 0.08, DiscountRate: 0.10, TerminalGrowth: 0.03},
			Bear:         Scenario{GrowthRate: 0.04, DiscountRate: 0.11, TerminalGrowth: 0.02},
		},
		Filters: Filters{},
	}
}
