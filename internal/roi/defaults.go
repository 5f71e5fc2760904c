package roi

// DefaultInputs returns the canonical benchmark scenario used as a
// starting point before prospect-specific customization. Each call
// returns a fresh independent copy, so concurrent sessions can customize
// their own record without aliasing. Never expose a shared instance.
func DefaultInputs() CalculatorInputs {
	return CalculatorInputs{
		Initial: InitialCosts{
			SoftwareLicenseSetupFee:  10000,
			SoftwareLicenseAnnualFee: 50000,
			HardwareCosts:            0,
			ImplementationHours:      40,
			ImplementationHourlyRate: 150,
			TrainingUsers:            10,
			TrainingCostPerUser:      250,
			OtherOneTimeCosts:        0,
		},
		Ongoing: OngoingCosts{
			AnnualMaintenanceSupport: 10000,
			PersonnelFTEs:            0.1,
			PersonnelBlendedSalary:   70000,
			UtilitiesInfrastructure:  0,
			MarketingAdoption:        0,
			OtherAnnualOpEx:          0,
		},
		Benefits: QuantifiableBenefits{
			CurrentToolCosts:            []float64{15000, 8000, 5000},
			FTEHoursSavedPerWeek:        5,
			BlendedHourlyRate:           45,
			ClientCurrentRevenue:        10000000,
			BenchmarkImprovementPercent: 15,
			AttributionFactor:           35,
		},
		Financial: FinancialParameters{
			TimeHorizonYears:   3,
			AnnualDiscountRate: 10,
		},
	}
}
