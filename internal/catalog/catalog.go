// Package catalog holds the constant product catalog the platform serves.
// The data is defined once here, loaded into the database at startup, and
// never mutated for the lifetime of the process.
package catalog

import "investhub/internal/models"

// Providers lists every institution issuing products on the platform.
func Providers() []models.Provider {
	return []models.Provider{
		{ID: "p1", Name: "GoldenBridge Finance", Logo: "https://ui-avatars.com/api/?name=GB&background=eab308&color=fff"},
		{ID: "p2", Name: "Prime Mutuals", Logo: "https://ui-avatars.com/api/?name=PM&background=2563eb&color=fff"},
		{ID: "p3", Name: "Govt Direct", Logo: "https://ui-avatars.com/api/?name=GD&background=dc2626&color=fff"},
		{ID: "p4", Name: "HDFC Bank", Logo: "https://ui-avatars.com/api/?name=HDFC&background=003366&color=fff"},
		{ID: "p5", Name: "ICICI Bank", Logo: "https://ui-avatars.com/api/?name=ICICI&background=f97316&color=fff"},
		{ID: "p6", Name: "Samunnati", Logo: "https://ui-avatars.com/api/?name=Samunnati&background=84cc16&color=fff"},
	}
}

// Products lists the full catalog in display order. Position is assigned from
// slice order at seed time.
func Products() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Title:         "10-year Government Bond",
			ProviderID:    "p3",
			AssetType:     models.AssetTypeBond,
			MinInvestment: 1000,
			TenureMonths:  120,
			ExpectedYield: 7.26,
			Risk:          models.RiskLow,
			CreditRating:  "SOVEREIGN",
			Tags:          []string{"Sovereign", "Guaranteed"},
			Description:   "Secure long-term investment backed by the Government of India.",
			RaisedAmount:  45000000,
			TotalGoal:     100000000,
			ReasonsToInvest: []string{
				"Sovereign Guarantee: Backed by the Government of India, offering the highest safety.",
				"Regular Income: Half-yearly interest payments directly to your bank account.",
				"No TDS: No Tax Deducted at Source on interest payments for resident individuals.",
			},
			KeyHighlights: []models.KeyHighlight{
				{Label: "Issue Size", Value: "₹10,000 Cr", Subtext: "Total issue size", ColorTag: "blue"},
				{Label: "Coupon Rate", Value: "7.26%", Subtext: "Paid semi-annually", ColorTag: "green"},
			},
			RepaymentSchedule: &models.RepaymentSchedule{Interest: "Half-Yearly", Principal: "At Maturity"},
		},
		{
			ID:            "2",
			Title:         "Samunnati Agro NCD",
			ProviderID:    "p6",
			AssetType:     models.AssetTypeBond,
			MinInvestment: 10000, // unit price
			TenureMonths:  10,
			ExpectedYield: 11.5,
			Risk:          models.RiskMedium,
			CreditRating:  "CRISIL BBB",
			Tags:          []string{"Agri-Infra", "High Yield"},
			Description:   "Invest in a specialized agri-value chain enabler offering attractive short-term returns.",
			RaisedAmount:  4320000,
			TotalGoal:     15000000,
			ReasonsToInvest: []string{
				"High-Impact Agri-Focused NBFC: Samunnati operates exclusively in India's underserved agri-credit market.",
				"Backed by Strong Capital Base: INR 789 Cr net worth and 21.6% CAR as of June 2024.",
				"Short Tenure: Attractive 11.5% yield with a short maturity period of just 10 months.",
			},
			KeyHighlights: []models.KeyHighlight{
				{Label: "Equity Raised", Value: "₹159 Cr", Subtext: "In Apr '23 & Q1 FY25", ColorTag: "green"},
				{Label: "Net Worth", Value: "₹789 Cr", Subtext: "With 21.6% Capital Adequacy", ColorTag: "blue"},
			},
			RepaymentSchedule: &models.RepaymentSchedule{Interest: "Monthly", Principal: "Monthly"},
		},
		{
			ID:            "3",
			Title:         "1-year Fixed Deposit",
			ProviderID:    "p5",
			AssetType:     models.AssetTypeFD,
			MinInvestment: 5000,
			TenureMonths:  12,
			ExpectedYield: 7.0,
			Risk:          models.RiskLow,
			CreditRating:  "AAA",
			Tags:          []string{"Short Term", "Liquid"},
			Description:   "Standard fixed deposit with competitive interest rates.",
			RaisedAmount:  12000000,
			TotalGoal:     50000000,
			ReasonsToInvest: []string{
				"Guaranteed Returns: Fixed interest rate for the entire tenure.",
				"Liquidity: Premature withdrawal facility available (subject to penalty).",
				"Safety: Insured up to ₹5 Lakhs by DICGC.",
			},
			KeyHighlights: []models.KeyHighlight{
				{Label: "Interest Payout", Value: "Quarterly", Subtext: "Compounding option available", ColorTag: "purple"},
				{Label: "Lock-in", Value: "7 Days", Subtext: "Minimum period", ColorTag: "blue"},
			},
			RepaymentSchedule: &models.RepaymentSchedule{Interest: "Quarterly", Principal: "At Maturity"},
		},
		{
			ID:            "4",
			Title:         "Axis Bluechip Fund",
			ProviderID:    "p2",
			AssetType:     models.AssetTypeMutualFund,
			MinInvestment: 5000,
			ExpectedYield: 12.5,
			Risk:          models.RiskMedium,
			Tags:          []string{"Equity", "Large Cap"},
			Description:   "Invests in top 100 companies by market capitalization.",
			ReasonsToInvest: []string{
				"Bluechip Focus: Invests in established companies with stable track records.",
				"Professional Management: Managed by experienced fund managers.",
				"Diversification: Instant exposure to a basket of top Indian companies.",
			},
			KeyHighlights: []models.KeyHighlight{
				{Label: "AUM", Value: "₹32,000 Cr", Subtext: "Assets Under Management", ColorTag: "blue"},
				{Label: "Expense Ratio", Value: "1.65%", Subtext: "Direct Plan", ColorTag: "green"},
			},
			RepaymentSchedule: &models.RepaymentSchedule{Interest: "N/A", Principal: "On Redemption"},
		},
		{
			ID:            "5",
			Title:         "Parag Parikh Flexi Cap Fund",
			ProviderID:    "p2",
			AssetType:     models.AssetTypeMutualFund,
			MinInvestment: 1000,
			ExpectedYield: 15.2,
			Risk:          models.RiskMedium,
			Tags:          []string{"Flexi Cap", "Value"},
			Description:   "Diversified equity fund investing across market capitalizations and sectors.",
			ReasonsToInvest: []string{
				"Global Exposure: Invests up to 35% in international equities.",
				"Value Strategy: Focuses on buying quality stocks at reasonable valuations.",
				"Long Term Wealth: Ideal for investment horizon of 5+ years.",
			},
			KeyHighlights: []models.KeyHighlight{
				{Label: "AUM", Value: "₹45,000 Cr", Subtext: "Assets Under Management", ColorTag: "blue"},
				{Label: "Exit Load", Value: "2%", Subtext: "If redeemed within 365 days", ColorTag: "purple"},
			},
			RepaymentSchedule: &models.RepaymentSchedule{Interest: "N/A", Principal: "On Redemption"},
		},
		{
			ID:            "6",
			Title:         "Small-Cap ETF",
			ProviderID:    "p1",
			AssetType:     models.AssetTypeETF,
			MinInvestment: 1000,
			ExpectedYield: 18.5,
			Risk:          models.RiskHigh,
			Tags:          []string{"High Growth", "Exchange Traded"},
			Description:   "Low cost exposure to small cap companies.",
			ReasonsToInvest: []string{
				"High Growth Potential: Small cap companies often grow faster than large caps.",
				"Low Cost: Lower expense ratio compared to active mutual funds.",
				"Real-time Trading: Buy and sell on the exchange during market hours.",
			},
			KeyHighlights: []models.KeyHighlight{
				{Label: "Tracking Error", Value: "0.05%", Subtext: "Low deviation from index", ColorTag: "green"},
				{Label: "Liquidity", Value: "High", Subtext: "Daily average volume", ColorTag: "blue"},
			},
			RepaymentSchedule: &models.RepaymentSchedule{Interest: "N/A", Principal: "On Sale"},
		},
		{
			ID:            "7",
			Title:         "SBI Tax Saving FD",
			ProviderID:    "p3",
			AssetType:     models.AssetTypeFD,
			MinInvestment: 1000,
			TenureMonths:  60,
			ExpectedYield: 6.5,
			Risk:          models.RiskLow,
			Tags:          []string{"Tax Saver", "80C"},
			Description:   "Save tax under section 80C with this 5-year lock-in FD.",
			ReasonsToInvest: []string{
				"Tax Benefit: Deduction up to ₹1.5 Lakh under Section 80C.",
				"Safety: Backed by India's largest public sector bank.",
				"Compounding: Interest compounded quarterly for higher yield.",
			},
			KeyHighlights: []models.KeyHighlight{
				{Label: "Lock-in Period", Value: "5 Years", Subtext: "Mandatory for tax benefit", ColorTag: "purple"},
				{Label: "Senior Citizen", Value: "+0.5%", Subtext: "Extra interest rate", ColorTag: "green"},
			},
			RepaymentSchedule: &models.RepaymentSchedule{Interest: "Quarterly", Principal: "At Maturity"},
		},
	}
}

// AssetTypes lists the display metadata for every asset type, in the order
// the explorer sidebar and homepage show them.
func AssetTypes() []models.AssetTypeInfo {
	return []models.AssetTypeInfo{
		{ID: models.AssetTypeBond, Label: "Bonds", Description: "Fixed income securities with regular interest payments", Icon: "FileText"},
		{ID: models.AssetTypeFD, Label: "Fixed Deposits", Description: "Safe & guaranteed returns from banks", Icon: "Building2"},
		{ID: models.AssetTypeMutualFund, Label: "Mutual Funds", Description: "Professionally managed diversified portfolios", Icon: "PieChart"},
		{ID: models.AssetTypeSIP, Label: "SIP", Description: "Systematic Investment Plans for disciplined investing", Icon: "TrendingUp"},
		{ID: models.AssetTypeETF, Label: "ETFs", Description: "Exchange traded funds for index investing", Icon: "BarChart3"},
		{ID: models.AssetTypeBasket, Label: "Baskets", Description: "Curated portfolios of stocks & funds", Icon: "Briefcase"},
		{ID: models.AssetTypeGovtScheme, Label: "Govt Schemes", Description: "Government backed savings schemes", Icon: "Landmark"},
	}
}
