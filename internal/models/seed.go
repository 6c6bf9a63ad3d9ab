package models

// SeedDocument is one entry of the built-in knowledge corpus used when the
// durable store has no documents yet.
type SeedDocument struct {
	Content  string
	Metadata DocumentMetadata
}

// SeedKnowledge is the bundled financial-advice corpus for immigrants and
// gig workers. It is persisted on first initialization and then owned by
// the durable store.
var SeedKnowledge = []SeedDocument{
	// Credit building
	{
		Content: "For immigrants on H-1B visa, building credit is crucial for long-term financial success. Start with a secured credit card from banks like Capital One or Discover. Make small purchases monthly and pay the full balance on time. After 6-12 months, you can apply for an unsecured credit card. Keep credit utilization below 30% of your limit.",
		Metadata: DocumentMetadata{
			Category: "credit", VisaType: "H-1B", Priority: PriorityHigh, TargetAudience: "immigrants",
			Extra: map[string]any{"time_horizon": "6-12_months"},
		},
	},
	{
		Content: "F-1 students can build credit with student credit cards that have lower requirements. Banks like Bank of America and Wells Fargo offer special programs for international students. You'll need your passport, I-20 form, and proof of income (part-time job or financial aid). Start with a low limit and build gradually.",
		Metadata: DocumentMetadata{
			Category: "credit", VisaType: "F-1", Priority: PriorityHigh, TargetAudience: "students",
			Extra: map[string]any{"time_horizon": "3-6_months"},
		},
	},
	{
		Content: "Green card holders have the same credit building opportunities as US citizens. You can apply for most credit cards, auto loans, and mortgages. However, if you're new to the US, you may still need to build credit history. Consider becoming an authorized user on a family member's credit card to jumpstart your credit score.",
		Metadata: DocumentMetadata{
			Category: "credit", VisaType: "green_card", Priority: PriorityMedium, TargetAudience: "immigrants",
			Extra: map[string]any{"time_horizon": "1-3_months"},
		},
	},

	// Tax planning
	{
		Content: "Gig workers and freelancers must pay quarterly estimated taxes to avoid penalties. Set aside 25-30% of your income for taxes. Use Form 1040-ES to calculate quarterly payments. Consider opening a separate high-yield savings account specifically for tax payments. Track all business expenses including home office, equipment, and travel.",
		Metadata: DocumentMetadata{
			Category: "taxes", WorkerType: "gig", Priority: PriorityHigh, TargetAudience: "freelancers",
			Extra: map[string]any{"time_horizon": "quarterly"},
		},
	},
	{
		Content: "H-1B workers are typically W-2 employees, so taxes are withheld automatically. However, you may be eligible for tax treaties between the US and your home country. Check if your country has a tax treaty to avoid double taxation. Consider contributing to a 401(k) to reduce taxable income and build retirement savings.",
		Metadata: DocumentMetadata{
			Category: "taxes", VisaType: "H-1B", Priority: PriorityMedium, TargetAudience: "employees",
			Extra: map[string]any{"time_horizon": "annual"},
		},
	},
	{
		Content: "F-1 students on OPT or CPT may have complex tax situations. You might be considered a non-resident for tax purposes initially, which affects which tax forms you file. Consider using tax software like TurboTax or hiring a tax professional familiar with international student tax issues. Keep all your tax documents for future reference.",
		Metadata: DocumentMetadata{
			Category: "taxes", VisaType: "F-1", Priority: PriorityHigh, TargetAudience: "students",
			Extra: map[string]any{"time_horizon": "annual"},
		},
	},

	// Emergency funds
	{
		Content: "Immigrants should maintain a larger emergency fund than typical recommendations. Aim for 6-12 months of expenses instead of the standard 3-6 months. This accounts for visa renewal costs, potential job transitions, and travel expenses to your home country. Keep this money in a high-yield savings account that's easily accessible.",
		Metadata: DocumentMetadata{
			Category: "emergency_fund", Priority: PriorityHigh, TargetAudience: "immigrants",
			Extra: map[string]any{"time_horizon": "ongoing", "amount_range": "6-12_months_expenses"},
		},
	},
	{
		Content: "Gig workers need a robust emergency fund due to income volatility. Aim for 6-9 months of expenses, including both personal and business expenses. Consider having separate emergency funds: one for personal emergencies and another for business downturns. This provides stability during slow periods or client payment delays.",
		Metadata: DocumentMetadata{
			Category: "emergency_fund", WorkerType: "gig", Priority: PriorityHigh,
			Extra: map[string]any{"time_horizon": "ongoing", "amount_range": "6-9_months_expenses"},
		},
	},

	// Investment strategies
	{
		Content: "Roth IRA is excellent for immigrants because contributions can be withdrawn penalty-free after 5 years. This provides flexibility if you need to return to your home country. You can contribute up to $6,500 annually (2023 limit). Choose low-cost index funds like VTSAX or VTIAX for broad market exposure. Start investing even with small amounts through dollar-cost averaging.",
		Metadata: DocumentMetadata{
			Category: "investing", Priority: PriorityMedium, TargetAudience: "immigrants",
			Extra: map[string]any{"account_type": "Roth_IRA", "time_horizon": "5+_years", "contribution_limit": "$6500_annual"},
		},
	},
	{
		Content: "H-1B workers should maximize their 401(k) employer match if available. This is free money that significantly boosts your retirement savings. If your employer doesn't offer a 401(k), consider opening a Traditional IRA for tax-deferred growth. For long-term US residents, consider a mix of Traditional and Roth accounts for tax diversification.",
		Metadata: DocumentMetadata{
			Category: "investing", VisaType: "H-1B", Priority: PriorityHigh,
			Extra: map[string]any{"account_type": "401k", "time_horizon": "long_term", "benefit": "employer_match"},
		},
	},
	{
		Content: "Gig workers can open a Solo 401(k) or SEP-IRA for retirement savings. These accounts allow higher contribution limits than traditional IRAs. A Solo 401(k) lets you contribute as both employer and employee, potentially up to $66,000 annually. Consider the tax implications and your long-term plans when choosing between Traditional and Roth options.",
		Metadata: DocumentMetadata{
			Category: "investing", WorkerType: "gig", Priority: PriorityMedium,
			Extra: map[string]any{"account_type": "Solo_401k", "time_horizon": "long_term", "contribution_limit": "$66000_annual"},
		},
	},

	// Banking and financial services
	{
		Content: "International students should open a student checking account with no monthly fees. Many banks offer special programs for F-1 students with lower requirements. You'll typically need your passport, I-20, and proof of address. Consider online banks like Ally or Capital One 360 for better interest rates and lower fees.",
		Metadata: DocumentMetadata{
			Category: "banking", VisaType: "F-1", Priority: PriorityHigh, TargetAudience: "students",
			Extra: map[string]any{"account_type": "checking", "fees": "no_monthly_fees"},
		},
	},
	{
		Content: "H-1B workers should consider premium checking accounts that offer benefits like waived fees, higher interest rates, and better customer service. Look for accounts that don't require a Social Security number initially, as you may be waiting for your SSN. Consider credit unions which often have better rates and more personalized service.",
		Metadata: DocumentMetadata{
			Category: "banking", VisaType: "H-1B", Priority: PriorityMedium, TargetAudience: "employees",
			Extra: map[string]any{"account_type": "premium_checking"},
		},
	},

	// Home buying
	{
		Content: "Green card holders can qualify for most mortgage programs including FHA loans with 3.5% down payment. However, you'll need at least 2 years of US credit history and employment history. Consider working with a mortgage broker familiar with immigrant homebuyers. Save for closing costs (2-5% of home price) in addition to the down payment.",
		Metadata: DocumentMetadata{
			Category: "home_buying", VisaType: "green_card", Priority: PriorityMedium,
			Extra: map[string]any{"time_horizon": "2+_years", "down_payment": "3.5%_minimum"},
		},
	},
	{
		Content: "H-1B workers can buy homes but may face challenges with traditional mortgages. Some lenders offer special programs for H-1B holders. You'll need a valid work permit, stable employment, and good credit. Consider the uncertainty of visa renewals when deciding on home ownership. Renting might be more flexible until you have permanent residency.",
		Metadata: DocumentMetadata{
			Category: "home_buying", VisaType: "H-1B", Priority: PriorityLow,
			Extra: map[string]any{"time_horizon": "3+_years", "consideration": "visa_uncertainty"},
		},
	},

	// Insurance
	{
		Content: "Health insurance is mandatory for most visa holders. F-1 students typically get insurance through their university. H-1B workers usually get employer-sponsored insurance. Consider supplemental insurance for dental, vision, and prescription coverage. If you're between jobs, COBRA or marketplace insurance can provide temporary coverage.",
		Metadata: DocumentMetadata{
			Category: "insurance", Priority: PriorityHigh, TargetAudience: "immigrants",
			Extra: map[string]any{"insurance_type": "health", "requirement": "mandatory"},
		},
	},
	{
		Content: "Renters insurance is highly recommended for all immigrants. It's affordable (typically $15-30/month) and covers your personal belongings, liability, and additional living expenses. This is especially important if you're living in furnished apartments or have valuable electronics. Many landlords require it as part of the lease agreement.",
		Metadata: DocumentMetadata{
			Category: "insurance", Priority: PriorityMedium, TargetAudience: "immigrants",
			Extra: map[string]any{"insurance_type": "renters", "cost_range": "$15-30_monthly"},
		},
	},

	// Budgeting and expense management
	{
		Content: "Use the 50/30/20 rule for budgeting: 50% for needs (rent, food, transportation), 30% for wants (entertainment, dining out), and 20% for savings and debt repayment. Track expenses for at least 3 months to understand your spending patterns. Use apps like Mint, YNAB, or a simple spreadsheet to monitor your finances regularly.",
		Metadata: DocumentMetadata{
			Category: "budgeting", Priority: PriorityHigh, TargetAudience: "general",
			Extra: map[string]any{"time_horizon": "ongoing", "rule": "50/30/20"},
		},
	},
	{
		Content: "Gig workers should track both personal and business expenses separately. Use accounting software like QuickBooks or FreshBooks for business expenses. Keep detailed records of all business-related purchases, travel, and home office expenses. This helps with tax deductions and understanding your true profit margins.",
		Metadata: DocumentMetadata{
			Category: "budgeting", WorkerType: "gig", Priority: PriorityHigh, TargetAudience: "freelancers",
			Extra: map[string]any{"time_horizon": "ongoing", "separation": "personal_business"},
		},
	},

	// Debt management
	{
		Content: "Avoid high-interest debt like credit cards and payday loans. If you have existing debt, prioritize paying off high-interest debt first (debt avalanche method). Consider balance transfer cards with 0% introductory APR to consolidate debt. Make minimum payments on all debts while focusing extra payments on the highest interest rate debt.",
		Metadata: DocumentMetadata{
			Category: "debt_management", Priority: PriorityHigh, TargetAudience: "general",
			Extra: map[string]any{"method": "debt_avalanche", "strategy": "balance_transfer"},
		},
	},
	{
		Content: "Student loan debt for international students can be complex. If you borrowed from your home country, consider the exchange rate impact on payments. US student loans for international students typically require a co-signer. Explore income-driven repayment plans if you're struggling with payments. Consider refinancing if you have good credit and stable income.",
		Metadata: DocumentMetadata{
			Category: "debt_management", Priority: PriorityMedium, TargetAudience: "students",
			Extra: map[string]any{"loan_type": "student_loans", "consideration": "exchange_rates"},
		},
	},

	// Financial planning for visa transitions
	{
		Content: "Plan for visa renewal costs and potential gaps in employment. H-1B renewals can cost $2,000-5,000 including legal fees. Save for these expenses well in advance. Consider the timing of renewals and potential processing delays. Have a backup plan for income during renewal periods, such as freelance work or savings.",
		Metadata: DocumentMetadata{
			Category: "visa_planning", VisaType: "H-1B", Priority: PriorityHigh, TargetAudience: "immigrants",
			Extra: map[string]any{"cost_range": "$2000-5000", "time_horizon": "renewal_cycle"},
		},
	},
	{
		Content: "Green card application process can be expensive and lengthy. Budget for legal fees ($3,000-10,000), medical exams ($500-1,000), and filing fees ($1,000-2,000). The process can take 1-3 years, so plan accordingly. Consider the impact on your career and financial goals during this period.",
		Metadata: DocumentMetadata{
			Category: "visa_planning", VisaType: "green_card", Priority: PriorityMedium, TargetAudience: "immigrants",
			Extra: map[string]any{"cost_range": "$4500-13000", "time_horizon": "1-3_years"},
		},
	},
}
