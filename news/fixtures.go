package news

import "newsdesk/types"

// Demo fixtures used when no news API credential is configured, or when an
// upstream call fails. Timestamps are fixed so output ordering is stable.
var demoFixtures = map[string][]types.NewsArticle{
	SourceTechnology: {
		{
			Source:      types.NewsSource{ID: "techwire", Name: "TechWire"},
			Author:      "Dana Okafor",
			Title:       "Chipmakers Race to Ship Next-Generation AI Accelerators",
			Description: "Datacenter demand pushed accelerator orders up 42% this quarter as cloud providers expand training clusters.",
			URL:         "https://demo.newsdesk.local/tech/ai-accelerators-race",
			URLToImage:  "https://demo.newsdesk.local/img/ai-accelerators.jpg",
			PublishedAt: "2025-08-28T09:15:00Z",
			Content:     "The latest generation of AI accelerators is shipping in volume, and hyperscalers are buying everything fabs can produce. Analysts estimate the market grew 42% quarter over quarter, with backlog stretching into next year. Smaller cloud providers are turning to older parts or renting capacity to stay in the race.",
		},
		{
			Source:      types.NewsSource{ID: "techwire", Name: "TechWire"},
			Author:      "Miguel Santos",
			Title:       "Open Source Maintainers Push Back on Automated Dependency Scanners",
			Description: "A wave of low-quality automated security reports is overwhelming volunteer maintainers of popular packages.",
			URL:         "https://demo.newsdesk.local/tech/maintainers-scanner-fatigue",
			URLToImage:  "https://demo.newsdesk.local/img/oss-maintainers.jpg",
			PublishedAt: "2025-08-27T14:40:00Z",
			Content:     "Maintainers of widely used open source packages say automated scanners now account for the majority of incoming security reports, most of them duplicates or false positives. Several projects have announced triage policies that deprioritize unverified automated submissions.",
		},
		{
			Source:      types.NewsSource{ID: "bytebeat", Name: "ByteBeat"},
			Author:      "Priya Raman",
			Title:       "Cloud Startup Raises $120 Million to Challenge Incumbent Databases",
			Description: "The Series C values the serverless database startup at $1.4 billion, tripling its valuation in a year.",
			URL:         "https://demo.newsdesk.local/tech/serverless-db-series-c",
			URLToImage:  "https://demo.newsdesk.local/img/serverless-db.jpg",
			PublishedAt: "2025-08-26T08:00:00Z",
			Content:     "A serverless database startup announced a $120 million Series C, saying revenue jumped 180% year over year. The company plans to expand into Europe and launch a compliance-focused tier for banking customers.",
		},
		{
			Source:      types.NewsSource{ID: "bytebeat", Name: "ByteBeat"},
			Author:      "Lena Fischer",
			Title:       "Passkeys Finally Reach Critical Mass as Major Retailers Drop Passwords",
			Description: "Adoption surveys show 61% of shoppers used a passkey at least once last month, up from 24% a year ago.",
			URL:         "https://demo.newsdesk.local/tech/passkeys-critical-mass",
			URLToImage:  "https://demo.newsdesk.local/img/passkeys.jpg",
			PublishedAt: "2025-08-24T17:25:00Z",
			Content:     "Retail platforms report that passkey sign-ins overtook password resets for the first time. Cybersecurity teams credit the shift for a measurable drop in account takeover fraud, though support costs rose during the transition.",
		},
	},
	SourceFinance: {
		{
			Source:      types.NewsSource{ID: "marketdesk", Name: "MarketDesk"},
			Author:      "Tom Alvarez",
			Title:       "Fed Holds Rates Steady but Signals September Cut",
			Description: "Policymakers left the benchmark rate unchanged while markets priced in an 82% chance of a cut next meeting.",
			URL:         "https://demo.newsdesk.local/finance/fed-holds-september-cut",
			URLToImage:  "https://demo.newsdesk.local/img/fed-meeting.jpg",
			PublishedAt: "2025-08-28T18:05:00Z",
			Content:     "The Federal Reserve held its benchmark rate steady for a fifth consecutive meeting but softened its language on inflation. Futures markets now imply an 82% probability of a quarter-point cut in September. Bank stocks rallied on the announcement while the dollar slipped.",
		},
		{
			Source:      types.NewsSource{ID: "marketdesk", Name: "MarketDesk"},
			Author:      "Grace Liu",
			Title:       "Regional Banks Surge After Stress Test Results Beat Expectations",
			Description: "The sector index jumped 5.3% as all 31 tested banks cleared minimum capital thresholds.",
			URL:         "https://demo.newsdesk.local/finance/regional-banks-stress-tests",
			URLToImage:  "https://demo.newsdesk.local/img/regional-banks.jpg",
			PublishedAt: "2025-08-27T11:30:00Z",
			Content:     "Regional bank shares posted their best session of the year after stress test results showed stronger-than-expected capital buffers. Analysts said the results could unlock $18 billion in buybacks across the sector.",
		},
		{
			Source:      types.NewsSource{ID: "ledgerline", Name: "LedgerLine"},
			Author:      "Sofia Marino",
			Title:       "Bitcoin ETF Inflows Hit Record as Institutional Allocations Grow",
			Description: "Spot bitcoin funds absorbed $2.1 billion in a week, the largest inflow since launch.",
			URL:         "https://demo.newsdesk.local/finance/bitcoin-etf-record-inflows",
			URLToImage:  "https://demo.newsdesk.local/img/bitcoin-etf.jpg",
			PublishedAt: "2025-08-25T13:10:00Z",
			Content:     "Spot bitcoin ETFs recorded $2.1 billion of net inflows last week as pension consultants began recommending small crypto allocations. The price of bitcoin rose 7% over the period, while trading volumes on offshore exchanges declined.",
		},
		{
			Source:      types.NewsSource{ID: "ledgerline", Name: "LedgerLine"},
			Author:      "James Whitfield",
			Title:       "Retail Investors Pile Into Money Market Funds at Record Pace",
			Description: "Assets in retail money market funds crossed $2.3 trillion as savers chase 5% yields.",
			URL:         "https://demo.newsdesk.local/finance/money-market-record",
			URLToImage:  "https://demo.newsdesk.local/img/money-market.jpg",
			PublishedAt: "2025-08-23T09:45:00Z",
			Content:     "Money market fund assets reached another record as retail investors moved cash out of low-yield savings accounts. Fund managers warn that flows could reverse quickly once the Fed begins cutting rates.",
		},
	},
	SourceGeneral: {
		{
			Source:      types.NewsSource{ID: "worldbrief", Name: "WorldBrief"},
			Author:      "Amara Diallo",
			Title:       "Global Shipping Costs Ease as Port Congestion Clears",
			Description: "Container rates fell 12% month over month, relieving pressure on import prices.",
			URL:         "https://demo.newsdesk.local/general/shipping-costs-ease",
			URLToImage:  "https://demo.newsdesk.local/img/shipping.jpg",
			PublishedAt: "2025-08-26T06:20:00Z",
			Content:     "Spot container rates on major east-west routes fell for a sixth straight week as port congestion cleared and new vessel capacity came online. Economists expect the decline to feed through to consumer prices within two quarters.",
		},
		{
			Source:      types.NewsSource{ID: "worldbrief", Name: "WorldBrief"},
			Author:      "Noah Bergman",
			Title:       "Researchers Map Heat-Resistant Crops for a Warming Climate",
			Description: "A ten-year field study identifies wheat varieties that maintain yields at temperatures 3C above historical norms.",
			URL:         "https://demo.newsdesk.local/general/heat-resistant-crops",
			URLToImage:  "https://demo.newsdesk.local/img/crops.jpg",
			PublishedAt: "2025-08-22T15:55:00Z",
			Content:     "An international research consortium published results from a decade-long trial of heat-tolerant wheat. The best-performing varieties lost less than 4% of yield under sustained heat stress, compared with 23% for conventional strains.",
		},
	},
	SourceBusiness: {
		{
			Source:      types.NewsSource{ID: "marketdesk", Name: "MarketDesk"},
			Author:      "Elena Petrov",
			Title:       "Streaming Giant Beats Earnings on Ad-Tier Growth",
			Description: "Ad-supported subscriptions grew 34% and now account for $1.2 billion in quarterly revenue.",
			URL:         "https://demo.newsdesk.local/business/streaming-ad-tier-earnings",
			URLToImage:  "https://demo.newsdesk.local/img/streaming.jpg",
			PublishedAt: "2025-08-27T21:00:00Z",
			Content:     "The streaming company beat earnings estimates as its advertising tier became the default choice for new subscribers. Management raised full-year guidance and announced a $5 billion buyback program.",
		},
		{
			Source:      types.NewsSource{ID: "worldbrief", Name: "WorldBrief"},
			Author:      "Raj Mehta",
			Title:       "Airlines Lock In Sustainable Fuel Contracts Despite Cost Premium",
			Description: "Carriers signed long-term offtake agreements covering 9% of projected 2030 fuel demand.",
			URL:         "https://demo.newsdesk.local/business/airlines-saf-contracts",
			URLToImage:  "https://demo.newsdesk.local/img/airlines.jpg",
			PublishedAt: "2025-08-24T10:35:00Z",
			Content:     "Major airlines announced a round of sustainable aviation fuel contracts despite prices running at roughly triple conventional jet fuel. Executives cited looming EU blending mandates and corporate customer demand for lower-emission travel.",
		},
	},
	SourceTrending: {
		{
			Source:      types.NewsSource{ID: "bytebeat", Name: "ByteBeat"},
			Author:      "Chloe Nakamura",
			Title:       "Viral Budgeting App Tops Charts After Creator's Breakdown Video",
			Description: "Downloads surged 400% in 48 hours after the solo developer's candid video about building the app.",
			URL:         "https://demo.newsdesk.local/trending/budgeting-app-viral",
			URLToImage:  "https://demo.newsdesk.local/img/budgeting-app.jpg",
			PublishedAt: "2025-08-28T02:45:00Z",
			Content:     "A budgeting app built by a single developer shot to the top of the app store charts after a video about its three-year development went viral. The developer says the sudden $40,000 in weekly revenue is paying off the credit card debt that inspired the app.",
		},
		{
			Source:      types.NewsSource{ID: "worldbrief", Name: "WorldBrief"},
			Author:      "Oliver Grant",
			Title:       "City's Four-Day Week Pilot Reports Productivity Gains",
			Description: "The year-long municipal pilot found output up 8% with sick days down by a quarter.",
			URL:         "https://demo.newsdesk.local/trending/four-day-week-pilot",
			URLToImage:  "https://demo.newsdesk.local/img/four-day-week.jpg",
			PublishedAt: "2025-08-25T07:30:00Z",
			Content:     "A large municipal employer concluded its four-day week pilot and reported an 8% productivity gain alongside a 25% drop in sick leave. The council voted to make the schedule permanent for office staff.",
		},
	},
}

// demoArticles returns a slice of the demo dataset for one source category.
// Unknown categories fall back to the general fixtures.
func demoArticles(category string, offset, limit int) []types.NewsArticle {
	list, ok := demoFixtures[category]
	if !ok {
		list = demoFixtures[SourceGeneral]
	}
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(list) {
		end = len(list)
	}
	out := make([]types.NewsArticle, end-offset)
	copy(out, list[offset:end])
	return out
}

// allDemoArticles returns every fixture across all source categories.
func allDemoArticles() []types.NewsArticle {
	var out []types.NewsArticle
	for _, cat := range []string{SourceTechnology, SourceFinance, SourceGeneral, SourceBusiness, SourceTrending} {
		out = append(out, demoFixtures[cat]...)
	}
	return out
}
