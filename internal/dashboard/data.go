package dashboard

import (
	"github.com/finboard/finboard/internal/models"
)

// viewDataset groups every panel's dataset for one market view.
type viewDataset struct {
	indicators    []Indicator
	trackedMovers []Indicator
	chart         map[string][]ChartPoint
	news          []NewsItem
	sentiment     []SentimentScore
	earnings      []EarningsEntry
	insiders      []InsiderTransaction
	signals       []Signal
}

var viewData = map[MarketView]viewDataset{
	ViewStocksETF: {
		indicators: []Indicator{
			{Name: "S&P 500", Value: "4,567.89", Change: "+0.8%", Trend: "up"},
			{Name: "NASDAQ", Value: "14,234.56", Change: "-0.3%", Trend: "down"},
			{Name: "DOW", Value: "34,567.12", Change: "+0.5%", Trend: "up"},
			{Name: "VIX", Value: "18.4", Change: "-2.1%", Trend: "down"},
		},
		trackedMovers: []Indicator{
			{Name: "AAPL", Value: "192.42", Change: "+1.2%", Trend: "up"},
			{Name: "MSFT", Value: "411.05", Change: "+0.6%", Trend: "up"},
			{Name: "NVDA", Value: "875.30", Change: "-1.4%", Trend: "down"},
			{Name: "SPY", Value: "456.78", Change: "+0.7%", Trend: "up"},
		},
		chart: map[string][]ChartPoint{
			"1h": {
				{Time: "9:30", Values: map[string]float64{"sp500": 4520, "nasdaq": 14100, "dow": 34400}},
				{Time: "9:45", Values: map[string]float64{"sp500": 4525, "nasdaq": 14120, "dow": 34420}},
				{Time: "10:00", Values: map[string]float64{"sp500": 4535, "nasdaq": 14150, "dow": 34450}},
				{Time: "10:15", Values: map[string]float64{"sp500": 4540, "nasdaq": 14170, "dow": 34470}},
				{Time: "10:30", Values: map[string]float64{"sp500": 4568, "nasdaq": 14235, "dow": 34567}},
			},
			"1d": {
				{Time: "9:30", Values: map[string]float64{"sp500": 4520, "nasdaq": 14100, "dow": 34400}},
				{Time: "11:00", Values: map[string]float64{"sp500": 4545, "nasdaq": 14180, "dow": 34480}},
				{Time: "1:00", Values: map[string]float64{"sp500": 4560, "nasdaq": 14200, "dow": 34520}},
				{Time: "3:00", Values: map[string]float64{"sp500": 4568, "nasdaq": 14235, "dow": 34567}},
			},
			"1w": {
				{Time: "Mon", Values: map[string]float64{"sp500": 4450, "nasdaq": 13900, "dow": 34200}},
				{Time: "Tue", Values: map[string]float64{"sp500": 4480, "nasdaq": 14000, "dow": 34300}},
				{Time: "Wed", Values: map[string]float64{"sp500": 4520, "nasdaq": 14100, "dow": 34400}},
				{Time: "Thu", Values: map[string]float64{"sp500": 4550, "nasdaq": 14180, "dow": 34500}},
				{Time: "Fri", Values: map[string]float64{"sp500": 4568, "nasdaq": 14235, "dow": 34567}},
			},
			"1m": {
				{Time: "Week 1", Values: map[string]float64{"sp500": 4200, "nasdaq": 13500, "dow": 33800}},
				{Time: "Week 2", Values: map[string]float64{"sp500": 4350, "nasdaq": 13800, "dow": 34100}},
				{Time: "Week 3", Values: map[string]float64{"sp500": 4450, "nasdaq": 14000, "dow": 34300}},
				{Time: "Week 4", Values: map[string]float64{"sp500": 4568, "nasdaq": 14235, "dow": 34567}},
			},
		},
		news: []NewsItem{
			{Title: "Fed signals rates on hold through next quarter", Source: "Reuters", Sentiment: "neutral", Age: "12m"},
			{Title: "Chipmakers rally on data-center demand", Source: "Bloomberg", Sentiment: "positive", Age: "38m"},
			{Title: "Retail earnings miss across big-box chains", Source: "WSJ", Sentiment: "negative", Age: "1h"},
			{Title: "Energy sector leads S&P gains for third session", Source: "CNBC", Sentiment: "positive", Age: "2h"},
		},
		sentiment: []SentimentScore{
			{Platform: "twitter", Score: 0.62, Mentions: 18420, Trend: "up"},
			{Platform: "reddit", Score: 0.48, Mentions: 9210, Trend: "down"},
			{Platform: "stocktwits", Score: 0.71, Mentions: 5630, Trend: "up"},
		},
		earnings: []EarningsEntry{
			{Symbol: "AAPL", Company: "Apple Inc.", Date: "2024-02-01", EstimateEPS: "2.10", Session: "after-close"},
			{Symbol: "MSFT", Company: "Microsoft Corp.", Date: "2024-01-30", EstimateEPS: "2.78", Session: "after-close"},
			{Symbol: "XOM", Company: "Exxon Mobil", Date: "2024-02-02", EstimateEPS: "2.21", Session: "pre-open"},
		},
		insiders: []InsiderTransaction{
			{Symbol: "NVDA", Name: "J. Huang", Role: "CEO", Type: "sell", Shares: 120000, Value: "$105.0M", Date: "2024-01-18"},
			{Symbol: "AAPL", Name: "L. Maestri", Role: "CFO", Type: "sell", Shares: 20000, Value: "$3.8M", Date: "2024-01-12"},
			{Symbol: "JPM", Name: "J. Dimon", Role: "CEO", Type: "buy", Shares: 5000, Value: "$0.8M", Date: "2024-01-09"},
		},
		signals: []Signal{
			{Symbol: "SPY", Model: "momentum-v2", Direction: "long", Confidence: 0.74, Horizon: "5d"},
			{Symbol: "NVDA", Model: "mean-reversion", Direction: "short", Confidence: 0.58, Horizon: "1d"},
			{Symbol: "AAPL", Model: "earnings-drift", Direction: "long", Confidence: 0.66, Horizon: "1m"},
		},
	},
	ViewCrypto: {
		indicators: []Indicator{
			{Name: "Bitcoin", Value: "$43,567", Change: "+2.4%", Trend: "up"},
			{Name: "Ethereum", Value: "$2,678", Change: "+1.8%", Trend: "up"},
			{Name: "BNB", Value: "$312.45", Change: "-0.5%", Trend: "down"},
			{Name: "Crypto Fear & Greed", Value: "67", Change: "+5", Trend: "up"},
		},
		trackedMovers: []Indicator{
			{Name: "BTC", Value: "43,567", Change: "+2.4%", Trend: "up"},
			{Name: "ETH", Value: "2,678", Change: "+1.8%", Trend: "up"},
			{Name: "SOL", Value: "98.12", Change: "+4.1%", Trend: "up"},
			{Name: "BNB", Value: "312.45", Change: "-0.5%", Trend: "down"},
		},
		chart: map[string][]ChartPoint{
			"1h": {
				{Time: "00:00", Values: map[string]float64{"bitcoin": 42800, "ethereum": 2620, "bnb": 315}},
				{Time: "00:15", Values: map[string]float64{"bitcoin": 43000, "ethereum": 2635, "bnb": 314}},
				{Time: "00:30", Values: map[string]float64{"bitcoin": 43200, "ethereum": 2650, "bnb": 313}},
				{Time: "00:45", Values: map[string]float64{"bitcoin": 43400, "ethereum": 2665, "bnb": 312}},
				{Time: "01:00", Values: map[string]float64{"bitcoin": 43567, "ethereum": 2678, "bnb": 312}},
			},
			"1d": {
				{Time: "00:00", Values: map[string]float64{"bitcoin": 42800, "ethereum": 2620, "bnb": 315}},
				{Time: "06:00", Values: map[string]float64{"bitcoin": 43200, "ethereum": 2650, "bnb": 314}},
				{Time: "12:00", Values: map[string]float64{"bitcoin": 43400, "ethereum": 2665, "bnb": 313}},
				{Time: "18:00", Values: map[string]float64{"bitcoin": 43567, "ethereum": 2678, "bnb": 312}},
			},
			"1w": {
				{Time: "Mon", Values: map[string]float64{"bitcoin": 41000, "ethereum": 2500, "bnb": 320}},
				{Time: "Wed", Values: map[string]float64{"bitcoin": 42500, "ethereum": 2600, "bnb": 315}},
				{Time: "Fri", Values: map[string]float64{"bitcoin": 43567, "ethereum": 2678, "bnb": 312}},
			},
			"1m": {
				{Time: "Week 1", Values: map[string]float64{"bitcoin": 38000, "ethereum": 2300, "bnb": 340}},
				{Time: "Week 2", Values: map[string]float64{"bitcoin": 40500, "ethereum": 2450, "bnb": 330}},
				{Time: "Week 3", Values: map[string]float64{"bitcoin": 42000, "ethereum": 2550, "bnb": 320}},
				{Time: "Week 4", Values: map[string]float64{"bitcoin": 43567, "ethereum": 2678, "bnb": 312}},
			},
		},
		news: []NewsItem{
			{Title: "Spot ETF inflows hit weekly record", Source: "CoinDesk", Sentiment: "positive", Age: "20m"},
			{Title: "Exchange outage halts altcoin trading", Source: "The Block", Sentiment: "negative", Age: "55m"},
			{Title: "Layer-2 fees fall to six-month low", Source: "Decrypt", Sentiment: "positive", Age: "3h"},
		},
		sentiment: []SentimentScore{
			{Platform: "twitter", Score: 0.77, Mentions: 31200, Trend: "up"},
			{Platform: "reddit", Score: 0.69, Mentions: 14800, Trend: "up"},
			{Platform: "telegram", Score: 0.54, Mentions: 7400, Trend: "down"},
		},
		earnings: []EarningsEntry{
			{Symbol: "COIN", Company: "Coinbase Global", Date: "2024-02-15", EstimateEPS: "0.02", Session: "after-close"},
			{Symbol: "MSTR", Company: "MicroStrategy", Date: "2024-02-06", EstimateEPS: "0.45", Session: "after-close"},
		},
		insiders: []InsiderTransaction{
			{Symbol: "COIN", Name: "B. Armstrong", Role: "CEO", Type: "sell", Shares: 30000, Value: "$4.2M", Date: "2024-01-16"},
			{Symbol: "MSTR", Name: "M. Saylor", Role: "Chairman", Type: "sell", Shares: 5000, Value: "$2.6M", Date: "2024-01-11"},
		},
		signals: []Signal{
			{Symbol: "BTC", Model: "momentum-v2", Direction: "long", Confidence: 0.81, Horizon: "7d"},
			{Symbol: "ETH", Model: "funding-skew", Direction: "long", Confidence: 0.63, Horizon: "3d"},
			{Symbol: "SOL", Model: "mean-reversion", Direction: "short", Confidence: 0.52, Horizon: "1d"},
		},
	},
}

// seedPrices is the baseline used by the quote tick task.
var seedPrices = []struct {
	symbol    string
	assetType models.AssetType
	price     float64
}{
	{"AAPL", models.AssetTypeStock, 192.42},
	{"MSFT", models.AssetTypeStock, 411.05},
	{"NVDA", models.AssetTypeStock, 875.30},
	{"SPY", models.AssetTypeStock, 456.78},
	{"JPM", models.AssetTypeStock, 171.20},
	{"BTC", models.AssetTypeCrypto, 43567},
	{"ETH", models.AssetTypeCrypto, 2678},
	{"BNB", models.AssetTypeCrypto, 312.45},
	{"SOL", models.AssetTypeCrypto, 98.12},
}
