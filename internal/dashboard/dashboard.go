// Package dashboard holds the fixed catalog of dashboard panels the UI
// renders: every panel kind, market view, and timescale is a closed
// enumeration, and panel payloads are looked up rather than computed.
package dashboard

import (
	"github.com/finboard/finboard/internal/models"
)

// Kind identifies one dashboard panel.
type Kind string

const (
	KindMarketIndicators Kind = "market-indicators"
	KindAssetTracking    Kind = "asset-tracking"
	KindNewsFeed         Kind = "news-feed"
	KindSocialSentiment  Kind = "social-sentiment"
	KindEarningsAnalysis Kind = "earnings-analysis"
	KindInsiderTracking  Kind = "insider-tracking"
	KindMLIndicators     Kind = "ml-indicators"
)

// ParseKind returns the Kind for a path segment, if it names one.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindMarketIndicators, KindAssetTracking, KindNewsFeed,
		KindSocialSentiment, KindEarningsAnalysis, KindInsiderTracking,
		KindMLIndicators:
		return Kind(s), true
	}
	return "", false
}

// MarketView selects which market's dataset a panel shows.
type MarketView string

const (
	ViewStocksETF MarketView = "stocks-etf"
	ViewCrypto    MarketView = "crypto"
)

func ParseMarketView(s string) (MarketView, bool) {
	switch MarketView(s) {
	case ViewStocksETF, ViewCrypto:
		return MarketView(s), true
	}
	return "", false
}

// Indicator is one headline market figure.
type Indicator struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// ChartPoint is one sample of a panel's time series. Values is keyed by
// series name.
type ChartPoint struct {
	Time   string             `json:"time"`
	Values map[string]float64 `json:"values"`
}

// NewsItem is one entry of the news/sentiment feed.
type NewsItem struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	Sentiment string `json:"sentiment"`
	Age       string `json:"age"`
}

// SentimentScore aggregates social chatter for one platform.
type SentimentScore struct {
	Platform string  `json:"platform"`
	Score    float64 `json:"score"`
	Mentions int     `json:"mentions"`
	Trend    string  `json:"trend"`
}

// EarningsEntry is one row of the earnings calendar.
type EarningsEntry struct {
	Symbol      string `json:"symbol"`
	Company     string `json:"company"`
	Date        string `json:"date"`
	EstimateEPS string `json:"estimate_eps"`
	Session     string `json:"session"`
}

// InsiderTransaction is one reported insider trade.
type InsiderTransaction struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	Shares int    `json:"shares"`
	Value  string `json:"value"`
	Date   string `json:"date"`
}

// Signal is one model-generated trading signal.
type Signal struct {
	Symbol     string  `json:"symbol"`
	Model      string  `json:"model"`
	Direction  string  `json:"direction"`
	Confidence float64 `json:"confidence"`
	Horizon    string  `json:"horizon"`
}

// Snapshot is the payload for one (kind, view, timescale) selection.
// Exactly the fields matching Kind are populated.
type Snapshot struct {
	Kind       Kind                 `json:"kind"`
	MarketView MarketView           `json:"market_view"`
	Timescale  string               `json:"timescale"`
	Indicators []Indicator          `json:"indicators,omitempty"`
	Chart      []ChartPoint         `json:"chart,omitempty"`
	News       []NewsItem           `json:"news,omitempty"`
	Sentiment  []SentimentScore     `json:"sentiment,omitempty"`
	Earnings   []EarningsEntry      `json:"earnings,omitempty"`
	Insiders   []InsiderTransaction `json:"insiders,omitempty"`
	Signals    []Signal             `json:"signals,omitempty"`
}

// Lookup assembles the snapshot for a panel selection. It returns false
// only for a Kind outside the enumeration; views and timescales are
// validated by their parsers before this point.
func Lookup(kind Kind, view MarketView, ts Timescale) (Snapshot, bool) {
	snap := Snapshot{Kind: kind, MarketView: view, Timescale: ts.Value}
	data := viewData[view]

	switch kind {
	case KindMarketIndicators:
		snap.Indicators = data.indicators
		snap.Chart = data.chart[ts.Granularity()]
	case KindAssetTracking:
		snap.Indicators = data.trackedMovers
		snap.Chart = data.chart[ts.Granularity()]
	case KindNewsFeed:
		snap.News = data.news
	case KindSocialSentiment:
		snap.Sentiment = data.sentiment
	case KindEarningsAnalysis:
		snap.Earnings = data.earnings
	case KindInsiderTracking:
		snap.Insiders = data.insiders
	case KindMLIndicators:
		snap.Signals = data.signals
	default:
		return Snapshot{}, false
	}
	return snap, true
}

// SeedQuotes returns the baseline quote snapshot for every symbol the
// dashboards reference, across both market views. The quote tick task
// random-walks these.
func SeedQuotes() []models.Quote {
	quotes := make([]models.Quote, 0, len(seedPrices))
	for _, seed := range seedPrices {
		quotes = append(quotes, models.Quote{
			Symbol:    seed.symbol,
			AssetType: seed.assetType,
			Price:     seed.price,
		})
	}
	return quotes
}
