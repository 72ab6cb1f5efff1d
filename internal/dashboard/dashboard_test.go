package dashboard

import (
	"testing"
)

func TestParseKind(t *testing.T) {
	for _, kind := range []string{
		"market-indicators", "asset-tracking", "news-feed",
		"social-sentiment", "earnings-analysis", "insider-tracking",
		"ml-indicators",
	} {
		if _, ok := ParseKind(kind); !ok {
			t.Errorf("Expected %q to parse", kind)
		}
	}
	if _, ok := ParseKind("options-flow"); ok {
		t.Error("Expected unknown kind to be rejected")
	}
}

func TestTimescaleGranularity(t *testing.T) {
	cases := map[string]string{
		"1h":  "1h",
		"12h": "1h",
		"1d":  "1d",
		"14d": "1d",
		"3m":  "1w",
		"max": "1m",
	}
	for value, want := range cases {
		ts, ok := ParseTimescale(value)
		if !ok {
			t.Fatalf("Expected %q to parse", value)
		}
		if got := ts.Granularity(); got != want {
			t.Errorf("Granularity(%q) = %q, want %q", value, got, want)
		}
	}
	if _, ok := ParseTimescale("2h"); ok {
		t.Error("Expected unknown timescale to be rejected")
	}
}

func TestLookupPopulatesMatchingFields(t *testing.T) {
	ts, _ := ParseTimescale("1d")

	for _, view := range []MarketView{ViewStocksETF, ViewCrypto} {
		snap, ok := Lookup(KindMarketIndicators, view, ts)
		if !ok {
			t.Fatalf("Lookup failed for %s", view)
		}
		if len(snap.Indicators) == 0 || len(snap.Chart) == 0 {
			t.Errorf("Expected indicators and chart for %s", view)
		}
		if len(snap.News) != 0 || len(snap.Signals) != 0 {
			t.Errorf("Expected only the matching fields populated for %s", view)
		}

		snap, _ = Lookup(KindNewsFeed, view, ts)
		if len(snap.News) == 0 {
			t.Errorf("Expected news for %s", view)
		}
		snap, _ = Lookup(KindMLIndicators, view, ts)
		if len(snap.Signals) == 0 {
			t.Errorf("Expected signals for %s", view)
		}
	}
}

func TestLookupChartFollowsGranularity(t *testing.T) {
	long, _ := ParseTimescale("5y")
	snap, _ := Lookup(KindMarketIndicators, ViewStocksETF, long)
	if len(snap.Chart) == 0 {
		t.Fatal("Expected chart data at the long granularity")
	}
	if snap.Chart[0].Time != "Week 1" {
		t.Errorf("Expected monthly-granularity samples, got first label %q", snap.Chart[0].Time)
	}
}

func TestSeedQuotes(t *testing.T) {
	quotes := SeedQuotes()
	if len(quotes) == 0 {
		t.Fatal("Expected seed quotes")
	}
	seen := make(map[string]bool)
	for _, q := range quotes {
		if q.Price <= 0 {
			t.Errorf("Expected positive seed price for %s", q.Symbol)
		}
		if !q.AssetType.Valid() {
			t.Errorf("Invalid asset type for %s", q.Symbol)
		}
		if seen[q.Symbol] {
			t.Errorf("Duplicate seed symbol %s", q.Symbol)
		}
		seen[q.Symbol] = true
	}
}
