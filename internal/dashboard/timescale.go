package dashboard

// Timescale is one stop of the UI's timescale slider.
type Timescale struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Timescales lists every slider stop, in display order.
var Timescales = []Timescale{
	{Value: "1h", Label: "1 Hour", Category: "intraday"},
	{Value: "6h", Label: "6 Hours", Category: "intraday"},
	{Value: "12h", Label: "12 Hours", Category: "intraday"},
	{Value: "1d", Label: "1 Day", Category: "short"},
	{Value: "3d", Label: "3 Days", Category: "short"},
	{Value: "5d", Label: "5 Days", Category: "short"},
	{Value: "7d", Label: "1 Week", Category: "short"},
	{Value: "14d", Label: "2 Weeks", Category: "short"},
	{Value: "1m", Label: "1 Month", Category: "medium"},
	{Value: "3m", Label: "3 Months", Category: "medium"},
	{Value: "6m", Label: "6 Months", Category: "medium"},
	{Value: "1y", Label: "1 Year", Category: "long"},
	{Value: "2y", Label: "2 Years", Category: "long"},
	{Value: "3y", Label: "3 Years", Category: "long"},
	{Value: "4y", Label: "4 Years", Category: "long"},
	{Value: "5y", Label: "5 Years", Category: "long"},
	{Value: "7y", Label: "7 Years", Category: "long"},
	{Value: "10y", Label: "10 Years", Category: "long"},
	{Value: "max", Label: "Max", Category: "long"},
}

// DefaultTimescale is what the UI starts on.
const DefaultTimescale = "1d"

// ParseTimescale returns the slider stop for a value, if it is one.
func ParseTimescale(value string) (Timescale, bool) {
	for _, ts := range Timescales {
		if ts.Value == value {
			return ts, true
		}
	}
	return Timescale{}, false
}

// Granularity maps a timescale onto the chart granularity its category
// has data for. Chart series exist at four granularities only.
func (t Timescale) Granularity() string {
	switch t.Category {
	case "intraday":
		return "1h"
	case "short":
		return "1d"
	case "medium":
		return "1w"
	case "long":
		return "1m"
	default:
		return "1d"
	}
}
