package domain

// TrendDirection indicates whether a metric moved in a favorable or
// unfavorable direction relative to its previous period.
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// ComparisonPeriod identifies the period a Comparison spans.
type ComparisonPeriod string

const (
	PeriodMonth ComparisonPeriod = "month"
	PeriodYear  ComparisonPeriod = "year"
)

// Comparison is a structured delta between a current and prior period's
// aggregate. Value and Percentage are pre-formatted for display.
type Comparison struct {
	Value         string           `json:"value"`
	Percentage    string           `json:"percentage"`
	Period        ComparisonPeriod `json:"period"`
	PreviousValue string           `json:"previousValue,omitempty"`
}

// Kpi is a named scalar metric ready for presentation.
type Kpi struct {
	Title            string         `json:"title"`
	Value            string         `json:"value"`
	SubValue         string         `json:"subValue,omitempty"`
	SubValuePosition string         `json:"subValuePosition,omitempty"`
	Trend            string         `json:"trend,omitempty"`
	TrendDirection   TrendDirection `json:"trendDirection,omitempty"`
	Icon             string         `json:"icon"`
	Color            string         `json:"color"`
	Comparison       *Comparison    `json:"comparison,omitempty"`
}

// ChartPoint is one entry on a chart axis: a category label plus either a
// single value or a set of named series values (stacked/grouped charts).
type ChartPoint struct {
	Name   string             `json:"name"`
	Value  float64            `json:"value"`
	Series map[string]float64 `json:"series,omitempty"`
}

// CategoryTotal is a label with a summed metric, used by rankings and
// category breakdowns.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
