package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// QueryRate returns a timeseries panel showing listing queries per second by
// listing kind.
func QueryRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listing Queries").
		Description("Listing queries per second by listing (category, owner, liked, details)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(market_listing_queries_total{`+Job+`}[5m])) by (listing)`,
			"{{listing}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QueryLatency returns a timeseries panel showing the p95 duration of each
// listing kind.
func QueryLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Query Duration (p95)").
		Description("95th percentile listing query duration, page and count queries included").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.95, "market_listing_query_duration_seconds", "listing"), "{{listing}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QueryErrors returns a timeseries panel showing failed listing queries per
// minute.
func QueryErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Query Errors / min").
		Description("Failed listing queries per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`market:listing_query_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SortKeyUsage returns a bar gauge showing how often each sort key was
// requested in the last 24 hours.
func SortKeyUsage() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Sort Keys (24h)").
		Description("Listing queries by requested sort key").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(market_listing_queries_total{`+Job+`}[24h])) by (sort)`,
			"{{sort}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
