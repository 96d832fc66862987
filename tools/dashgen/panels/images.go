package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a gauge showing the share of image path lookups
// answered from the cache.
func CacheHitRatio() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Image Cache Hit %").
		Description("Image path lookups served from Redis over the last 5 minutes").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(`market:image_cache_hit_ratio:rate5m * 100`, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsRedGreen(80)).
		ColorScheme(ColorSchemeThresholds())
}

// UploadResults returns a timeseries panel showing image uploads per minute
// by result.
func UploadResults() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Uploads / min").
		Description("Product image uploads per minute by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(
			`sum(rate(market_image_uploads_total{`+Job+`}[5m])) by (result) * 60`,
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DeletionResults returns a timeseries panel showing swept image deletions
// per minute by result.
func DeletionResults() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Deletions / min").
		Description("Queued image deletions processed per minute by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(
			`sum(rate(market_image_deletions_total{`+Job+`}[5m])) by (result) * 60`,
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SweepDuration returns a timeseries panel showing the p95 image sweep
// duration.
func SweepDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sweep Duration (p95)").
		Description("95th percentile image deletion sweep duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(Quantile(0.95, "market_image_sweep_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
