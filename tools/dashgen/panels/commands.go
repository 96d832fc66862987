package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CommandRate returns a timeseries panel showing owner commands per minute.
func CommandRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Commands / min").
		Description("Create, update, delete, like and auction commands per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(market_product_commands_total{`+Job+`}[5m])) by (command) * 60`,
			"{{command}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CommandFailures returns a timeseries panel showing rejected or failed
// commands per minute.
func CommandFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Command Failures / min").
		Description("Owner commands that did not succeed, by command").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(market_product_commands_total{`+Job+`,result!="ok"}[5m])) by (command) * 60`,
			"{{command}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.5, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
