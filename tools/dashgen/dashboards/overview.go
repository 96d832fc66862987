// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/chzzmarket/market-api/tools/dashgen/panels"
)

// BuildOverview constructs the marketplace overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Market Overview").
		Uid("market-overview").
		Tags([]string{"market", "market-api"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.DeletionQueueStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.RequestsByRoute()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Listings").
		WithPanel(panels.QueryRate()).
		WithPanel(panels.QueryLatency()).
		WithPanel(panels.QueryErrors()).
		WithPanel(panels.SortKeyUsage()))

	b.WithRow(dashboard.NewRowBuilder("Images").
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.UploadResults()).
		WithPanel(panels.DeletionResults()).
		WithPanel(panels.SweepDuration()))

	b.WithRow(dashboard.NewRowBuilder("Commands").
		WithPanel(panels.CommandRate()).
		WithPanel(panels.CommandFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
