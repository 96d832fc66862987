// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be one the server
// exports or a recording rule produces.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/chzzmarket/market-api/tools/dashgen/rules"
)

// Result collects problems found in generated artifacts. Errors make the
// artifact unusable; warnings point at queries that reference metrics the
// generator does not know about.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// histogramSuffixes are the series a histogram exports besides its name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses a PromQL expression and checks the metric names it selects.
// Grafana template variables are substituted before parsing.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	expr = strings.NewReplacer("$__rate_interval", "5m", "$__interval", "1m").Replace(expr)

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: invalid PromQL %q: %v", where, expr, err))
		return res
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})
	return res
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every Prometheus target of every panel, rows included.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	if dash.Uid == nil || *dash.Uid == "" {
		res.Errors = append(res.Errors, "dashboard has no uid")
	}

	for _, p := range dash.Panels {
		if p.Panel != nil {
			res.merge(panel(*p.Panel, known))
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				res.merge(panel(inner, known))
			}
		}
	}
	return res
}

func panel(p dashboard.Panel, known map[string]bool) Result {
	var res Result

	title := "untitled panel"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("panel %q has no targets", title))
	}

	for i, target := range p.Targets {
		where := fmt.Sprintf("panel %q target %d", title, i)
		expr, err := targetExpr(target)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", where, err))
			continue
		}
		res.merge(Expr(where, expr, known))
	}
	return res
}

// targetExpr reads the expr field of a query target through its JSON form,
// which every datasource query variant supports.
func targetExpr(target any) (string, error) {
	data, err := json.Marshal(target)
	if err != nil {
		return "", fmt.Errorf("encoding target: %w", err)
	}
	var q struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(data, &q); err != nil {
		return "", fmt.Errorf("decoding target: %w", err)
	}
	if q.Expr == "" {
		return "", fmt.Errorf("target has no expr")
	}
	return q.Expr, nil
}

// Rules validates every rule expression. Recording rules must be named in
// known so dashboards and alerts can reference them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			where := fmt.Sprintf("rule %s/%s", g.Name, name)

			if r.Record != "" && !known[r.Record] {
				res.Errors = append(res.Errors, fmt.Sprintf("%s: recording rule is not in the known metric set", where))
			}
			res.merge(Expr(where, r.Expr, known))
		}
	}
	return res
}
