package report

import (
	"fmt"
	"html/template"
)

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"pct": func(f float64) string {
		return fmt.Sprintf("%.2f%%", f)
	},
	"oeePct": func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f * 100
	},
}).Parse(dashboardTemplate))

// The layout mirrors the classic CONTROL dashboard: red-themed header, three
// KPI cards, a chart section and color-banded leaderboard tables. Tables are
// rendered server-side; charts come from the embedded script.
const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Scrap Rate Analytics Dashboard</title>
<script src="https://cdnjs.cloudflare.com/ajax/libs/Chart.js/3.9.1/chart.min.js"></script>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #f8f9fa; padding: 20px; color: #2c3e50; }
.container { max-width: 1600px; margin: 0 auto; background: #fff; border-radius: 12px; box-shadow: 0 4px 16px rgba(0,0,0,0.1); overflow: hidden; border: 1px solid #e9ecef; }
.header { background: linear-gradient(135deg, #dc2626 0%, #b91c1c 100%); color: white; padding: 30px 40px; border-bottom: 4px solid #ef4444; }
.header-content { display: flex; justify-content: space-between; align-items: center; flex-wrap: wrap; gap: 20px; }
.header-title { font-size: 2.2rem; font-weight: 600; }
.header-right { text-align: right; font-size: 0.95rem; opacity: 0.9; }
.kpi-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 25px; padding: 40px; background: #f8f9fa; }
.kpi-card { background: #fff; border-radius: 12px; padding: 30px; text-align: center; box-shadow: 0 2px 8px rgba(0,0,0,0.08); border-left: 4px solid #dc2626; }
.kpi-value { font-size: 2.8rem; font-weight: 700; margin-bottom: 8px; }
.kpi-label { color: #7f8c8d; font-size: 1rem; font-weight: 500; text-transform: uppercase; letter-spacing: 0.5px; }
.kpi-period { color: #95a5a6; font-size: 0.85rem; margin-top: 5px; font-style: italic; }
.section { padding: 40px; }
.section-title { font-size: 1.8rem; margin-bottom: 30px; padding-bottom: 10px; border-bottom: 2px solid #dc2626; font-weight: 600; }
.charts-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 30px; margin-bottom: 40px; }
.charts-full { display: grid; grid-template-columns: 1fr; gap: 30px; margin-bottom: 40px; }
.chart-container { background: #fff; border-radius: 12px; padding: 25px; box-shadow: 0 2px 8px rgba(0,0,0,0.08); border: 1px solid #e9ecef; }
.chart-title { font-size: 1.2rem; margin-bottom: 20px; text-align: center; font-weight: 600; }
.chart-wrapper { position: relative; height: 380px; }
.table-section { padding: 40px; background: #f8f9fa; border-top: 1px solid #e9ecef; }
.data-table-container { background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.08); border: 1px solid #e9ecef; margin-bottom: 30px; }
.data-table { width: 100%; border-collapse: collapse; }
.data-table th { background: linear-gradient(135deg, #dc2626 0%, #b91c1c 100%); color: white; padding: 15px 12px; text-align: left; font-weight: 600; font-size: 0.9rem; text-transform: uppercase; }
.data-table td { padding: 12px; border-bottom: 1px solid rgba(220,38,38,0.1); font-size: 0.9rem; }
.data-table tbody tr:nth-child(even) { background: #f8f9fa; }
.band { font-weight: 600; padding: 4px 8px; border-radius: 4px; }
.band-high { background: rgba(220,38,38,0.15); color: #dc2626; }
.band-medium { background: rgba(245,158,11,0.15); color: #f59e0b; }
.band-low { background: rgba(34,197,94,0.15); color: #22c55e; }
.band-none { background: rgba(149,165,166,0.15); color: #7f8c8d; }
.footer { background: #2c3e50; color: white; padding: 20px 40px; text-align: center; font-size: 0.9rem; }
.footer .diagnostics { opacity: 0.7; margin-top: 6px; font-size: 0.8rem; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <div class="header-content">
      <h1 class="header-title">Scrap Rate Analytics Dashboard</h1>
      <div class="header-right">
        <div>Last Updated: {{.GeneratedAt}}</div>
        <div>Data Period: {{.PeriodRange}}</div>
        <div>Total Records: {{.Model.Summary.Records}}</div>
      </div>
    </div>
  </div>

  <div class="kpi-grid">
    <div class="kpi-card">
      <div class="kpi-value">{{pct .Model.Summary.ScrapRate}}</div>
      <div class="kpi-label">Overall Scrap Rate</div>
      <div class="kpi-period">{{.Model.Summary.TotalSuspect}} / {{.Model.Summary.TotalChecked}} parts</div>
    </div>
    <div class="kpi-card">
      <div class="kpi-value">{{pct .Model.Summary.QualityRate}}</div>
      <div class="kpi-label">Quality Rate</div>
      <div class="kpi-period">{{.Model.Summary.TotalOK}} OK parts</div>
    </div>
    <div class="kpi-card">
      <div class="kpi-value">{{.Model.Summary.TotalChecked}}</div>
      <div class="kpi-label">Total Volume Checked</div>
      <div class="kpi-period">Across {{len .Model.Machines}} machines{{if .Model.Summary.OEE}} &middot; OEE {{pct (oeePct .Model.Summary.OEE)}}{{end}}</div>
    </div>
  </div>

  <div class="section">
    <h2 class="section-title">Scrap Rate Trends &amp; Analysis</h2>
    <div class="charts-full">
      <div class="chart-container">
        <h3 class="chart-title">Scrap Rate Over Time</h3>
        <div class="chart-wrapper"><canvas id="trendChart"></canvas></div>
      </div>
    </div>
    <div class="charts-grid">
      <div class="chart-container">
        <h3 class="chart-title">Scrap Rate by Machine</h3>
        <div class="chart-wrapper"><canvas id="machineChart"></canvas></div>
      </div>
      <div class="chart-container">
        <h3 class="chart-title">OK vs NOK Parts Distribution</h3>
        <div class="chart-wrapper"><canvas id="distributionChart"></canvas></div>
      </div>
    </div>
    <div class="charts-grid">
      <div class="chart-container">
        <h3 class="chart-title">Scrap by Category</h3>
        <div class="chart-wrapper"><canvas id="categoryChart"></canvas></div>
      </div>
      <div class="chart-container">
        <h3 class="chart-title">Scrap Rate by Inspector</h3>
        <div class="chart-wrapper"><canvas id="inspectorChart"></canvas></div>
      </div>
    </div>
  </div>

  <div class="table-section">
    <h2 class="section-title">Detailed Analysis</h2>
    <div class="data-table-container">
      <table class="data-table">
        <thead><tr><th>Machine</th><th>Total Checked</th><th>Suspects/NOK</th><th>Scrap Rate</th><th>Records</th></tr></thead>
        <tbody>
        {{range .Model.Machines}}<tr><td>{{.Key}}</td><td>{{.TotalChecked}}</td><td>{{.TotalSuspect}}</td><td><span class="band band-{{.Band}}">{{if eq .Band "none"}}no data{{else}}{{pct .ScrapRate}}{{end}}</span></td><td>{{.Records}}</td></tr>
        {{end}}
        </tbody>
      </table>
    </div>
    <div class="data-table-container">
      <table class="data-table">
        <thead><tr><th>Part Number</th><th>Total Checked</th><th>Suspects/NOK</th><th>Scrap Rate</th><th>Records</th></tr></thead>
        <tbody>
        {{range .Model.Parts}}<tr><td>{{.Key}}</td><td>{{.TotalChecked}}</td><td>{{.TotalSuspect}}</td><td><span class="band band-{{.Band}}">{{if eq .Band "none"}}no data{{else}}{{pct .ScrapRate}}{{end}}</span></td><td>{{.Records}}</td></tr>
        {{end}}
        </tbody>
      </table>
    </div>
  </div>

  <div class="footer">
    <p>Scrap Rate Analytics Dashboard | Generated from {{.SourceName}}</p>
    <p class="diagnostics">{{with .Model.Diagnostics}}rows in: {{.RowsIn}} &middot; dropped: {{.RowsDropped}} &middot; unparsed dates: {{.UnparsedDates}} &middot; clamped fields: {{.ClampedFields}}{{end}}</p>
  </div>
</div>
<script>{{.Script}}</script>
</body>
</html>`

// dashboardScript is the static half of the inline script; the marshalled
// model payload is prepended before minification.
const dashboardScript = `
const colors = { primary: '#dc2626', secondary: '#b91c1c', success: '#22c55e', danger: '#ef4444', warning: '#f59e0b', info: '#3b82f6' };
const pctTicks = { beginAtZero: true, ticks: { callback: (v) => v + '%' } };

document.addEventListener('DOMContentLoaded', () => {
  new Chart(document.getElementById('trendChart'), {
    type: 'line',
    data: {
      labels: model.trend.labels,
      datasets: [{
        label: 'Scrap Rate (%)',
        data: model.trend.scrapRates,
        borderColor: colors.danger,
        backgroundColor: 'rgba(220, 38, 38, 0.1)',
        borderWidth: 3,
        fill: true,
        tension: 0.4,
        pointRadius: 4,
      }]
    },
    options: {
      responsive: true,
      maintainAspectRatio: false,
      scales: { y: pctTicks },
      plugins: {
        tooltip: {
          callbacks: {
            label: (ctx) => 'Scrap Rate: ' + ctx.parsed.y.toFixed(2) + '% (volume ' + model.trend.volumes[ctx.dataIndex] + ')'
          }
        }
      }
    }
  });

  new Chart(document.getElementById('machineChart'), {
    type: 'bar',
    data: {
      labels: model.machines.labels,
      datasets: [{ label: 'Scrap Rate (%)', data: model.machines.values, backgroundColor: colors.danger, borderColor: colors.secondary, borderWidth: 2, borderRadius: 6 }]
    },
    options: { responsive: true, maintainAspectRatio: false, plugins: { legend: { display: false } }, scales: { y: pctTicks } }
  });

  new Chart(document.getElementById('distributionChart'), {
    type: 'doughnut',
    data: {
      labels: ['OK Parts', 'NOK/Suspect Parts'],
      datasets: [{ data: [model.okParts, model.nokParts], backgroundColor: [colors.success, colors.danger], borderWidth: 3, hoverOffset: 8 }]
    },
    options: { responsive: true, maintainAspectRatio: false, plugins: { legend: { position: 'bottom' } } }
  });

  new Chart(document.getElementById('categoryChart'), {
    type: 'pie',
    data: {
      labels: model.categories.labels,
      datasets: [{ data: model.categories.values, backgroundColor: [colors.danger, colors.warning, colors.info, colors.success, '#8b5cf6'], borderWidth: 2, borderColor: '#fff' }]
    },
    options: { responsive: true, maintainAspectRatio: false, plugins: { legend: { position: 'bottom' } } }
  });

  new Chart(document.getElementById('inspectorChart'), {
    type: 'bar',
    data: {
      labels: model.inspectors.labels,
      datasets: [{ label: 'Scrap Rate (%)', data: model.inspectors.values, backgroundColor: colors.warning, borderColor: '#d97706', borderWidth: 2, borderRadius: 6 }]
    },
    options: { indexAxis: 'y', responsive: true, maintainAspectRatio: false, plugins: { legend: { display: false } }, scales: { x: pctTicks } }
  });
});
`
