package cli

import (
	"fmt"
	"io"

	"myRecoMarket/business/basket"
	"myRecoMarket/domain"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func rightAligned(numbers ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(numbers))
	for _, n := range numbers {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	return configs
}

func renderRecommendations(w io.Writer, userID string, recs []domain.Recommendation) {
	if len(recs) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := newTable(w, "Recommendations for "+userID)
	t.AppendHeader(table.Row{"#", "Product", "Category", "Score"})
	for i, r := range recs {
		t.AppendRow(table.Row{i + 1, r.ProductID, r.Category, fmt.Sprintf("%.4f", r.Score)})
	}
	t.SetColumnConfigs(rightAligned(1, 4))
	t.Render()
}

func renderRFM(w io.Writer, records []domain.RFMRecord) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := newTable(w, "RFM segmentation")
	t.AppendHeader(table.Row{"Customer", "Recency", "Frequency", "Monetary", "R", "F", "M", "RFM", "Segment"})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.CustomerID, r.RecencyDays, r.Frequency, fmt.Sprintf("%.2f", r.Monetary),
			r.RScore, r.FScore, r.MScore, r.RFMCode, r.Segment,
		})
	}
	t.SetColumnConfigs(rightAligned(2, 3, 4))
	t.Render()
}

func renderSegmentSummary(w io.Writer, summary []domain.SegmentSummary) {
	if len(summary) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := newTable(w, "Customer segments")
	t.AppendHeader(table.Row{"Segment", "Customers", "Share %", "Avg recency", "Avg frequency", "Avg monetary"})
	for _, s := range summary {
		t.AppendRow(table.Row{
			s.Segment, s.Customers, fmt.Sprintf("%.1f", s.SharePct),
			fmt.Sprintf("%.1f", s.AvgRecencyDays), fmt.Sprintf("%.2f", s.AvgFrequency), fmt.Sprintf("%.2f", s.AvgMonetary),
		})
	}
	t.SetColumnConfigs(rightAligned(2, 3, 4, 5, 6))
	t.Render()
}

func renderRules(w io.Writer, rules []domain.AssociationRule) {
	if len(rules) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := newTable(w, "Association rules")
	t.AppendHeader(table.Row{"Antecedent", "Consequent", "Support", "Confidence", "Lift"})
	for _, r := range rules {
		t.AppendRow(table.Row{
			basket.JoinItemSet(r.Antecedent), basket.JoinItemSet(r.Consequent),
			fmt.Sprintf("%.4f", r.Support), fmt.Sprintf("%.4f", r.Confidence), fmt.Sprintf("%.3f", r.Lift),
		})
	}
	t.SetColumnConfigs(rightAligned(3, 4, 5))
	t.Render()
}

func renderEDA(w io.Writer, overview domain.EDAOverview) {
	renderCategoryStats(w, "Transactions per category", "Transactions", overview.TopCategoriesByCount, "%.0f")
	renderCategoryStats(w, "Units per category", "Units", overview.TopCategoriesByUnits, "%.0f")
	renderCategoryStats(w, "Average sale per category", "Avg sale", overview.TopCategoriesByAvgSale, "%.2f")
	renderCategoryStats(w, "Transactions per city", "Transactions", overview.TopCitiesByCount, "%.0f")

	if len(overview.MonthlySales) == 0 {
		return
	}
	t := newTable(w, "Monthly sales")
	t.AppendHeader(table.Row{"Month", "Total"})
	for _, m := range overview.MonthlySales {
		t.AppendRow(table.Row{m.Month, fmt.Sprintf("%.2f", m.Total)})
	}
	t.SetColumnConfigs(rightAligned(2))
	t.Render()
}

func renderCategoryStats(w io.Writer, title, valueHeader string, stats []domain.CategoryStat, format string) {
	if len(stats) == 0 {
		return
	}

	t := newTable(w, title)
	t.AppendHeader(table.Row{"Category", valueHeader})
	for _, s := range stats {
		t.AppendRow(table.Row{s.Category, fmt.Sprintf(format, s.Value)})
	}
	t.SetColumnConfigs(rightAligned(2))
	t.Render()
}
