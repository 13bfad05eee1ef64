package reporting

import (
	"fmt"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	servicesSheet  = "Services"
	customersSheet = "Customers"
)

// ExcelRenderer writes a workbook with a Summary sheet plus Services and
// Customers sheets when those groups are not empty.
type ExcelRenderer struct{}

var _ interfaces.IReportRenderer = (*ExcelRenderer)(nil)

func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

func (r *ExcelRenderer) Format() entities.ReportFormat { return entities.ReportFormatExcel }

func (r *ExcelRenderer) Render(s entities.AnalyticsSnapshot, generatedAt time.Time) (entities.RenderedReport, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return entities.RenderedReport{}, err
	}
	summary := [][]any{
		{"Metric", "Value"},
		{"Total Quotes", s.TotalQuotes},
		{"Approved Quotes", s.ApprovedQuotes},
		{"Rejected Quotes", s.RejectedQuotes},
		{"Pending Quotes", s.PendingQuotes},
		{"Conversion Rate", fmt.Sprintf("%.1f%%", s.ConversionRate)},
		{"Average Quote Value", fmt.Sprintf("$%.2f", s.AverageQuoteValue)},
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return entities.RenderedReport{}, err
	}

	if len(s.TopServices) > 0 {
		rows := [][]any{{"serviceName", "quoteCount", "approvalRate", "averageValue"}}
		for _, m := range s.TopServices {
			rows = append(rows, []any{m.ServiceName, m.QuoteCount, m.ApprovalRate, m.AverageValue})
		}
		if err := addSheet(f, servicesSheet, rows); err != nil {
			return entities.RenderedReport{}, err
		}
	}

	if len(s.CustomerMetrics) > 0 {
		rows := [][]any{{"customerId", "customerName", "totalQuotes", "approvedQuotes", "totalRevenue", "lastActivity"}}
		for _, c := range s.CustomerMetrics {
			rows = append(rows, []any{c.CustomerID, c.CustomerName, c.TotalQuotes, c.ApprovedQuotes, c.TotalRevenue, c.LastActivity})
		}
		if err := addSheet(f, customersSheet, rows); err != nil {
			return entities.RenderedReport{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return entities.RenderedReport{}, err
	}
	return entities.RenderedReport{
		FileName:    fileName(generatedAt, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}

func addSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
