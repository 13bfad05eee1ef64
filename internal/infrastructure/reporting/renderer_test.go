package reporting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"torchline_portal/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

var reportTime = time.Date(2026, 8, 3, 14, 0, 0, 0, time.UTC)

func sampleSnapshot() entities.AnalyticsSnapshot {
	return entities.AnalyticsSnapshot{
		TotalQuotes:       10,
		ApprovedQuotes:    4,
		RejectedQuotes:    2,
		PendingQuotes:     4,
		ConversionRate:    40,
		AverageQuoteValue: 1500,
		TopServices:       []entities.ServiceMetric{{ServiceName: "ocean", QuoteCount: 10, ApprovalRate: 40, AverageValue: 1500}},
		CustomerMetrics:   []entities.CustomerMetric{},
	}
}

func TestPDFRenderer_Render(t *testing.T) {
	r := &PDFRenderer{compress: false}
	out, err := r.Render(sampleSnapshot(), reportTime)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.HasPrefix(out.Content, []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", out.Content[:8])
	}
	for _, want := range []string{"Torchline Freight Group", "Conversion Rate: 40.0%", "Average Quote Value: $1500.00", "Generated: 08/03/2026"} {
		if !bytes.Contains(out.Content, []byte(want)) {
			t.Fatalf("expected %q in uncompressed PDF", want)
		}
	}
	if out.FileName != "torchline_analytics_report_2026-08-03.pdf" || out.ContentType != "application/pdf" {
		t.Fatalf("unexpected file info %s %s", out.FileName, out.ContentType)
	}
	if r.Format() != entities.ReportFormatPDF {
		t.Fatalf("unexpected format %s", r.Format())
	}
}

func TestExcelRenderer_Render(t *testing.T) {
	out, err := NewExcelRenderer().Render(sampleSnapshot(), reportTime)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasSuffix(out.FileName, ".xlsx") {
		t.Fatalf("unexpected file name %s", out.FileName)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out.Content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Summary" || sheets[1] != "Services" {
		t.Fatalf("expected Summary and Services sheets, got %v", sheets)
	}
	rows, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if len(rows) != 7 || rows[0][0] != "Metric" || rows[5][1] != "40.0%" || rows[6][1] != "$1500.00" || rows[3][1] != "2" {
		t.Fatalf("unexpected summary rows %v", rows)
	}
	svc, _ := f.GetRows("Services")
	if len(svc) != 2 || svc[1][0] != "ocean" {
		t.Fatalf("unexpected services rows %v", svc)
	}
}
