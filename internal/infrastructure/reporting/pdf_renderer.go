package reporting

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

const companyName = "Torchline Freight Group"

// PDFRenderer writes the one-page analytics summary.
type PDFRenderer struct {
	compress bool
}

var _ interfaces.IReportRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{compress: true} }

func (r *PDFRenderer) Format() entities.ReportFormat { return entities.ReportFormatPDF }

func (r *PDFRenderer) Render(s entities.AnalyticsSnapshot, generatedAt time.Time) (entities.RenderedReport, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(companyName+" Analytics Report", false)
	pdf.SetCompression(r.compress)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 20, companyName)
	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(20, 30, "Analytics Report")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 40, "Generated: "+generatedAt.Format("01/02/2006"))

	lines := []string{
		fmt.Sprintf("Total Quotes: %d", s.TotalQuotes),
		fmt.Sprintf("Approved Quotes: %d", s.ApprovedQuotes),
		fmt.Sprintf("Conversion Rate: %.1f%%", s.ConversionRate),
		fmt.Sprintf("Average Quote Value: $%.2f", s.AverageQuoteValue),
	}
	for i, l := range lines {
		pdf.Text(20, float64(60+10*i), l)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[report][pdf] output failed: %v", err)
		return entities.RenderedReport{}, err
	}
	return entities.RenderedReport{
		FileName:    fileName(generatedAt, "pdf"),
		ContentType: "application/pdf",
		Content:     buf.Bytes(),
	}, nil
}

func fileName(at time.Time, ext string) string {
	return fmt.Sprintf("torchline_analytics_report_%s.%s", at.Format("2006-01-02"), ext)
}
