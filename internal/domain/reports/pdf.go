package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hrportal/internal/domain/authz"
)

// SummaryPDF renders the admin overview as a one-page PDF.
func (s *Service) SummaryPDF(ctx context.Context, session authz.Session) ([]byte, error) {
	overview, err := s.AdminOverview(ctx, session)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "HR Portal Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	lines := []struct {
		label string
		value int
	}{
		{"Total employees", overview.TotalEmployees},
		{"Total leave requests", overview.TotalLeaveRequests},
		{"Pending leave requests", overview.PendingRequests},
		{"Approved leave requests", overview.ApprovedRequests},
		{"Denied leave requests", overview.DeniedRequests},
	}

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		pdf.CellFormat(80, 8, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", line.value), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
