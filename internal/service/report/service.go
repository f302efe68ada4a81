package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hrpms/pms-backend-go/internal/domain/agreement"
)

// ReportService renders printable documents for the approval workflow.
type ReportService interface {
	AgreementPDF(ctx context.Context, viewer agreement.Viewer, id string) ([]byte, error)
}

type reportServiceImpl struct {
	agreementRepo agreement.AgreementRepository
}

func NewReportService(agreementRepo agreement.AgreementRepository) ReportService {
	return &reportServiceImpl{agreementRepo: agreementRepo}
}

// AgreementPDF implements ReportService. Access follows the same rule as
// preview: participants and admins only.
func (s *reportServiceImpl) AgreementPDF(ctx context.Context, viewer agreement.Viewer, id string) ([]byte, error) {
	a, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actions := agreement.ResolveActions(a, viewer)
	if !actions.CanPreview {
		return nil, agreement.ErrAgreementNotFound
	}

	statusInfo := agreement.ResolveStatus(a.Status)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Performance Agreement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Title: %s", a.Title))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", a.Period))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", statusInfo.Label))
	pdf.Ln(7)
	if a.DepartmentName != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Department: %s", *a.DepartmentName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", a.Creator.FullName()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Supervisor: %s", a.Supervisor.FullName()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Head of Department: %s", a.HOD.FullName()))
	pdf.Ln(7)
	if a.SubmittedAt != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Submitted: %s", a.SubmittedAt.Format("2006-01-02")))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Performance Measures")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	if len(a.Measures) == 0 {
		pdf.Cell(0, 7, "No measures recorded.")
		pdf.Ln(7)
	}
	for i, m := range a.Measures {
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s", i+1, m.Name))
		pdf.Ln(6)
		if m.SelfRating != nil {
			pdf.Cell(0, 6, fmt.Sprintf("   Self rating: %.1f", *m.SelfRating))
			pdf.Ln(6)
		}
		if m.ActualValue != nil {
			pdf.Cell(0, 6, fmt.Sprintf("   Actual: %s", *m.ActualValue))
			pdf.Ln(6)
		}
		if m.EmployeeComments != nil {
			pdf.Cell(0, 6, fmt.Sprintf("   Comments: %s", *m.EmployeeComments))
			pdf.Ln(6)
		}
	}
	pdf.Ln(5)

	if a.SupervisorComment != nil || a.HODComment != nil {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Review Comments")
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 11)
		if a.SupervisorComment != nil {
			pdf.Cell(0, 7, fmt.Sprintf("Supervisor: %s", *a.SupervisorComment))
			pdf.Ln(6)
		}
		if a.HODComment != nil {
			pdf.Cell(0, 7, fmt.Sprintf("Head of Department: %s", *a.HODComment))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
