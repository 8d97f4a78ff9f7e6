package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/NikGojani/san-rise-sub001/internal/domain/events"
	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
	"github.com/NikGojani/san-rise-sub001/internal/domain/settings"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// SummaryPDF renders the dashboard cost summary for the month containing now.
func (s *Service) SummaryPDF(w io.Writer, summary finance.Summary, cfg settings.Settings, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("%s - Monthly Cost Summary", cfg.CompanyName))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", now.Format("January 2006")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Contracts (%d): %.2f %s", summary.ContractCount, summary.ContractsMonthly, cfg.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employees (%d active of %d): %.2f %s",
		summary.Employees.EmployeeCount, summary.Employees.TotalEmployees, summary.EmployeesMonthly, cfg.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Additional costs (%d): %.2f %s", summary.CostCount, summary.AdditionalMonthly, cfg.Currency))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total monthly costs: %.2f %s", summary.GrandTotal, cfg.Currency))

	if len(summary.Employees.Breakdown) > 0 {
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Employee breakdown")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, emp := range summary.Employees.Breakdown {
			status := "active"
			if !emp.Active {
				status = "inactive"
			}
			pdf.Cell(0, 7, fmt.Sprintf("%s (%s): gross %.2f + %.0f%% surcharge %.2f = %.2f %s",
				emp.Name, status, emp.GrossSalary, emp.Percentage, emp.AdditionalCost, emp.TotalCost, cfg.Currency))
			pdf.Ln(6)
		}
	}

	return pdf.Output(w)
}

// EventPDF renders the economics snapshot of one saved event.
func (s *Service) EventPDF(w io.Writer, event events.Event, currency string) error {
	result := event.Result

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Event Calculation: %s", event.Name))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	if event.Date != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Date: %s", event.Date.Format("2006-01-02")))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Tickets: %.0f x %.0f occurrences at %.0f%% sell-through", event.TicketCount, event.Termine, event.VKPercentage))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Sold tickets: %.1f", result.SoldTickets))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Revenue: %.2f %s", result.Revenue, currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("GEMA fee: %.2f %s", result.GemaFee, currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Platform fee: %.2f %s", result.PlatformFee, currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Basic costs: %.2f %s", result.BasicCosts, currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Optional costs: %.2f %s", result.OptionalCosts, currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Discount: %.2f %s", result.DiscountAmount, currency))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Profit: %.2f %s", result.Profit, currency))

	return pdf.Output(w)
}
