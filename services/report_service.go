package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"burgerhouse/entity"
	"burgerhouse/repository"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Orders in these statuses count as sales.
var salesStatuses = []string{entity.OrderPaid, entity.OrderPreparing, entity.OrderCompleted}

const pdfContentType = "application/pdf"

type ReportService struct {
	repo *repository.ReportRepository
	now  func() time.Time
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{repo: repo, now: time.Now}
}

// ReportFile is a generated document, base64 encoded for the JSON body.
type ReportFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// SalesSummary is the numbers printed at the bottom of the sales report.
type SalesSummary struct {
	Orders        int
	Subtotal      int64
	ToppingsTotal int64
	Total         int64
	Average       decimal.Decimal
}

func Summarize(rows []repository.SaleRow) SalesSummary {
	var s SalesSummary
	for _, r := range rows {
		s.Orders++
		s.Subtotal += r.Subtotal
		s.ToppingsTotal += r.ToppingsTotal
		s.Total += r.Total
	}
	if s.Orders > 0 {
		s.Average = decimal.NewFromInt(s.Total).Div(decimal.NewFromInt(int64(s.Orders))).Round(2)
	}
	return s
}

// Sales renders every sale created between from and to, both days inclusive.
// A zero from means the last 30 days.
func (s *ReportService) Sales(from, to time.Time) (*ReportFile, error) {
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	from = startOfDay(from)
	end := startOfDay(to).AddDate(0, 0, 1)
	if !from.Before(end) {
		return nil, fmt.Errorf("from must not be after to: %w", ErrBadRange)
	}

	rows, err := s.repo.SalesBetween(from, end, salesStatuses)
	if err != nil {
		return nil, err
	}
	sum := Summarize(rows)

	pdf := newReport(fmt.Sprintf("Sales %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02")))
	header(pdf, []float64{20, 45, 35, 35, 35}, "Order", "Date", "Burgers", "Toppings", "Total")
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(20, 7, fmt.Sprint(r.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, r.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, money(r.Subtotal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, money(r.ToppingsTotal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, money(r.Total), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Orders: %d", sum.Orders), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Revenue: "+money(sum.Total), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Toppings revenue: "+money(sum.ToppingsTotal), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Average order: "+sum.Average.StringFixed(2), "", 1, "L", false, 0, "")

	name := fmt.Sprintf("sales_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	return encode(pdf, name)
}

// ProductShare is one ranked product and its share of all item revenue.
type ProductShare struct {
	repository.ProductSalesRow
	Share decimal.Decimal
}

// RankProducts returns the best sellers with each one's share of revenue
// across every sale, not just the ranked rows.
func (s *ReportService) RankProducts(limit int) ([]ProductShare, error) {
	rows, err := s.repo.TopProducts(limit, salesStatuses)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.ItemsRevenue(salesStatuses)
	if err != nil {
		return nil, err
	}
	out := make([]ProductShare, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProductShare{ProductSalesRow: r, Share: Share(r.Revenue, revenue)})
	}
	return out, nil
}

// TopProducts ranks burgers by units sold and prints each one's share of revenue.
func (s *ReportService) TopProducts(limit int) (*ReportFile, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	ranked, err := s.RankProducts(limit)
	if err != nil {
		return nil, err
	}

	pdf := newReport(fmt.Sprintf("Top %d products", limit))
	header(pdf, []float64{15, 70, 25, 40, 30}, "#", "Product", "Units", "Revenue", "Share")
	pdf.SetFont("Helvetica", "", 10)
	for i, r := range ranked {
		pdf.CellFormat(15, 7, fmt.Sprint(i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 7, r.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprint(r.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, money(r.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, r.Share.StringFixed(1)+"%", "1", 1, "R", false, 0, "")
	}

	return encode(pdf, fmt.Sprintf("top_products_%s.pdf", s.now().Format("20060102")))
}

// Share is part as a percentage of whole, 0 when whole is 0.
func Share(part, whole int64) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(whole)).Round(1)
}

func newReport(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Burger House - "+title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	return pdf
}

func header(pdf *fpdf.Fpdf, widths []float64, cols ...string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 8, c, "1", ln, "C", true, 0, "")
	}
}

func encode(pdf *fpdf.Fpdf, filename string) (*ReportFile, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &ReportFile{
		Filename:    filename,
		ContentType: pdfContentType,
		Content:     base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

func money(v int64) string {
	return "$" + decimal.NewFromInt(v).StringFixed(0)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
