// Package report builds the monthly CSV report the admin panel offers
// for download: sales totals, per-product performance and engagement
// numbers for one calendar month.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"louay-store/models"
)

// ProductPerformance is one product's line in the report.
type ProductPerformance struct {
	ProductID     string
	Name          string
	UnitsSold     int
	Revenue       float64
	Likes         int
	AverageRating float64
	ReviewCount   int
	Stock         int
}

// Report is the assembled monthly report.
type Report struct {
	Year  int
	Month time.Month

	TotalOrders     int
	DeliveredOrders int
	CancelledOrders int
	ReturnedOrders  int
	Revenue         float64
	ShippingTotal   float64

	Products []ProductPerformance

	TrafficSources map[string]int

	TotalQuestions    int
	AnsweredQuestions int

	TotalReviews  int
	AverageRating float64
	RatingCounts  [5]int
}

// Build assembles the report for one calendar month. Orders are counted
// by creation date; cancelled and returned orders are excluded from the
// revenue and per-product sales figures.
func Build(year int, month time.Month, orders []models.Order, products []models.Product,
	questions []models.ProductQuestion, reviews []models.ProductReview) *Report {

	rep := &Report{Year: year, Month: month, TrafficSources: make(map[string]int)}

	sales := make(map[string]*ProductPerformance)
	for _, p := range products {
		sales[p.ID.Hex()] = &ProductPerformance{
			ProductID:     p.ID.Hex(),
			Name:          p.Name.En,
			Likes:         p.Likes,
			AverageRating: p.AverageRating,
			ReviewCount:   p.ReviewCount,
			Stock:         p.Stock,
		}
	}

	for _, order := range orders {
		if !inMonth(order.CreatedAt, year, month) {
			continue
		}
		rep.TotalOrders++
		source := order.TrafficSource
		if source == "" {
			source = "direct"
		}
		rep.TrafficSources[source]++
		switch order.Status {
		case models.StatusDelivered:
			rep.DeliveredOrders++
		case models.StatusCancelled:
			rep.CancelledOrders++
		case models.StatusReturned:
			rep.ReturnedOrders++
		}
		if order.Status == models.StatusCancelled || order.Status == models.StatusReturned {
			continue
		}
		rep.Revenue += order.TotalPrice
		rep.ShippingTotal += order.ShippingCost
		for _, item := range order.Items {
			perf, ok := sales[item.ProductID]
			if !ok {
				// Product deleted since; keep the snapshot name.
				perf = &ProductPerformance{ProductID: item.ProductID, Name: item.Name.En}
				sales[item.ProductID] = perf
			}
			perf.UnitsSold += item.Quantity
			perf.Revenue += item.Price * float64(item.Quantity)
		}
	}

	for _, perf := range sales {
		rep.Products = append(rep.Products, *perf)
	}
	sort.Slice(rep.Products, func(i, j int) bool {
		if rep.Products[i].UnitsSold != rep.Products[j].UnitsSold {
			return rep.Products[i].UnitsSold > rep.Products[j].UnitsSold
		}
		return rep.Products[i].Name < rep.Products[j].Name
	})

	for _, q := range questions {
		if !inMonth(q.CreatedAt, year, month) {
			continue
		}
		rep.TotalQuestions++
		if !q.Pending() {
			rep.AnsweredQuestions++
		}
	}

	var ratingSum int
	for _, review := range reviews {
		if !inMonth(review.CreatedAt, year, month) {
			continue
		}
		rep.TotalReviews++
		ratingSum += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			rep.RatingCounts[review.Rating-1]++
		}
	}
	if rep.TotalReviews > 0 {
		rep.AverageRating = float64(ratingSum) / float64(rep.TotalReviews)
	}

	return rep
}

// TopSelling returns the n best selling products of the month.
func (r *Report) TopSelling(n int) []ProductPerformance {
	if n > len(r.Products) {
		n = len(r.Products)
	}
	return r.Products[:n]
}

// Filename returns the download name for the report.
func (r *Report) Filename() string {
	return fmt.Sprintf("report-%04d-%02d.csv", r.Year, int(r.Month))
}

// Summary renders the report as plain text, the form fed to the insights
// assistant.
func (r *Report) Summary() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Monthly report for %s %d\n", r.Month, r.Year)
	fmt.Fprintf(&buf, "Orders: %d total, %d delivered, %d cancelled, %d returned\n",
		r.TotalOrders, r.DeliveredOrders, r.CancelledOrders, r.ReturnedOrders)
	fmt.Fprintf(&buf, "Revenue: %.2f DZD (shipping %.2f DZD)\n", r.Revenue, r.ShippingTotal)
	for i, perf := range r.TopSelling(5) {
		fmt.Fprintf(&buf, "Top product %d: %s, %d units, %.2f DZD\n", i+1, perf.Name, perf.UnitsSold, perf.Revenue)
	}
	for _, source := range r.sortedSources() {
		fmt.Fprintf(&buf, "Traffic source %s: %d orders\n", source, r.TrafficSources[source])
	}
	fmt.Fprintf(&buf, "Questions: %d asked, %d answered\n", r.TotalQuestions, r.AnsweredQuestions)
	fmt.Fprintf(&buf, "Reviews: %d, average rating %.2f\n", r.TotalReviews, r.AverageRating)
	return buf.String()
}

// WriteCSV renders the report in the layout the admin panel expects:
// a titled header followed by the summary, top sellers, per-product
// detail, Q&A and review sections, separated by blank rows.
func (r *Report) WriteCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{fmt.Sprintf("Monthly Report - %s %d", r.Month, r.Year)},
		{},
		{"Sales Summary"},
		{"Total Orders", strconv.Itoa(r.TotalOrders)},
		{"Delivered Orders", strconv.Itoa(r.DeliveredOrders)},
		{"Cancelled Orders", strconv.Itoa(r.CancelledOrders)},
		{"Returned Orders", strconv.Itoa(r.ReturnedOrders)},
		{"Revenue (DZD)", formatAmount(r.Revenue)},
		{"Shipping Collected (DZD)", formatAmount(r.ShippingTotal)},
		{},
		{"Top Selling Products"},
		{"Rank", "Product", "Units Sold", "Revenue (DZD)"},
	}
	for i, perf := range r.TopSelling(5) {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			perf.Name,
			strconv.Itoa(perf.UnitsSold),
			formatAmount(perf.Revenue),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Detailed Product Performance"},
		[]string{"Product", "Units Sold", "Revenue (DZD)", "Likes", "Average Rating", "Reviews", "Stock"},
	)
	for _, perf := range r.Products {
		rows = append(rows, []string{
			perf.Name,
			strconv.Itoa(perf.UnitsSold),
			formatAmount(perf.Revenue),
			strconv.Itoa(perf.Likes),
			fmt.Sprintf("%.2f", perf.AverageRating),
			strconv.Itoa(perf.ReviewCount),
			strconv.Itoa(perf.Stock),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Traffic Sources"},
		[]string{"Source", "Orders"},
	)
	for _, source := range r.sortedSources() {
		rows = append(rows, []string{source, strconv.Itoa(r.TrafficSources[source])})
	}

	rows = append(rows,
		[]string{},
		[]string{"Q&A Summary"},
		[]string{"Questions Asked", strconv.Itoa(r.TotalQuestions)},
		[]string{"Questions Answered", strconv.Itoa(r.AnsweredQuestions)},
		[]string{"Questions Pending", strconv.Itoa(r.TotalQuestions - r.AnsweredQuestions)},
		[]string{},
		[]string{"Review Summary"},
		[]string{"Total Reviews", strconv.Itoa(r.TotalReviews)},
		[]string{"Average Rating", fmt.Sprintf("%.2f", r.AverageRating)},
	)
	for stars := 5; stars >= 1; stars-- {
		rows = append(rows, []string{
			fmt.Sprintf("%d Star Reviews", stars),
			strconv.Itoa(r.RatingCounts[stars-1]),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sortedSources orders traffic sources by order count, ties by name.
func (r *Report) sortedSources() []string {
	sources := make([]string, 0, len(r.TrafficSources))
	for source := range r.TrafficSources {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool {
		if r.TrafficSources[sources[i]] != r.TrafficSources[sources[j]] {
			return r.TrafficSources[sources[i]] > r.TrafficSources[sources[j]]
		}
		return sources[i] < sources[j]
	})
	return sources
}

func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
