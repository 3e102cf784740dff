package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"louay-store/models"
)

func buildFixtures(t *testing.T) ([]models.Order, []models.Product, []models.ProductQuestion, []models.ProductReview) {
	t.Helper()

	inMonth := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	otherMonth := time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC)

	earbuds := models.Product{
		ID:    primitive.NewObjectID(),
		Name:  models.Localized{En: "Wireless Earbuds", Ar: "سماعات لاسلكية"},
		Price: 2500, Likes: 12, AverageRating: 4.5, ReviewCount: 2, Stock: 8,
	}
	watch := models.Product{
		ID:    primitive.NewObjectID(),
		Name:  models.Localized{En: "Smart Watch", Ar: "ساعة ذكية"},
		Price: 6000, Likes: 3, Stock: 4,
	}

	orders := []models.Order{
		{
			CreatedAt:     inMonth,
			Status:        models.StatusDelivered,
			TotalPrice:    5400,
			ShippingCost:  400,
			TrafficSource: "instagram-july",
			Items: []models.CartItem{
				{ProductID: earbuds.ID.Hex(), Name: earbuds.Name, Price: 2500, Quantity: 2},
			},
		},
		{
			CreatedAt:    inMonth,
			Status:       models.StatusPendingApproval,
			TotalPrice:   6500,
			ShippingCost: 500,
			Items: []models.CartItem{
				{ProductID: watch.ID.Hex(), Name: watch.Name, Price: 6000, Quantity: 1},
			},
		},
		{
			// Cancelled orders count but contribute no revenue.
			CreatedAt:    inMonth,
			Status:       models.StatusCancelled,
			TotalPrice:   9999,
			ShippingCost: 999,
			Items: []models.CartItem{
				{ProductID: watch.ID.Hex(), Name: watch.Name, Price: 6000, Quantity: 5},
			},
		},
		{
			// Wrong month, ignored entirely.
			CreatedAt:    otherMonth,
			Status:       models.StatusDelivered,
			TotalPrice:   2900,
			ShippingCost: 400,
			Items: []models.CartItem{
				{ProductID: earbuds.ID.Hex(), Name: earbuds.Name, Price: 2500, Quantity: 1},
			},
		},
	}

	questions := []models.ProductQuestion{
		{CreatedAt: inMonth, QuestionText: "Does it ship with a charger?",
			Answers: []models.ProductAnswer{{AnswerText: "Yes."}}},
		{CreatedAt: inMonth, QuestionText: "Is the strap replaceable?"},
		{CreatedAt: otherMonth, QuestionText: "Out of range"},
	}

	reviews := []models.ProductReview{
		{CreatedAt: inMonth, Rating: 5},
		{CreatedAt: inMonth, Rating: 4},
		{CreatedAt: otherMonth, Rating: 1},
	}

	return orders, []models.Product{earbuds, watch}, questions, reviews
}

func TestBuildAggregatesOneMonth(t *testing.T) {
	orders, products, questions, reviews := buildFixtures(t)

	rep := Build(2026, time.March, orders, products, questions, reviews)

	assert.Equal(t, 3, rep.TotalOrders)
	assert.Equal(t, 1, rep.DeliveredOrders)
	assert.Equal(t, 1, rep.CancelledOrders)
	assert.Equal(t, 11900.0, rep.Revenue, "cancelled order excluded")
	assert.Equal(t, 900.0, rep.ShippingTotal)

	require.NotEmpty(t, rep.Products)
	top := rep.TopSelling(1)
	require.Len(t, top, 1)
	assert.Equal(t, "Wireless Earbuds", top[0].Name)
	assert.Equal(t, 2, top[0].UnitsSold)
	assert.Equal(t, 5000.0, top[0].Revenue)

	assert.Equal(t, 1, rep.TrafficSources["instagram-july"])
	assert.Equal(t, 2, rep.TrafficSources["direct"])

	assert.Equal(t, 2, rep.TotalQuestions)
	assert.Equal(t, 1, rep.AnsweredQuestions)

	assert.Equal(t, 2, rep.TotalReviews)
	assert.InDelta(t, 4.5, rep.AverageRating, 0.001)
	assert.Equal(t, 1, rep.RatingCounts[4]) // five star
	assert.Equal(t, 1, rep.RatingCounts[3]) // four star
}

func TestBuildKeepsSalesOfDeletedProducts(t *testing.T) {
	orders, _, questions, reviews := buildFixtures(t)

	// No catalog at all: sales figures survive via the order snapshots.
	rep := Build(2026, time.March, orders, nil, questions, reviews)

	top := rep.TopSelling(5)
	require.NotEmpty(t, top)
	assert.Equal(t, "Wireless Earbuds", top[0].Name)
}

func TestWriteCSVSections(t *testing.T) {
	orders, products, questions, reviews := buildFixtures(t)
	rep := Build(2026, time.March, orders, products, questions, reviews)

	content, err := rep.WriteCSV()
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "Monthly Report - March 2026")
	assert.Contains(t, text, "Sales Summary")
	assert.Contains(t, text, "Top Selling Products")
	assert.Contains(t, text, "Detailed Product Performance")
	assert.Contains(t, text, "Traffic Sources")
	assert.Contains(t, text, "Q&A Summary")
	assert.Contains(t, text, "Review Summary")
	assert.Contains(t, text, "Revenue (DZD),11900.00")
}

func TestWriteCSVEscapesCommas(t *testing.T) {
	product := models.Product{
		ID:   primitive.NewObjectID(),
		Name: models.Localized{En: `Tripod, Compact "Pro"`, Ar: "حامل ثلاثي"},
	}

	rep := Build(2026, time.March, nil, []models.Product{product}, nil, nil)
	content, err := rep.WriteCSV()
	require.NoError(t, err)

	assert.Contains(t, string(content), `"Tripod, Compact ""Pro"""`)
}

func TestFilenameAndSummary(t *testing.T) {
	rep := Build(2026, time.March, nil, nil, nil, nil)

	assert.Equal(t, "report-2026-03.csv", rep.Filename())
	assert.True(t, strings.HasPrefix(rep.Summary(), "Monthly report for March 2026"))
}
