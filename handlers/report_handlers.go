package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"louay-store/ai"
	"louay-store/models"
	"louay-store/report"
)

// DownloadMonthlyReport handles generating the monthly CSV report. Year
// and month query parameters default to the current month.
func (h *Handler) DownloadMonthlyReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.buildMonthlyReport(w, r)
	if !ok {
		return
	}

	content, err := rep.WriteCSV()
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error generating report")
		return
	}

	h.ResponseHdlr.CSV(w, rep.Filename(), content)
}

// MonthlyReportInsights handles running the report through the insights
// assistant. Without a configured API key the endpoint degrades to 503.
func (h *Handler) MonthlyReportInsights(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.buildMonthlyReport(w, r)
	if !ok {
		return
	}

	insights, err := h.AI.GenerateInsights(r.Context(), rep.Summary())
	if err != nil {
		if err == ai.ErrNotConfigured {
			h.ErrorHdlr.HandleServiceUnavailable(w, "AI assistance is not configured")
		} else {
			h.ErrorHdlr.HandleServiceUnavailable(w, "AI assistance is temporarily unavailable")
		}
		return
	}

	h.ResponseHdlr.Success(w, "Insights generated successfully", map[string]string{
		"summary":  rep.Summary(),
		"insights": insights,
	})
}

// buildMonthlyReport loads everything the report needs and assembles it.
// It writes the error response itself and reports success via ok.
func (h *Handler) buildMonthlyReport(w http.ResponseWriter, r *http.Request) (*report.Report, bool) {
	ctx := r.Context()
	now := time.Now()

	year := now.Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > now.Year()+1 {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid year")
			return nil, false
		}
		year = parsed
	}

	month := now.Month()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			h.ErrorHdlr.HandleBadRequest(w, "Invalid month")
			return nil, false
		}
		month = time.Month(parsed)
	}

	db := h.DB.Database(h.Database)

	var orders []models.Order
	cursor, err := db.Collection("orders").Find(ctx, bson.M{})
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching orders")
		return nil, false
	}
	if err := cursor.All(ctx, &orders); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error decoding orders")
		return nil, false
	}

	var products []models.Product
	cursor, err = db.Collection("products").Find(ctx, bson.M{})
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching products")
		return nil, false
	}
	if err := cursor.All(ctx, &products); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error decoding products")
		return nil, false
	}

	questions := []models.ProductQuestion{}
	cursor, err = db.Collection("questions").Find(ctx, bson.M{})
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching questions")
		return nil, false
	}
	if err := cursor.All(ctx, &questions); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error decoding questions")
		return nil, false
	}
	if err := h.attachAnswers(r, questions); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching answers")
		return nil, false
	}

	var reviews []models.ProductReview
	cursor, err = db.Collection("reviews").Find(ctx, bson.M{})
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching reviews")
		return nil, false
	}
	if err := cursor.All(ctx, &reviews); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error decoding reviews")
		return nil, false
	}

	return report.Build(year, month, orders, products, questions, reviews), true
}
