package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"louay-store/cache"
	"louay-store/models"
	"louay-store/utils"
)

// GetQuestions handles listing questions with their answers attached.
// A product query parameter narrows the list to one product; the
// "general" sentinel selects storefront-wide questions.
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := r.URL.Query().Get("product")

	cacheKey := "questions:all"
	if productID != "" {
		cacheKey = "questions:product=" + productID
	}

	var questions []models.ProductQuestion
	if err := cache.GetCache(ctx, cacheKey, &questions); err == nil {
		w.Header().Set("X-Cache", "HIT")
		h.ResponseHdlr.Success(w, "Questions fetched successfully", questions)
		return
	}

	filter := bson.M{}
	if productID != "" {
		filter["product_id"] = productID
	}

	collection := h.DB.Database(h.Database).Collection("questions")
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching questions")
		return
	}
	defer cursor.Close(ctx)

	questions = []models.ProductQuestion{}
	if err := cursor.All(ctx, &questions); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error decoding questions")
		return
	}

	if err := h.attachAnswers(r, questions); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error fetching answers")
		return
	}

	if err := cache.SetCache(ctx, cacheKey, questions, 5*time.Minute); err != nil {
		log.Printf("Failed to cache questions: %v", err)
	}

	w.Header().Set("X-Cache", "MISS")
	h.ResponseHdlr.Success(w, "Questions fetched successfully", questions)
}

// CreateQuestion handles submitting a customer question
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	// A question is either general or attached to a real product.
	if req.ProductID != models.GeneralProductID {
		if _, err := h.findProduct(r, req.ProductID); err != nil {
			if err == mongo.ErrNoDocuments {
				h.ErrorHdlr.HandleNotFound(w, "Product not found")
			} else {
				h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
			}
			return
		}
	}

	question := models.ProductQuestion{
		ID:           primitive.NewObjectID(),
		CreatedAt:    time.Now(),
		ProductID:    req.ProductID,
		UserName:     req.UserName,
		QuestionText: req.QuestionText,
	}

	collection := h.DB.Database(h.Database).Collection("questions")
	if _, err := collection.InsertOne(r.Context(), question); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error creating question")
		return
	}

	h.invalidateQuestionCache(r)

	h.ResponseHdlr.Created(w, "Question created successfully", question)
}

// CreateAnswer handles the admin answering a question
func (h *Handler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questionID := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid question ID")
		return
	}

	questions := h.DB.Database(h.Database).Collection("questions")
	if err := questions.FindOne(ctx, bson.M{"_id": objID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleNotFound(w, "Question not found")
		} else {
			h.ErrorHdlr.HandleInternalError(w, "Error fetching question")
		}
		return
	}

	var req models.CreateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	answer := models.ProductAnswer{
		ID:            primitive.NewObjectID(),
		CreatedAt:     time.Now(),
		QuestionID:    objID,
		ResponderName: req.ResponderName,
		AnswerText:    req.AnswerText,
	}

	answers := h.DB.Database(h.Database).Collection("answers")
	if _, err := answers.InsertOne(ctx, answer); err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error creating answer")
		return
	}

	h.invalidateQuestionCache(r)

	h.ResponseHdlr.Created(w, "Answer created successfully", answer)
}

// UpdateAnswer handles the admin editing an existing answer
func (h *Handler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	answerID := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(answerID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid answer ID")
		return
	}

	var req models.UpdateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	answers := h.DB.Database(h.Database).Collection("answers")
	result, err := answers.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{
		"answer_text": req.AnswerText,
	}})
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error updating answer")
		return
	}
	if result.MatchedCount == 0 {
		h.ErrorHdlr.HandleNotFound(w, "Answer not found")
		return
	}

	h.invalidateQuestionCache(r)

	h.ResponseHdlr.Success(w, "Answer updated successfully", nil)
}

// DeleteAnswer handles removing an answer
func (h *Handler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	answerID := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(answerID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid answer ID")
		return
	}

	answers := h.DB.Database(h.Database).Collection("answers")
	result, err := answers.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error deleting answer")
		return
	}
	if result.DeletedCount == 0 {
		h.ErrorHdlr.HandleNotFound(w, "Answer not found")
		return
	}

	h.invalidateQuestionCache(r)

	h.ResponseHdlr.Success(w, "Answer deleted successfully", nil)
}

// DeleteQuestion handles removing a question together with its answers
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questionID := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid question ID")
		return
	}

	questions := h.DB.Database(h.Database).Collection("questions")
	result, err := questions.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error deleting question")
		return
	}
	if result.DeletedCount == 0 {
		h.ErrorHdlr.HandleNotFound(w, "Question not found")
		return
	}

	// Cascade: orphaned answers are never shown, drop them too.
	answers := h.DB.Database(h.Database).Collection("answers")
	if _, err := answers.DeleteMany(ctx, bson.M{"question_id": objID}); err != nil {
		log.Printf("Failed to delete answers of question %s: %v", questionID, err)
	}

	h.invalidateQuestionCache(r)

	h.ResponseHdlr.Success(w, "Question deleted successfully", nil)
}

// attachAnswers loads the answers of every listed question in one query.
func (h *Handler) attachAnswers(r *http.Request, questions []models.ProductQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	ctx := r.Context()

	ids := make([]primitive.ObjectID, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	collection := h.DB.Database(h.Database).Collection("answers")
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"question_id": bson.M{"$in": ids}}, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var answers []models.ProductAnswer
	if err := cursor.All(ctx, &answers); err != nil {
		return err
	}

	byQuestion := make(map[primitive.ObjectID][]models.ProductAnswer, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}
	for i := range questions {
		questions[i].Answers = byQuestion[questions[i].ID]
	}
	return nil
}

func (h *Handler) invalidateQuestionCache(r *http.Request) {
	if err := cache.DeleteByPattern(r.Context(), cache.QuestionListPattern); err != nil {
		log.Printf("Failed to invalidate question cache: %v", err)
	}
}
