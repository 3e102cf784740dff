package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeneralProductID is the sentinel product id for storefront-wide
// questions not attached to any single product.
const GeneralProductID = "general"

// ProductQuestion is a customer question, answered by the admin. Deleting
// a question cascades to its answers.
type ProductQuestion struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	ProductID    string             `json:"productId" bson:"product_id"`
	UserName     string             `json:"userName" bson:"user_name"`
	QuestionText string             `json:"questionText" bson:"question_text"`
	Answers      []ProductAnswer    `json:"answers" bson:"-"`
}

// Pending reports whether the question still awaits an answer. This is
// derived from the answers, never stored.
func (q *ProductQuestion) Pending() bool {
	return len(q.Answers) == 0
}

// ProductAnswer is an admin reply to a question.
type ProductAnswer struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	QuestionID    primitive.ObjectID `json:"questionId" bson:"question_id"`
	ResponderName string             `json:"responderName" bson:"responder_name"`
	AnswerText    string             `json:"answerText" bson:"answer_text"`
}

// CreateQuestionRequest is used for question submission requests
type CreateQuestionRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	UserName     string `json:"userName" validate:"required,min=2,max=50"`
	QuestionText string `json:"questionText" validate:"required,min=5,max=500"`
}

// CreateAnswerRequest is used when the admin answers a question
type CreateAnswerRequest struct {
	ResponderName string `json:"responderName" validate:"required,min=2,max=50"`
	AnswerText    string `json:"answerText" validate:"required,min=1,max=1000"`
}

// UpdateAnswerRequest is used when the admin edits an answer
type UpdateAnswerRequest struct {
	AnswerText string `json:"answerText" validate:"required,min=1,max=1000"`
}
