package handlers

import (
	"louay-store/ai"
	"louay-store/config"
	"louay-store/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// Handler struct contains the database client, database name, and the
// shared response/error helpers used by every route.
type Handler struct {
	DB           *mongo.Client
	Database     string
	Config       *config.Config
	AI           *ai.Client
	ErrorHdlr    *utils.ErrorHandler
	ResponseHdlr *ResponseHandler
}

func NewHandler(db *mongo.Client, cfg *config.Config, aiClient *ai.Client) *Handler {
	return &Handler{
		DB:           db,
		Database:     cfg.Database,
		Config:       cfg,
		AI:           aiClient,
		ErrorHdlr:    utils.NewErrorHandler(),
		ResponseHdlr: NewResponseHandler(),
	}
}
