package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"louay-store/ai"
	"louay-store/utils"
)

// GenerateDescriptionRequest is used for AI description requests
type GenerateDescriptionRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=100"`
	Keywords []string `json:"keywords,omitempty" validate:"max=20"`
	Language string   `json:"language,omitempty" validate:"omitempty,oneof=en ar"`
}

// GenerateImageRequest is used for AI product image requests
type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required,min=5,max=500"`
}

// GenerateDescription handles drafting a product description from the
// product name and keywords
func (h *Handler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req GenerateDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	lang := req.Language
	if lang == "" {
		lang = "en"
	}

	description, err := h.AI.GenerateProductDescription(r.Context(), req.Name, req.Keywords, lang)
	if err != nil {
		h.handleAIError(w, err)
		return
	}

	h.ResponseHdlr.Success(w, "Description generated successfully", map[string]string{
		"description": description,
		"language":    lang,
	})
}

// GenerateProductImage handles producing a product image from a text
// prompt, returned as a base64 data URL
func (h *Handler) GenerateProductImage(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	image, err := h.AI.GenerateImage(r.Context(), req.Prompt)
	if err != nil {
		h.handleAIError(w, err)
		return
	}

	h.ResponseHdlr.Success(w, "Image generated successfully", map[string]string{
		"imageUrl": image,
	})
}

func (h *Handler) handleAIError(w http.ResponseWriter, err error) {
	if err == ai.ErrNotConfigured {
		h.ErrorHdlr.HandleServiceUnavailable(w, "AI assistance is not configured")
		return
	}
	h.ErrorHdlr.HandleServiceUnavailable(w, "AI assistance is temporarily unavailable")
}
