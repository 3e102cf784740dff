package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"louay-store/models"
	"louay-store/utils"
)

// AdminLogin handles the admin panel login. The account email is fixed by
// configuration, so the form only sends the password.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid request body")
		return
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		h.ErrorHdlr.HandleValidationError(w, utils.CollectValidationErrors(err))
		return
	}

	var account models.AdminAccount
	collection := h.DB.Database(h.Database).Collection("admins")
	err := collection.FindOne(r.Context(), bson.M{"email": h.Config.AdminEmail}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.ErrorHdlr.HandleUnauthorized(w, "Invalid credentials")
		} else {
			h.ErrorHdlr.HandleInternalError(w, "Error fetching admin account")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		h.ErrorHdlr.HandleUnauthorized(w, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJWT(h.Config.JWTSecret, account.ID.Hex(), account.Role)
	if err != nil {
		h.ErrorHdlr.HandleInternalError(w, "Error generating token")
		return
	}

	h.ResponseHdlr.Success(w, "Login successful", models.LoginResponse{
		Token: token,
		Email: account.Email,
		Role:  account.Role,
	})
}

// ListRoles handles listing the known admin roles and their permissions
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	h.ResponseHdlr.Success(w, "Roles fetched successfully", models.RolePermissions)
}

// EnsureAdminAccount seeds the configured admin account at startup. An
// existing account keeps its stored password hash; seeding only runs when
// the account is missing and a password is configured.
func EnsureAdminAccount(ctx context.Context, db *mongo.Client, database string, email, password string) error {
	collection := db.Database(database).Collection("admins")

	err := collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin account seeding")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := models.AdminAccount{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: string(hash),
		Role:     "master_admin",
	}
	if _, err := collection.InsertOne(ctx, account); err != nil {
		return err
	}

	log.Printf("Seeded admin account %s", email)
	return nil
}
