package handlers

import (
	"net/http"
	"strings"
	"time"

	"parcelbook/middleware"
	"parcelbook/models"
	"parcelbook/repository"
	"parcelbook/utils"

	"github.com/google/uuid"
)

type UserHandler struct {
	Repo     repository.UserRepository
	Branches repository.BranchRepository
	Tokens   *utils.TokenIssuer
}

type loginResponse struct {
	Token string          `json:"token"`
	User  *models.AppUser `json:"user"`
}

// Login checks credentials and returns a signed session token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &creds) {
		return
	}

	user, err := h.Repo.GetUserByEmail(r.Context(), strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil || !utils.CheckPassword(user.Password, creds.Password) {
		fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	branchID := ""
	if user.BranchID != nil {
		branchID = *user.BranchID
	}
	token, err := h.Tokens.GenerateToken(user.ID, string(user.Role), branchID)
	if err != nil {
		writeError(w, err)
		return
	}

	user.Password = "" // hide password hash
	ok(w, http.StatusOK, "Login successful", loginResponse{Token: token, User: user})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	user, err := h.Repo.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	user.Password = ""
	ok(w, http.StatusOK, "User fetched", user)
}

type createUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	BranchID *string     `json:"branch_id,omitempty"`
}

// CreateUser registers a new account. Branch staff must belong to an existing branch.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	switch req.Role {
	case models.RoleSuperAdmin:
		req.BranchID = nil
	case models.RoleBranch:
		if req.BranchID == nil || *req.BranchID == "" {
			fail(w, http.StatusBadRequest, "branch_id is required for branch users")
			return
		}
		branch, err := h.Branches.GetBranch(r.Context(), *req.BranchID)
		if err != nil {
			writeError(w, err)
			return
		}
		if branch == nil {
			fail(w, http.StatusBadRequest, "Unknown branch "+*req.BranchID)
			return
		}
	default:
		fail(w, http.StatusBadRequest, "Role must be SUPER_ADMIN or BRANCH")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	user := &models.AppUser{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      req.Role,
		BranchID:  req.BranchID,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.CreateUser(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}

	user.Password = ""
	ok(w, http.StatusCreated, "User created successfully", user)
}
