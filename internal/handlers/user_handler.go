package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"daily-market/internal/models"
	"daily-market/internal/repository"
)

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// GET /users/:email
// Public role lookup used by the frontend router; unknown emails are plain
// users.
func (h *UserHandler) GetUserRole(c *gin.Context) {
	email := c.Param("email")

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": user.EffectiveRole()})
}

// GET /users?search= (admin)
func (h *UserHandler) ListUsers(c *gin.Context) {
	search := c.Query("search")

	users, err := h.users.Search(c.Request.Context(), search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// POST /users
// Upsert-on-login: a second registration for the same email is a no-op.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.users.FindByEmail(c.Request.Context(), user.Email)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
		return
	}

	id, err := h.users.Insert(c.Request.Context(), &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// PATCH /users/role/:id (admin)
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")

	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role is required"})
		return
	}

	if err := h.users.UpdateRole(c.Request.Context(), userID, body.Role); err != nil {
		abortRepoError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
