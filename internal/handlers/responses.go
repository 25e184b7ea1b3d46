package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"daily-market/internal/repository"
)

// abortRepoError translates a repository failure into the response contract:
// missing or malformed ids are 404, everything else is 500 with the
// underlying message passed through.
func abortRepoError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
}
