package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mariafernandahr/pharmacy-api/store"
)

// Error translates a store error kind into an HTTP response.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrConstraint):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ storage error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Deleted reports the outcome of a best-effort delete: absent rows are a
// 404, everything else collapses into a bare JSON boolean so a blocked or
// failed delete never crashes the request.
func Deleted(c *gin.Context, err error) {
	if err == nil {
		c.JSON(http.StatusOK, true)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	log.Printf("⚠️ delete failed: %v", err)
	c.JSON(http.StatusOK, false)
}

// ID parses the numeric :id path parameter.
func ID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
