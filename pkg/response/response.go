package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message writes the plain {"message": ...} body this API uses for
// acknowledgments and errors alike.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Created acknowledges an insert together with the new row id.
func Created(c *gin.Context, msg string, id int64) {
	c.JSON(http.StatusCreated, gin.H{"message": msg, "id": id})
}

// Deleted reports the affected-row count of a delete statement.
func Deleted(c *gin.Context, affected int64) {
	c.JSON(http.StatusOK, gin.H{"affectedRows": affected})
}
