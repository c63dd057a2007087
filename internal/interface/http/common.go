package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aaronzito/api-web-encontrarte/pkg/helpers"
)

// pathID parses the :id path segment.
func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// imageValue renders stored image bytes as a base64 data URI, or null when
// no image is stored, matching what API clients expect on read.
func imageValue(img []byte) any {
	if len(img) == 0 {
		return nil
	}
	return helpers.EncodeDataURI(img)
}
