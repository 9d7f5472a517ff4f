package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse is the uniform envelope for list endpoints, keyed in the
// API's Portuguese wire vocabulary like the rest of the surface.
type ListResponse[T any] struct {
	Items []T `json:"itens"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Items: items,
		Total: len(items),
	})
}
