package handlers

import (
	"errors"

	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors onto the response envelope: validation
// failures become 400, duplicate ids 409, anything else 500.
func writeError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		response.BadRequest(c, vErr.Error())
		return
	}
	if errors.Is(err, store.ErrDuplicateID) {
		response.Conflict(c, err.Error())
		return
	}
	response.ServerError(c, err.Error())
}
