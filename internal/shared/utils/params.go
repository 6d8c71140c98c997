package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/shared/errors"
)

// ParseIDParam parses a positive integer id from a URL path parameter.
// entityName is used in error messages (e.g., "OLT", "customer").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID %q", entityName, raw))
	}

	return uint(id), nil
}
