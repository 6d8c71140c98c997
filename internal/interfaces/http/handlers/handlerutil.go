package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/shared/query"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

// deleted acknowledges a delete with "<Resource> deleted successfully".
func deleted(c *gin.Context, resource string) {
	utils.MessageOK(c, resource+" deleted successfully")
}

// bindPage binds skip/limit for endpoints that take no other filters.
func bindPage(c *gin.Context) (query.Page, error) {
	var q utils.PageQuery
	if err := utils.BindQuery(c, &q); err != nil {
		return query.Page{}, err
	}
	return q.ToPage(), nil
}
