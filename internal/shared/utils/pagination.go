package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

// PageQuery holds skip/limit list parameters as they arrive on the query string.
type PageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=1,max=1000"`
}

// ToPage converts the bound parameters into a query.Page.
func (p PageQuery) ToPage() query.Page {
	return query.Page{Skip: p.Skip, Limit: p.Limit}
}

// BindQuery binds and validates query-string parameters into target.
func BindQuery(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindQuery(target); err != nil {
		return TranslateBindError(err)
	}
	return nil
}

// BindJSON binds and validates a JSON body into target.
func BindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return TranslateBindError(err)
	}
	return nil
}
