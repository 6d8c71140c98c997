package dto

import (
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/shared/utils"
)

// ListQuery carries list filters shared by all node kinds. ParentID is bound
// from olt_id or odc_id by the handler for the kind being listed.
type ListQuery struct {
	utils.PageQuery
	Search string  `form:"search"`
	Status *string `form:"status" binding:"omitnil,oneof=active inactive maintenance"`
	OLTID  *uint   `form:"olt_id" binding:"omitnil,gt=0"`
	ODCID  *uint   `form:"odc_id" binding:"omitnil,gt=0"`
}

// Filter converts the query to a repository filter. parentID selects which
// foreign key filter applies.
func (q ListQuery) Filter(parentID *uint) network.Filter {
	f := network.Filter{Search: q.Search, ParentID: parentID}
	if q.Status != nil {
		status := network.Status(*q.Status)
		f.Status = &status
	}
	return f
}
