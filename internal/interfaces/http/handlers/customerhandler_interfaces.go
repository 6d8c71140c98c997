package handlers

import (
	"context"
	"io"

	customerdto "github.com/fiberdesk/fiberdesk/internal/application/customer/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type customerService interface {
	List(ctx context.Context, filter customer.Filter, page query.Page) ([]*customerdto.CustomerResponse, error)
	Get(ctx context.Context, id uint) (*customerdto.CustomerResponse, error)
	GetByCustomerID(ctx context.Context, code string) (*customerdto.CustomerResponse, error)
	Create(ctx context.Context, req customerdto.CreateCustomerRequest) (*customerdto.CustomerResponse, error)
	Update(ctx context.Context, id uint, req customerdto.UpdateCustomerRequest) (*customerdto.CustomerResponse, error)
	Delete(ctx context.Context, id uint) error
	StatusSummary(ctx context.Context) (map[string]int64, error)
	ActiveCount(ctx context.Context) (*customerdto.CountResponse, error)
	ListByPackage(ctx context.Context, packageID uint, page query.Page) ([]*customerdto.CustomerResponse, error)
	ListByODP(ctx context.Context, odpID uint, page query.Page) ([]*customerdto.CustomerResponse, error)
	Export(ctx context.Context, filter customer.Filter, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (*customerdto.ImportResponse, error)
}
