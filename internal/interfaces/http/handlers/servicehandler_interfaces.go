package handlers

import (
	"context"

	packagedto "github.com/fiberdesk/fiberdesk/internal/application/packages/dto"
	paymentdto "github.com/fiberdesk/fiberdesk/internal/application/payment/dto"
	subdto "github.com/fiberdesk/fiberdesk/internal/application/subscription/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/packages"
	"github.com/fiberdesk/fiberdesk/internal/domain/payment"
	"github.com/fiberdesk/fiberdesk/internal/domain/subscription"
	"github.com/fiberdesk/fiberdesk/internal/shared/query"
)

type packageService interface {
	List(ctx context.Context, filter packages.Filter, page query.Page) ([]*packagedto.PackageResponse, error)
	Get(ctx context.Context, id uint) (*packagedto.PackageResponse, error)
	Create(ctx context.Context, req packagedto.CreatePackageRequest) (*packagedto.PackageResponse, error)
	Update(ctx context.Context, id uint, req packagedto.UpdatePackageRequest) (*packagedto.PackageResponse, error)
	Delete(ctx context.Context, id uint) error
}

type subscriptionService interface {
	List(ctx context.Context, filter subscription.Filter, page query.Page) ([]*subdto.SubscriptionResponse, error)
	Get(ctx context.Context, id uint) (*subdto.SubscriptionResponse, error)
	ListActive(ctx context.Context) ([]*subdto.SubscriptionResponse, error)
	ListExpiring(ctx context.Context, days int) ([]*subdto.SubscriptionResponse, error)
	Create(ctx context.Context, req subdto.CreateSubscriptionRequest) (*subdto.SubscriptionResponse, error)
	Update(ctx context.Context, id uint, req subdto.UpdateSubscriptionRequest) (*subdto.SubscriptionResponse, error)
	Delete(ctx context.Context, id uint) error
}

type paymentService interface {
	List(ctx context.Context, filter payment.Filter, page query.Page) ([]*paymentdto.PaymentResponse, error)
	Get(ctx context.Context, id uint) (*paymentdto.PaymentResponse, error)
	Create(ctx context.Context, req paymentdto.CreatePaymentRequest) (*paymentdto.PaymentResponse, error)
	Update(ctx context.Context, id uint, req paymentdto.UpdatePaymentRequest) (*paymentdto.PaymentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type billingService interface {
	Overdue(ctx context.Context) ([]*paymentdto.PaymentResponse, error)
	Summary(ctx context.Context, q paymentdto.SummaryQuery) (*paymentdto.SummaryResponse, error)
	Pay(ctx context.Context, id uint, req paymentdto.PayRequest) (*paymentdto.PaymentResponse, error)
	Generate(ctx context.Context, req paymentdto.GenerateRequest) (*paymentdto.GenerateResponse, error)
	MarkOverdue(ctx context.Context) (*paymentdto.MarkOverdueResponse, error)
}
