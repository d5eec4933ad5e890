package port

import (
	"context"

	"github.com/rafaelleal24/products-api/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// EventRecorder stores a domain event for later delivery. Record joins the
// transaction carried by ctx, if any.
type EventRecorder interface {
	Record(ctx context.Context, event domain.Event) error
}
