package ledgerservice

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=ledgerservice

import (
	"context"

	"github.com/GlebRadaev/bonusledger/internal/domain"
)

// Notifier receives an event after each committed mutation. Delivery is
// fire-and-forget and cannot fail the operation.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}
