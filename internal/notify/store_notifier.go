package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
)

// StoreNotifier writes one notification row per resolved recipient.
type StoreNotifier struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

// NewStoreNotifier creates the store-backed Notifier.
func NewStoreNotifier(users repository.UserRepository, notifications repository.NotificationRepository, logger *zap.Logger) *StoreNotifier {
	return &StoreNotifier{users: users, notifications: notifications, logger: logger}
}

// Dispatch resolves each event's audience and writes the rows. Failures are
// logged and swallowed: the primary mutation has already committed.
func (n *StoreNotifier) Dispatch(ctx context.Context, events []Event) {
	for _, evt := range events {
		recipients := map[string]struct{}{}
		for _, id := range evt.Audience.UserIDs {
			recipients[id] = struct{}{}
		}

		if len(evt.Audience.Roles) > 0 {
			users, err := n.users.ListActiveByRoles(ctx, evt.Audience.Roles)
			if err != nil {
				n.logger.Warn("gagal mengambil penerima notifikasi",
					zap.String("type", evt.Type),
					zap.Error(err),
				)
				continue
			}
			for _, u := range users {
				recipients[u.UserID] = struct{}{}
			}
		}

		rows := make([]model.Notification, 0, len(recipients))
		for id := range recipients {
			rows = append(rows, model.Notification{
				UserID:  id,
				Title:   evt.Title,
				Message: evt.Message,
				Type:    evt.Type,
			})
		}

		if err := n.notifications.CreateBatch(ctx, rows); err != nil {
			n.logger.Warn("gagal menulis notifikasi",
				zap.String("type", evt.Type),
				zap.Int("recipients", len(rows)),
				zap.Error(err),
			)
		}
	}
}
