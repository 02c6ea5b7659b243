package notify

import (
	"context"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

// ToastNotifier создаёт всплывающие уведомления. Уведомления не хранятся и не ставятся в очередь:
// они возвращаются клиенту в ответе и пишутся в лог.
type ToastNotifier struct {
	logger logger.Logger
	now    func() time.Time
}

func NewToastNotifier(logger logger.Logger) *ToastNotifier {
	return &ToastNotifier{logger: logger, now: time.Now}
}

func (n *ToastNotifier) Notify(ctx context.Context, title, description string) *domain.Notification {
	notification := domain.NewNotification(title, description, n.now().UTC())
	n.logger.Infof("toast %s: %s: %s", notification.ID, title, description)

	return notification
}
