package service

import (
	"time"

	"go.uber.org/zap"

	"fsanano/go-shop/internal/logging"
	"fsanano/go-shop/internal/model"
)

// MaxNotifications bounds the log. Once it is full, the next send clears it
// completely before appending.
const MaxNotifications = 100

// NotificationService keeps the log of sent notifications. It is not safe
// for concurrent use.
type NotificationService struct {
	logger        *zap.Logger
	now           func() time.Time
	notifications []model.Notification
}

func NewNotificationService(logger *zap.Logger) *NotificationService {
	return &NotificationService{
		logger: logging.OrNop(logger),
		now:    time.Now,
	}
}

func (s *NotificationService) SendNotification(userID int, message string) {
	if len(s.notifications) >= MaxNotifications {
		s.logger.Info("notification log full, resetting", zap.Int("dropped", len(s.notifications)))
		s.notifications = nil
	}
	s.notifications = append(s.notifications, model.Notification{
		UserID:  userID,
		Message: message,
		Sent:    s.now(),
	})
}

func (s *NotificationService) Count() int {
	return len(s.notifications)
}

func (s *NotificationService) Notifications() []model.Notification {
	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}
