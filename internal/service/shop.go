package service

import "go.uber.org/zap"

// Shop wires the managers together the way a caller normally would.
type Shop struct {
	Users         *UserManager
	Products      *ProductManager
	Orders        *OrderProcessor
	Reports       *ReportGenerator
	Notifications *NotificationService
}

func NewShop(logger *zap.Logger) *Shop {
	users := NewUserManager()
	products := NewProductManager()
	orders := NewOrderProcessor(users, products, logger)

	return &Shop{
		Users:         users,
		Products:      products,
		Orders:        orders,
		Reports:       NewReportGenerator(users, products, orders),
		Notifications: NewNotificationService(logger),
	}
}
