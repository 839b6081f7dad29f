package models

import "github.com/shopspring/decimal"

// AdminDashboardStats — сводные показатели для дашборда админки
type AdminDashboardStats struct {
	ActiveProducts        int             `json:"activeProducts"`
	ActivePaymentMethods  int             `json:"activePaymentMethods"`
	ActiveDeliveryOptions int             `json:"activeDeliveryOptions"`
	TodayRevenue          decimal.Decimal `json:"todayRevenue"`
	PendingOrders         int             `json:"pendingOrders"`
}
