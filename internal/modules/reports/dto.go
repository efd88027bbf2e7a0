package reports

import (
	"github.com/shopspring/decimal"

	"kitchenadmin/internal/domain"
)

// DashboardStats backs the dashboard page: headline numbers plus the most
// recent bookings, all assembled from plain /bookings/ and revenue calls.
type DashboardStats struct {
	TodayBookings  int              `json:"today_bookings"`
	TotalRevenue   decimal.Decimal  `json:"total_revenue"`
	MonthlyGrowth  decimal.Decimal  `json:"monthly_growth"`
	TotalCustomers int              `json:"total_customers"`
	RecentBookings []domain.Booking `json:"recent_bookings"`
}

// RevenueReport is the reports page's revenue block.
type RevenueReport struct {
	Month        int             `json:"month,omitempty"`
	Year         int             `json:"year,omitempty"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// BankFeesReport groups transaction fees by bank.
type BankFeesReport struct {
	FeesByBank []domain.BankFee `json:"fees_by_bank"`
}
