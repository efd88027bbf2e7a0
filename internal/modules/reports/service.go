package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"kitchenadmin/internal/domain"
)

const recentBookingsLimit = 5

var hundred = decimal.NewFromInt(100)

type Service struct {
	api ReportsAPI
}

func NewService(api ReportsAPI) *Service {
	return &Service{api: api}
}

// Revenue fetches the revenue report. Month and year are optional; zero
// means unfiltered, matching the reports form's blank inputs.
func (s *Service) Revenue(ctx context.Context, token string, month, year int) (*RevenueReport, error) {
	if month < 0 || month > 12 || year < 0 {
		return nil, ErrValidation
	}

	total, err := s.api.Revenue(ctx, token, month, year)
	if err != nil {
		return nil, err
	}
	return &RevenueReport{Month: month, Year: year, TotalRevenue: total}, nil
}

func (s *Service) BankFees(ctx context.Context, token string) (*BankFeesReport, error) {
	fees, err := s.api.BankFees(ctx, token)
	if err != nil {
		return nil, err
	}
	return &BankFeesReport{FeesByBank: fees}, nil
}

// Dashboard assembles the landing page's numbers: bookings delivering
// today, this month's revenue, growth against last month and the distinct
// client count, plus the latest bookings.
func (s *Service) Dashboard(ctx context.Context, token string, now time.Time) (*DashboardStats, error) {
	bookings, err := s.api.ListBookings(ctx, token)
	if err != nil {
		return nil, err
	}

	thisMonth, err := s.api.Revenue(ctx, token, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}

	prevMonth, prevYear := previousMonth(now)
	lastMonth, err := s.api.Revenue(ctx, token, prevMonth, prevYear)
	if err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	todayCount := 0
	customers := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.DeliveryDate == today {
			todayCount++
		}
		customers[b.ClientName] = struct{}{}
	}

	return &DashboardStats{
		TodayBookings:  todayCount,
		TotalRevenue:   thisMonth,
		MonthlyGrowth:  growthPercent(thisMonth, lastMonth),
		TotalCustomers: len(customers),
		RecentBookings: recentBookings(bookings),
	}, nil
}

func previousMonth(now time.Time) (month, year int) {
	if now.Month() == time.January {
		return int(time.December), now.Year() - 1
	}
	return int(now.Month()) - 1, now.Year()
}

// growthPercent is ((current - last) / last) * 100, rounded to two
// decimals. With no revenue last month there is no meaningful baseline,
// so growth reads zero rather than infinite.
func growthPercent(current, last decimal.Decimal) decimal.Decimal {
	if last.IsZero() {
		return decimal.Zero
	}
	return current.Sub(last).Div(last).Mul(hundred).Round(2)
}

func recentBookings(bookings []domain.Booking) []domain.Booking {
	recent := make([]domain.Booking, len(bookings))
	copy(recent, bookings)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].ID > recent[j].ID })
	if len(recent) > recentBookingsLimit {
		recent = recent[:recentBookingsLimit]
	}
	return recent
}
