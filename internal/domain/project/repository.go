package project

import "context"

// Repository persists projects. Lookups return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	// GetByIDForUpdate locks the row for the duration of the surrounding
	// transaction; used by the invest flow's read-check-write.
	GetByIDForUpdate(ctx context.Context, id uint) (*Project, error)
	List(ctx context.Context, category string, page, pageSize int) ([]*Project, int64, error)
}

// InvestmentRepository persists investments, ratings and watchlist items.
type InvestmentRepository interface {
	CreateInvestment(ctx context.Context, inv *Investment) error
	ListInvestmentsByAccount(ctx context.Context, accountID uint, page, pageSize int) ([]*Investment, int64, error)

	GetRating(ctx context.Context, projectID, accountID uint) (*Rating, error)
	SaveRating(ctx context.Context, r *Rating) error
	AverageRating(ctx context.Context, projectID uint) (float64, int64, error)

	GetWatchlistItem(ctx context.Context, projectID, accountID uint) (*WatchlistItem, error)
	AddWatchlistItem(ctx context.Context, item *WatchlistItem) error
	RemoveWatchlistItem(ctx context.Context, projectID, accountID uint) error
	ListWatchlist(ctx context.Context, accountID uint, page, pageSize int) ([]*WatchlistItem, int64, error)
}
