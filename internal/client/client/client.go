package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/calcms/internal/client/models"
)

// Client is the calibration service API, one method per remote resource.
type Client interface {
	// RequestToken exchanges a username and password for a bearer token.
	RequestToken(ctx context.Context, username string, password []byte) (string, error)

	Summary(ctx context.Context) (models.Summary, error)
	Overdue(ctx context.Context) ([]models.Equipment, error)
	WeekDue(ctx context.Context) ([]models.Equipment, error)
	MonthDue(ctx context.Context) ([]models.Equipment, error)
	YearDue(ctx context.Context) ([]models.Equipment, error)
	Equipment(ctx context.Context) ([]models.Equipment, error)
	EquipmentByLocation(ctx context.Context, locationID models.ID) ([]models.Equipment, error)
	EquipmentByID(ctx context.Context, id models.ID) (models.EquipmentDetail, error)
	Locations(ctx context.Context) ([]models.Location, error)
	Custodians(ctx context.Context) ([]models.Custodian, error)
}

// TokenSource yields the current bearer token, "" when there is none.
// *tokenstore.Store implements it.
type TokenSource interface {
	Get(ctx context.Context) string
}

// Period selects one of the due-schedule lists.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Due dispatches to the due-list method of c matching p.
func Due(ctx context.Context, c Client, p Period) ([]models.Equipment, error) {
	switch p {
	case PeriodWeek:
		return c.WeekDue(ctx)
	case PeriodMonth:
		return c.MonthDue(ctx)
	case PeriodYear:
		return c.YearDue(ctx)
	default:
		return nil, fmt.Errorf("unknown period %q", p)
	}
}
