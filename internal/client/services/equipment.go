package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/calcms/internal/client/client"
	"github.com/dmitrijs2005/calcms/internal/client/filter"
	"github.com/dmitrijs2005/calcms/internal/client/models"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

// Screen names a list screen.
type Screen string

const (
	ScreenOverdue  Screen = "overdue"
	ScreenSchedule Screen = "schedule"
	ScreenList     Screen = "list"
)

// View is the state of one list screen: the fetched records, the user's
// criteria and the filter stages that screen applies.
type View struct {
	Screen   Screen
	Title    string
	Base     []models.Equipment
	Criteria models.FilterCriteria
	Stages   []filter.Stage
}

// Rows returns what the screen shows: Base filtered by Criteria and sorted
// by calibration letter. Base is left untouched.
func (v *View) Rows() []models.Equipment {
	return filter.SortByCalibrationLetter(filter.Run(v.Base, v.Criteria, v.Stages...))
}

// Options are the choices of the list screen's dropdowns.
type Options struct {
	Locations  []models.Location
	Custodians []models.Custodian
}

// EquipmentService loads the equipment screens.
type EquipmentService interface {
	Summary(ctx context.Context) (models.Summary, error)
	Overdue(ctx context.Context) (*View, error)
	Schedule(ctx context.Context, period client.Period) (*View, error)
	List(ctx context.Context) (*View, error)
	// SetLocation refetches the base records of a list view for the given
	// location; an empty id goes back to the full list.
	SetLocation(ctx context.Context, v *View, locationID models.ID) error
	Detail(ctx context.Context, id models.ID) (models.EquipmentDetail, error)
	// Options loads locations and custodians concurrently. When one of the
	// loads fails the other's result is still returned alongside the error.
	Options(ctx context.Context) (Options, error)
}

type equipmentService struct {
	client client.Client
	log    logging.Logger
}

func NewEquipmentService(c client.Client, log logging.Logger) EquipmentService {
	return &equipmentService{client: c, log: log}
}

func (s *equipmentService) Summary(ctx context.Context) (models.Summary, error) {
	summary, err := s.client.Summary(ctx)
	if err != nil {
		s.log.Error(ctx, "error fetching equipment summary", "error", err)
		return models.Summary{}, fmt.Errorf("summary: %w", err)
	}
	return summary, nil
}

func (s *equipmentService) Overdue(ctx context.Context) (*View, error) {
	records, err := s.client.Overdue(ctx)
	if err != nil {
		s.log.Error(ctx, "error fetching overdue equipment", "error", err)
		return nil, fmt.Errorf("overdue: %w", err)
	}
	return &View{Screen: ScreenOverdue, Title: "Overdue", Base: records, Stages: filter.OverdueStages}, nil
}

func (s *equipmentService) Schedule(ctx context.Context, period client.Period) (*View, error) {
	records, err := client.Due(ctx, s.client, period)
	if err != nil {
		s.log.Error(ctx, "error fetching due schedule", "period", period, "error", err)
		return nil, fmt.Errorf("schedule %s: %w", period, err)
	}
	return &View{Screen: ScreenSchedule, Title: "Due this " + string(period), Base: records, Stages: filter.ScheduleStages}, nil
}

func (s *equipmentService) List(ctx context.Context) (*View, error) {
	records, err := s.client.Equipment(ctx)
	if err != nil {
		s.log.Error(ctx, "error fetching equipment list", "error", err)
		return nil, fmt.Errorf("equipment list: %w", err)
	}
	return &View{Screen: ScreenList, Title: "Equipment", Base: records, Stages: filter.ListStages}, nil
}

func (s *equipmentService) SetLocation(ctx context.Context, v *View, locationID models.ID) error {
	var (
		records []models.Equipment
		err     error
	)
	if locationID == "" {
		records, err = s.client.Equipment(ctx)
	} else {
		records, err = s.client.EquipmentByLocation(ctx, locationID)
	}
	if err != nil {
		s.log.Error(ctx, "error fetching equipment for location", "location_id", locationID, "error", err)
		return fmt.Errorf("equipment for location %q: %w", locationID, err)
	}

	v.Base = records
	v.Criteria.LocationID = locationID
	return nil
}

func (s *equipmentService) Detail(ctx context.Context, id models.ID) (models.EquipmentDetail, error) {
	detail, err := s.client.EquipmentByID(ctx, id)
	if err != nil {
		s.log.Error(ctx, "error fetching equipment detail", "equipment_id", id, "error", err)
		return models.EquipmentDetail{}, fmt.Errorf("equipment %s: %w", id, err)
	}
	return detail, nil
}

func (s *equipmentService) Options(ctx context.Context) (Options, error) {
	var (
		opts Options
		g    errgroup.Group
	)

	g.Go(func() error {
		locations, err := s.client.Locations(ctx)
		if err != nil {
			s.log.Error(ctx, "error fetching locations", "error", err)
			return fmt.Errorf("locations: %w", err)
		}
		opts.Locations = locations
		return nil
	})

	g.Go(func() error {
		custodians, err := s.client.Custodians(ctx)
		if err != nil {
			s.log.Error(ctx, "error fetching custodians", "error", err)
			return fmt.Errorf("custodians: %w", err)
		}
		opts.Custodians = custodians
		return nil
	})

	err := g.Wait()
	return opts, err
}
