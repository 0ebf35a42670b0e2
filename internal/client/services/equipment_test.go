package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/calcms/internal/client/client"
	"github.com/dmitrijs2005/calcms/internal/client/models"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

func records() []models.Equipment {
	return []models.Equipment{
		{ID: "1", Code: "B2", LastCalibrationType: "external", CustodianID: "10", LocationID: "100"},
		{ID: "2", Code: "A1", LastCalibrationType: "internal", CustodianID: "11", LocationID: "100"},
		{ID: "3", Code: "C3", LastCalibrationType: "master", CustodianID: "10", LocationID: "101"},
	}
}

func rowCodes(in []models.Equipment) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		out = append(out, e.Code)
	}
	return out
}

func TestEquipmentService_Overdue(t *testing.T) {
	fc := &fakeClient{Lists: map[string][]models.Equipment{"overdue": records()}}
	svc := NewEquipmentService(fc, logging.NewNop())

	v, err := svc.Overdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"B2", "A1", "C3"}, rowCodes(v.Rows()))

	// custodian is not a stage of the overdue screen
	v.Criteria.CustodianID = "10"
	v.Criteria.SearchText = "a1"
	assert.Equal(t, []string{"A1"}, rowCodes(v.Rows()))
	assert.Equal(t, records(), v.Base)
}

func TestEquipmentService_Schedule(t *testing.T) {
	fc := &fakeClient{Lists: map[string][]models.Equipment{"month": records()}}
	svc := NewEquipmentService(fc, logging.NewNop())

	v, err := svc.Schedule(context.Background(), client.PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, []string{"month"}, fc.Calls)

	v.Criteria.ToggleCalibrationType(models.CalibrationMaster)
	assert.Len(t, v.Rows(), 3, "type checkboxes are not a stage of the schedule screen")

	v.Criteria.SearchText = "c"
	assert.Equal(t, []string{"C3"}, rowCodes(v.Rows()))
}

func TestEquipmentService_ListAndLocation(t *testing.T) {
	fc := &fakeClient{
		Lists:      map[string][]models.Equipment{"equipment": records()},
		ByLocation: map[models.ID][]models.Equipment{"101": records()[2:]},
	}
	svc := NewEquipmentService(fc, logging.NewNop())
	ctx := context.Background()

	v, err := svc.List(ctx)
	require.NoError(t, err)
	v.Criteria.CustodianID = "10"
	assert.Equal(t, []string{"B2", "C3"}, rowCodes(v.Rows()))

	require.NoError(t, svc.SetLocation(ctx, v, "101"))
	assert.Equal(t, models.ID("101"), v.Criteria.LocationID)
	assert.Equal(t, []string{"C3"}, rowCodes(v.Rows()))

	require.NoError(t, svc.SetLocation(ctx, v, ""))
	assert.Len(t, v.Base, 3)
	assert.Equal(t, []string{"equipment", "location:101", "equipment"}, fc.Calls)
}

func TestEquipmentService_SetLocationFailureKeepsView(t *testing.T) {
	fc := &fakeClient{Lists: map[string][]models.Equipment{"equipment": records()}}
	svc := NewEquipmentService(fc, logging.NewNop())
	ctx := context.Background()

	v, err := svc.List(ctx)
	require.NoError(t, err)

	fc.Err = client.ErrUnavailable
	err = svc.SetLocation(ctx, v, "100")
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Len(t, v.Base, 3)
	assert.Empty(t, v.Criteria.LocationID)
}

func TestEquipmentService_ErrorsAreWrapped(t *testing.T) {
	fc := &fakeClient{Err: client.ErrMissingToken}
	svc := NewEquipmentService(fc, logging.NewNop())
	ctx := context.Background()

	_, err := svc.Summary(ctx)
	assert.ErrorIs(t, err, client.ErrMissingToken)
	_, err = svc.Overdue(ctx)
	assert.ErrorIs(t, err, client.ErrMissingToken)
	_, err = svc.Schedule(ctx, client.PeriodWeek)
	assert.ErrorIs(t, err, client.ErrMissingToken)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, client.ErrMissingToken)
	_, err = svc.Detail(ctx, "1")
	assert.ErrorIs(t, err, client.ErrMissingToken)
}

func TestEquipmentService_Detail(t *testing.T) {
	want := models.EquipmentDetail{Equipment: models.Equipment{ID: "7", Code: "X7"}, EquipmentMake: "Fluke"}
	fc := &fakeClient{DetailRet: want}
	svc := NewEquipmentService(fc, logging.NewNop())

	got, err := svc.Detail(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"detail:7"}, fc.Calls)
}

func TestEquipmentService_Options(t *testing.T) {
	locations := []models.Location{{ID: "100", Name: "Lab"}}
	custodians := []models.Custodian{{ID: "10", Name: "Ann"}}

	t.Run("both succeed", func(t *testing.T) {
		fc := &fakeClient{LocRet: locations, CustRet: custodians}
		opts, err := NewEquipmentService(fc, logging.NewNop()).Options(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Options{Locations: locations, Custodians: custodians}, opts)
	})

	t.Run("one fails", func(t *testing.T) {
		boom := errors.New("boom")
		fc := &fakeClient{LocRet: locations, CustErr: boom}
		opts, err := NewEquipmentService(fc, logging.NewNop()).Options(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, locations, opts.Locations)
		assert.Nil(t, opts.Custodians)
	})
}
