package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/calcms/internal/client/client"
	"github.com/dmitrijs2005/calcms/internal/client/models"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	mu sync.Mutex

	TokenRet string
	TokenErr error

	LastUser     string
	LastPassword string

	SummaryRet models.Summary
	Lists      map[string][]models.Equipment
	ByLocation map[models.ID][]models.Equipment
	DetailRet  models.EquipmentDetail
	LocRet     []models.Location
	CustRet    []models.Custodian

	Err     error
	LocErr  error
	CustErr error
	Calls   []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.Calls = append(f.Calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) RequestToken(_ context.Context, username string, password []byte) (string, error) {
	f.record("token")
	f.LastUser = username
	f.LastPassword = string(password)
	return f.TokenRet, f.TokenErr
}

func (f *fakeClient) Summary(context.Context) (models.Summary, error) {
	f.record("summary")
	return f.SummaryRet, f.Err
}

func (f *fakeClient) list(name string) ([]models.Equipment, error) {
	f.record(name)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Lists[name], nil
}

func (f *fakeClient) Overdue(context.Context) ([]models.Equipment, error)  { return f.list("overdue") }
func (f *fakeClient) WeekDue(context.Context) ([]models.Equipment, error)  { return f.list("week") }
func (f *fakeClient) MonthDue(context.Context) ([]models.Equipment, error) { return f.list("month") }
func (f *fakeClient) YearDue(context.Context) ([]models.Equipment, error)  { return f.list("year") }
func (f *fakeClient) Equipment(context.Context) ([]models.Equipment, error) {
	return f.list("equipment")
}

func (f *fakeClient) EquipmentByLocation(_ context.Context, id models.ID) ([]models.Equipment, error) {
	f.record("location:" + id.String())
	if f.Err != nil {
		return nil, f.Err
	}
	return f.ByLocation[id], nil
}

func (f *fakeClient) EquipmentByID(_ context.Context, id models.ID) (models.EquipmentDetail, error) {
	f.record("detail:" + id.String())
	return f.DetailRet, f.Err
}

func (f *fakeClient) Locations(context.Context) ([]models.Location, error) {
	f.record("locations")
	return f.LocRet, f.LocErr
}

func (f *fakeClient) Custodians(context.Context) ([]models.Custodian, error) {
	f.record("custodians")
	return f.CustRet, f.CustErr
}

type memTokens struct {
	token   string
	stores  int
	cleared bool
}

func (m *memTokens) Store(_ context.Context, token string) { m.token = token; m.stores++ }
func (m *memTokens) Get(context.Context) string            { return m.token }
func (m *memTokens) Clear(context.Context)                 { m.token = ""; m.cleared = true }

type fakeNav struct {
	events []string
}

func (n *fakeNav) ShowAuthenticated(context.Context)   { n.events = append(n.events, "authenticated") }
func (n *fakeNav) ShowUnauthenticated(context.Context) { n.events = append(n.events, "unauthenticated") }

type fakeNotifier struct {
	msgs []string
}

func (n *fakeNotifier) Notify(_ context.Context, msg string) { n.msgs = append(n.msgs, msg) }

type confirmFunc func(ctx context.Context, question, proceed, cancel string) bool

func (f confirmFunc) Confirm(ctx context.Context, question, proceed, cancel string) bool {
	return f(ctx, question, proceed, cancel)
}
