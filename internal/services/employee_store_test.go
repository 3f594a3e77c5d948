package services_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sbilibin2017/gw-employee-registry/internal/models"
	"github.com/sbilibin2017/gw-employee-registry/internal/repositories"
	"github.com/sbilibin2017/gw-employee-registry/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileBackedService(t *testing.T, opts ...services.Option) (*services.EmployeeService, *repositories.EmployeeFileRepository) {
	t.Helper()

	repo := repositories.NewEmployeeFileRepository(filepath.Join(t.TempDir(), "database", "employees.json"))
	opts = append([]services.Option{services.WithClock(fixedClock)}, opts...)
	return services.NewEmployeeService(repo, repo, nil, nil, opts...), repo
}

func TestEmployeeStore_CreateOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileBackedService(t)

	created, err := svc.Create(ctx, models.EmployeeFields{
		EmployeeName: "A",
		DateOfBirth:  "1990-01-01",
		Image:        "u",
		Email:        "a@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email)
	assert.Positive(t, created.ID)
	assert.Less(t, created.ID, 1_000_000)

	all, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Employee{created}, all)
}

func TestEmployeeStore_DuplicateEmailLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, repo := newFileBackedService(t)

	require.NoError(t, repo.Save(ctx, []models.Employee{{ID: 5, EmployeeName: "E", DateOfBirth: "1980-01-01", Image: "e", Email: "a@x.com"}}))

	_, err := svc.Create(ctx, validFields("a@x.com"))
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)

	all, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmployeeStore_UpdateThenFind(t *testing.T) {
	ctx := context.Background()
	svc, repo := newFileBackedService(t)

	require.NoError(t, repo.Save(ctx, []models.Employee{{ID: 5, EmployeeName: "A", DateOfBirth: "1990-01-01", Image: "u", Email: "a@x.com"}}))

	fields := models.EmployeeFields{EmployeeName: "B", DateOfBirth: "1985-06-15", Image: "v", Email: "b@x.com"}
	_, err := svc.Update(ctx, 5, fields)
	require.NoError(t, err)

	got, err := svc.FindByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, fields.WithID(5), got)
}

func TestEmployeeStore_UpdateMayReuseAnotherEmail(t *testing.T) {
	ctx := context.Background()
	svc, repo := newFileBackedService(t)

	require.NoError(t, repo.Save(ctx, []models.Employee{
		{ID: 4, EmployeeName: "D", DateOfBirth: "1990-01-01", Image: "d", Email: "d@x.com"},
		{ID: 5, EmployeeName: "A", DateOfBirth: "1990-01-01", Image: "u", Email: "a@x.com"},
	}))

	_, err := svc.Update(ctx, 5, validFields("d@x.com"))
	require.NoError(t, err)

	all, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, all[0].Email, all[1].Email)
}

func TestEmployeeStore_DeleteThenFind(t *testing.T) {
	ctx := context.Background()
	svc, repo := newFileBackedService(t)

	require.NoError(t, repo.Save(ctx, []models.Employee{
		{ID: 4, EmployeeName: "D", DateOfBirth: "1990-01-01", Image: "d", Email: "d@x.com"},
		{ID: 5, EmployeeName: "A", DateOfBirth: "1990-01-01", Image: "u", Email: "a@x.com"},
	}))

	remaining, err := svc.Delete(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	_, err = svc.FindByID(ctx, 5)
	assert.ErrorIs(t, err, services.ErrEmployeeNotFound)

	all, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	for _, e := range all {
		assert.NotEqual(t, 5, e.ID)
	}
}

func TestEmployeeStore_SequenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileBackedService(t, services.WithIDGenerator(sequence(10, 20, 30)))

	a, err := svc.Create(ctx, validFields("a@x.com"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, validFields("b@x.com"))
	require.NoError(t, err)
	c, err := svc.Create(ctx, validFields("c@x.com"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, b.ID, models.EmployeeFields{EmployeeName: "B1", DateOfBirth: "1990-01-01", Image: "u", Email: "b@x.com"})
	require.NoError(t, err)
	bLast, err := svc.Update(ctx, b.ID, models.EmployeeFields{EmployeeName: "B2", DateOfBirth: "1991-01-01", Image: "u2", Email: "b2@x.com"})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, a.ID)
	require.NoError(t, err)

	all, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Employee{bLast, c}, all)
}

func TestEmployeeStore_ConcurrentCreatesKeepEveryRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileBackedService(t)

	const writers = 20

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, validFields(string(rune('a'+i))+"@x.com"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	all, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, writers)

	ids := make(map[int]struct{}, len(all))
	for _, e := range all {
		ids[e.ID] = struct{}{}
	}
	assert.Len(t, ids, writers, "ids must be unique")
}
