package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
)

//go:generate mockgen -source=employee.go -destination=mock_employee.go -package=services

// Error variables
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrInvalidEmployee  = errors.New("invalid employee")
	ErrStorage          = errors.New("employee storage failure")
	ErrIDSpaceExhausted = errors.New("no free employee id")
)

const (
	// maxEmployeeID is the exclusive upper bound of generated identifiers.
	maxEmployeeID = 1_000_000
	// maxIDAttempts bounds the retries when a generated id is already taken.
	maxIDAttempts = 64
)

// EmployeeDocumentReader loads the whole employee collection.
type EmployeeDocumentReader interface {
	Load(ctx context.Context) ([]models.Employee, error)
}

// EmployeeDocumentWriter replaces the whole employee collection.
type EmployeeDocumentWriter interface {
	Save(ctx context.Context, employees []models.Employee) error
}

// WriteLocker serializes read-modify-write cycles between processes.
type WriteLocker interface {
	Lock(ctx context.Context) (func(context.Context) error, error)
}

// EventPublisher announces committed employee changes.
type EventPublisher interface {
	Publish(ctx context.Context, event models.EmployeeEvent) error
}

// IDGenerator returns a candidate employee identifier.
type IDGenerator func() int

// EmployeeService is the record store for employees.
// Every mutation reloads the collection, changes it in memory and saves it back
// while holding the write lock.
type EmployeeService struct {
	reader    EmployeeDocumentReader
	writer    EmployeeDocumentWriter
	locker    WriteLocker    // optional
	publisher EventPublisher // optional

	mu       sync.Mutex
	nextID   IDGenerator
	now      func() time.Time
	validate *validator.Validate
}

// Option customizes an EmployeeService.
type Option func(*EmployeeService)

// WithIDGenerator replaces the random identifier source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *EmployeeService) { s.nextID = gen }
}

// WithClock replaces time.Now, used for birth date checks and event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *EmployeeService) { s.now = now }
}

// NewEmployeeService creates a new EmployeeService.
// locker and publisher may be nil.
func NewEmployeeService(
	reader EmployeeDocumentReader,
	writer EmployeeDocumentWriter,
	locker WriteLocker,
	publisher EventPublisher,
	opts ...Option,
) *EmployeeService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	svc := &EmployeeService{
		reader:    reader,
		writer:    writer,
		locker:    locker,
		publisher: publisher,
		nextID:    randomID,
		now:       time.Now,
		validate:  validate,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// LoadAll returns every employee in document order.
func (s *EmployeeService) LoadAll(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByID returns the first employee with the given id.
func (s *EmployeeService) FindByID(ctx context.Context, id int) (models.Employee, error) {
	employees, err := s.load(ctx)
	if err != nil {
		return models.Employee{}, err
	}

	idx := indexOf(employees, id)
	if idx < 0 {
		return models.Employee{}, ErrEmployeeNotFound
	}
	return employees[idx], nil
}

// Create stores a new employee under a freshly generated id.
// The email must not belong to any stored employee.
func (s *EmployeeService) Create(ctx context.Context, fields models.EmployeeFields) (models.Employee, error) {
	fields, err := s.validateFields(fields)
	if err != nil {
		return models.Employee{}, err
	}

	var created models.Employee
	err = s.mutate(ctx, func(employees []models.Employee) ([]models.Employee, error) {
		for _, e := range employees {
			if e.Email == fields.Email {
				logger.Log.Warnw("employee email already exists", "email", fields.Email)
				return nil, ErrDuplicateEmail
			}
		}

		id, err := s.generateID(employees)
		if err != nil {
			return nil, err
		}

		created = fields.WithID(id)
		return append(employees, created), nil
	})
	if err != nil {
		return models.Employee{}, err
	}

	logger.Log.Infow("employee created", "id", created.ID, "email", created.Email)
	s.publish(ctx, models.EmployeeCreated, created)
	return created, nil
}

// Update replaces every field except the id of an existing employee.
// The email is not checked against other employees.
func (s *EmployeeService) Update(ctx context.Context, id int, fields models.EmployeeFields) (models.Employee, error) {
	fields, err := s.validateFields(fields)
	if err != nil {
		return models.Employee{}, err
	}

	updated := fields.WithID(id)
	err = s.mutate(ctx, func(employees []models.Employee) ([]models.Employee, error) {
		idx := indexOf(employees, id)
		if idx < 0 {
			return nil, ErrEmployeeNotFound
		}
		employees[idx] = updated
		return employees, nil
	})
	if err != nil {
		return models.Employee{}, err
	}

	logger.Log.Infow("employee updated", "id", id)
	s.publish(ctx, models.EmployeeUpdated, updated)
	return updated, nil
}

// Delete removes the employee with the given id and returns the remaining collection.
func (s *EmployeeService) Delete(ctx context.Context, id int) ([]models.Employee, error) {
	var (
		removed   models.Employee
		remaining []models.Employee
	)
	err := s.mutate(ctx, func(employees []models.Employee) ([]models.Employee, error) {
		idx := indexOf(employees, id)
		if idx < 0 {
			return nil, ErrEmployeeNotFound
		}
		removed = employees[idx]
		remaining = append(employees[:idx:idx], employees[idx+1:]...)
		return remaining, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("employee deleted", "id", id, "remaining", len(remaining))
	s.publish(ctx, models.EmployeeDeleted, removed)
	return remaining, nil
}

func (s *EmployeeService) load(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.reader.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load employees", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

// mutate runs one read-modify-write cycle under the write lock.
// Nothing is saved when change returns an error.
func (s *EmployeeService) mutate(ctx context.Context, change func([]models.Employee) ([]models.Employee, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx)
		if err != nil {
			logger.Log.Errorw("failed to acquire write lock", "error", err)
			return fmt.Errorf("%w: acquire write lock: %w", ErrStorage, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logger.Log.Warnw("failed to release write lock", "error", err)
			}
		}()
	}

	employees, err := s.load(ctx)
	if err != nil {
		return err
	}

	employees, err = change(employees)
	if err != nil {
		return err
	}

	if err := s.writer.Save(ctx, employees); err != nil {
		logger.Log.Errorw("failed to save employees", "error", err)
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// validateFields trims the fields and checks presence and the birth date.
func (s *EmployeeService) validateFields(fields models.EmployeeFields) (models.EmployeeFields, error) {
	fields.EmployeeName = strings.TrimSpace(fields.EmployeeName)
	fields.DateOfBirth = strings.TrimSpace(fields.DateOfBirth)
	fields.Image = strings.TrimSpace(fields.Image)
	fields.Email = strings.TrimSpace(fields.Email)

	if err := s.validate.Struct(fields); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fields, fmt.Errorf("%w: %s is required", ErrInvalidEmployee, verrs[0].Field())
		}
		return fields, fmt.Errorf("%w: %w", ErrInvalidEmployee, err)
	}

	birth, err := time.Parse(time.DateOnly, fields.DateOfBirth)
	if err != nil {
		return fields, fmt.Errorf("%w: dateOfBirth must be a YYYY-MM-DD date", ErrInvalidEmployee)
	}

	y, m, d := s.now().Date()
	if birth.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return fields, fmt.Errorf("%w: dateOfBirth is in the future", ErrInvalidEmployee)
	}

	return fields, nil
}

// generateID draws ids until one is not used by any employee.
func (s *EmployeeService) generateID(employees []models.Employee) (int, error) {
	used := make(map[int]struct{}, len(employees))
	for _, e := range employees {
		used[e.ID] = struct{}{}
	}

	for i := 0; i < maxIDAttempts; i++ {
		id := s.nextID()
		if _, taken := used[id]; !taken {
			return id, nil
		}
		logger.Log.Debugw("generated employee id already taken", "id", id)
	}

	logger.Log.Errorw("failed to generate employee id", "attempts", maxIDAttempts)
	return 0, ErrIDSpaceExhausted
}

// publish sends a change event. Failures are logged and never undo the change.
func (s *EmployeeService) publish(ctx context.Context, operation string, employee models.Employee) {
	if s.publisher == nil {
		return
	}

	event := models.EmployeeEvent{
		EventID:    uuid.NewString(),
		Timestamp:  s.now().Unix(),
		Operation:  operation,
		EmployeeID: employee.ID,
		Employee:   employee,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish employee event", "event_id", event.EventID, "operation", operation, "error", err)
	}
}

func indexOf(employees []models.Employee, id int) int {
	for i, e := range employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func randomID() int {
	return rand.Intn(maxEmployeeID-1) + 1
}
