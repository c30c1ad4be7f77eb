// Package auth owns the employee collection and the current session:
// login/logout, role checks, and employee administration.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tokopos/models"
	"tokopos/storedb"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	ErrInvalidInput       = errors.New("auth: missing or invalid fields")
	ErrUsernameTaken      = errors.New("auth: username already in use")
	ErrSelfDeactivate     = errors.New("auth: cannot deactivate your own account")
	ErrNotFound           = errors.New("auth: employee not found")
)

// Bootstrap credential seeded into an empty store so the first login is
// possible. Meant to be replaced through the employee screens.
const (
	bootstrapUsername = "owner"
	bootstrapPassword = "owner123"
)

type Service struct {
	mu    sync.Mutex
	store storedb.Store
}

func NewService(store storedb.Store) *Service {
	return &Service{store: store}
}

// Seed inserts the bootstrap owner account when no employee collection
// exists yet.
func (s *Service) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var employees []models.Employee
	err := s.store.Get(storedb.Employees, &employees)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storedb.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := models.Employee{
		ID:        "owner1",
		Username:  bootstrapUsername,
		Password:  string(hash),
		Name:      "John Doe",
		Role:      models.RoleOwner,
		Active:    true,
		CreatedAt: time.Now(),
	}
	return s.store.Put(storedb.Employees, []models.Employee{owner})
}

func (s *Service) employees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.store.Get(storedb.Employees, &employees); err != nil {
		if errors.Is(err, storedb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return employees, nil
}

// Employees lists every employee with credentials blanked.
func (s *Service) Employees() ([]models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.employees()
	if err != nil {
		return nil, err
	}
	out := make([]models.Employee, len(employees))
	for i, e := range employees {
		out[i] = e.Sanitized()
	}
	return out, nil
}

// Login authenticates an active employee and persists the session snapshot.
func (s *Service) Login(username, password string) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.employees()
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if e.Username != username || !e.Active {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)) != nil {
			break
		}
		if err := s.store.Put(storedb.CurrentSession, e); err != nil {
			return nil, err
		}
		emp := e
		return &emp, nil
	}
	return nil, ErrInvalidCredentials
}

// Logout discards the session snapshot.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(storedb.CurrentSession)
}

// CurrentSession returns the authenticated employee, or nil when logged
// out.
func (s *Service) CurrentSession() (*models.Employee, error) {
	var e models.Employee
	if err := s.store.Get(storedb.CurrentSession, &e); err != nil {
		if errors.Is(err, storedb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// HasPermission reports whether the active session's role is one of
// allowed. No session means no permission.
func (s *Service) HasPermission(allowed ...models.Role) (bool, error) {
	e, err := s.CurrentSession()
	if err != nil || e == nil {
		return false, err
	}
	for _, r := range allowed {
		if e.Role == r {
			return true, nil
		}
	}
	return false, nil
}

// EmployeeInput carries the editable employee fields. An empty password on
// update keeps the stored hash.
type EmployeeInput struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
}

// nextEmployeeID continues the EMP counter from the highest id on record.
func nextEmployeeID(employees []models.Employee) string {
	last := 0
	for _, e := range employees {
		numStr, ok := strings.CutPrefix(e.ID, "EMP")
		if !ok {
			continue
		}
		if num, err := strconv.Atoi(numStr); err == nil && num > last {
			last = num
		}
	}
	return fmt.Sprintf("EMP%03d", last+1)
}

// CreateEmployee registers a new active employee with a fresh EMP id and a
// hashed credential.
func (s *Service) CreateEmployee(in EmployeeInput) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Username == "" || in.Password == "" || in.Name == "" || !in.Role.Valid() {
		return nil, ErrInvalidInput
	}

	employees, err := s.employees()
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if e.Username == in.Username {
			return nil, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	emp := models.Employee{
		ID:        nextEmployeeID(employees),
		Username:  in.Username,
		Password:  string(hash),
		Name:      in.Name,
		Role:      in.Role,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.store.Put(storedb.Employees, append(employees, emp)); err != nil {
		return nil, err
	}

	out := emp.Sanitized()
	return &out, nil
}

// UpdateEmployee edits username, name, role, and optionally the password.
func (s *Service) UpdateEmployee(id string, in EmployeeInput) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Username == "" || in.Name == "" || !in.Role.Valid() {
		return nil, ErrInvalidInput
	}

	employees, err := s.employees()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, e := range employees {
		if e.ID == id {
			idx = i
		} else if e.Username == in.Username {
			return nil, ErrUsernameTaken
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	employees[idx].Username = in.Username
	employees[idx].Name = in.Name
	employees[idx].Role = in.Role
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employees[idx].Password = string(hash)
	}

	if err := s.store.Put(storedb.Employees, employees); err != nil {
		return nil, err
	}
	out := employees[idx].Sanitized()
	return &out, nil
}

// ToggleActive flips an employee's active flag. An employee can never
// toggle their own record, so the authenticated session cannot lock
// itself out.
func (s *Service) ToggleActive(id string, actor *models.Employee) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if actor != nil && actor.ID == id {
		return nil, ErrSelfDeactivate
	}

	employees, err := s.employees()
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].ID != id {
			continue
		}
		employees[i].Active = !employees[i].Active
		if err := s.store.Put(storedb.Employees, employees); err != nil {
			return nil, err
		}
		out := employees[i].Sanitized()
		return &out, nil
	}
	return nil, ErrNotFound
}
