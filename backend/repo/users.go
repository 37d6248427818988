package repo

import (
	"encoding/json"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vidyabandhan/backend/models"
	"vidyabandhan/backend/store"
)

// Users implements the user side of the domain model over the record store.
// The whole "users" collection is read, modified in memory and written back
// on every mutation; there is no partial-update primitive.
type Users struct {
	RS store.RecordStore
}

func NewUsers(rs store.RecordStore) *Users {
	return &Users{RS: rs}
}

func (r *Users) All() ([]models.User, error) {
	raw, err := r.RS.Get(store.KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.User{}, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Users) save(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.RS.Set(store.KeyUsers, raw)
}

func (r *Users) ByID(id string) (models.User, error) {
	users, err := r.All()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Authenticate does not tell the caller whether the email or the password
// was wrong.
func (r *Users) Authenticate(email, password string) (models.User, error) {
	users, err := r.All()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			break
		}
		return u, nil
	}
	return models.User{}, ErrInvalidCredentials
}

func (r *Users) SignUp(name, email, password, role string) (models.User, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrEmptyField
	}
	if role != models.RoleStudent && role != models.RoleTeacher {
		return models.User{}, ErrEmptyField
	}

	users, err := r.All()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return models.User{}, ErrEmailInUse
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CourseIDs: []string{},
	}
	users = append(users, user)
	if err := r.save(users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FirstStudent backs guest login: it picks the first stored user with the
// student role.
func (r *Users) FirstStudent() (models.User, error) {
	users, err := r.All()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Role == models.RoleStudent {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// AppendCourse links a course to a user and returns the refreshed user.
// Joining the same course twice is a no-op: the original appended
// unconditionally, dedup is enforced here on purpose.
func (r *Users) AppendCourse(userID, courseID string) (models.User, error) {
	users, err := r.All()
	if err != nil {
		return models.User{}, err
	}
	for i, u := range users {
		if u.ID != userID {
			continue
		}
		if !u.HasCourse(courseID) {
			users[i].CourseIDs = append(users[i].CourseIDs, courseID)
		}
		if err := r.save(users); err != nil {
			return models.User{}, err
		}
		return users[i], nil
	}
	return models.User{}, ErrNotFound
}

// EnsureSeed creates the two demo accounts on a fresh store, matching the
// original first-run data (password "1234" for both).
func (r *Users) EnsureSeed() error {
	raw, err := r.RS.Get(store.KeyUsers)
	if err != nil {
		return err
	}
	if raw != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users := []models.User{
		{ID: uuid.NewString(), Name: "Demo Student", Email: "student@test.com", Password: string(hash), Role: models.RoleStudent, CourseIDs: []string{}},
		{ID: uuid.NewString(), Name: "Demo Teacher", Email: "teacher@test.com", Password: string(hash), Role: models.RoleTeacher, CourseIDs: []string{}},
	}
	return r.save(users)
}
