package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyabandhan/backend/models"
	"vidyabandhan/backend/store"
)

func TestSignUpThenAuthenticate(t *testing.T) {
	users := NewUsers(store.NewMemRecordStore())

	created, err := users.SignUp("Asha", "asha@example.com", "pass123", models.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.NotEqual(t, "pass123", created.Password, "password must be stored hashed")

	got, err := users.Authenticate("asha@example.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestSignUpEmailInUse(t *testing.T) {
	users := NewUsers(store.NewMemRecordStore())

	_, err := users.SignUp("Asha", "asha@example.com", "pass123", models.RoleStudent)
	require.NoError(t, err)

	_, err = users.SignUp("Other", "asha@example.com", "different", models.RoleTeacher)
	assert.ErrorIs(t, err, ErrEmailInUse)

	// the collection is left unchanged
	all, err := users.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Asha", all[0].Name)
}

func TestSignUpEmptyFields(t *testing.T) {
	users := NewUsers(store.NewMemRecordStore())

	_, err := users.SignUp("", "a@b.c", "x", models.RoleStudent)
	assert.ErrorIs(t, err, ErrEmptyField)
	_, err = users.SignUp("A", "", "x", models.RoleStudent)
	assert.ErrorIs(t, err, ErrEmptyField)
	_, err = users.SignUp("A", "a@b.c", "", models.RoleStudent)
	assert.ErrorIs(t, err, ErrEmptyField)
	_, err = users.SignUp("A", "a@b.c", "x", "admin")
	assert.ErrorIs(t, err, ErrEmptyField)

	all, err := users.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	users := NewUsers(store.NewMemRecordStore())
	_, err := users.SignUp("Asha", "asha@example.com", "pass123", models.RoleStudent)
	require.NoError(t, err)

	// wrong password and unknown email are indistinguishable
	_, err = users.Authenticate("asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = users.Authenticate("nobody@example.com", "pass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureSeed(t *testing.T) {
	rs := store.NewMemRecordStore()
	users := NewUsers(rs)

	require.NoError(t, users.EnsureSeed())

	student, err := users.Authenticate("student@test.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, student.Role)

	teacher, err := users.Authenticate("teacher@test.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, teacher.Role)

	// seeding is idempotent
	require.NoError(t, users.EnsureSeed())
	all, err := users.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFirstStudent(t *testing.T) {
	users := NewUsers(store.NewMemRecordStore())

	_, err := users.FirstStudent()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = users.SignUp("Tara", "tara@example.com", "x", models.RoleTeacher)
	require.NoError(t, err)
	created, err := users.SignUp("Sam", "sam@example.com", "x", models.RoleStudent)
	require.NoError(t, err)

	guest, err := users.FirstStudent()
	require.NoError(t, err)
	assert.Equal(t, created.ID, guest.ID)
}
