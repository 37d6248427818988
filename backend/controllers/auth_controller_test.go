package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.App.Test(jsonReq("POST", "/api/auth/register", "", fiber.Map{
		"name":     "New Teacher",
		"email":    "new@test.com",
		"password": "pw",
		"role":     "teacher",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "/teacher", body["redirect"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "new@test.com", user["email"])
	assert.Equal(t, "teacher", user["role"])
	_, leaked := user["password"]
	assert.False(t, leaked, "password hash must not appear in responses")

	resp, err = env.App.Test(jsonReq("POST", "/api/auth/login", "", fiber.Map{
		"email":    "new@test.com",
		"password": "pw",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.App.Test(jsonReq("POST", "/api/auth/register", "", fiber.Map{
		"name":     "Impostor",
		"email":    "student@test.com",
		"password": "pw",
		"role":     "student",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email in use", decodeMap(t, resp)["message"])
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.App.Test(jsonReq("POST", "/api/auth/register", "", fiber.Map{
		"name":  "No Password",
		"email": "np@test.com",
		"role":  "student",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Fill all fields", decodeMap(t, resp)["message"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.App.Test(jsonReq("POST", "/api/auth/login", "", fiber.Map{
		"email":    "student@test.com",
		"password": "wrong",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	// the demo hint names both seeded accounts
	assert.Contains(t, decodeMap(t, resp)["message"], "student@test.com")
}

func TestGuestLogin(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.App.Test(jsonReq("POST", "/api/auth/guest", "", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "/student", body["redirect"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "student", user["role"])
}

func TestSessionRequiresToken(t *testing.T) {
	env := newTestApp(t)

	resp, err := env.App.Test(jsonReq("GET", "/api/session", "", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/", decodeMap(t, resp)["redirect"])
}

func TestSessionReflectsHandoff(t *testing.T) {
	env := newTestApp(t)
	teacherToken := login(t, env, "teacher@test.com")

	resp, err := env.App.Test(jsonReq("GET", "/api/session", teacherToken, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeMap(t, resp)["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "teacher@test.com", user["email"])
	_, hasCourse := data["course"]
	assert.False(t, hasCourse, "no course before one is opened")

	courseID := createCourse(t, env, teacherToken, "Algebra I", "Intro")
	studentToken := login(t, env, "student@test.com")
	joinAndOpen(t, env, studentToken, courseID)

	resp, err = env.App.Test(jsonReq("GET", "/api/session", studentToken, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data = decodeMap(t, resp)["data"].(map[string]interface{})
	course := data["course"].(map[string]interface{})
	assert.Equal(t, "Algebra I", course["title"])
}
