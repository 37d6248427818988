package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/routes"
	"vidyabandhan/backend/speech"
	"vidyabandhan/backend/store"
)

// testEnv wires the full route table against in-memory stores, seeded with
// the two demo accounts.
type testEnv struct {
	App   *fiber.App
	Recog *speech.ScriptedRecognizer
	Cfg   *config.Config
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()
	return newTestAppWithConfig(t, &config.Config{
		JWTSecret:           "testsecret",
		CompletionURL:       "http://127.0.0.1:0",
		CompletionModel:     "test-model",
		CompletionMaxTokens: 600,
	})
}

func newTestAppWithConfig(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	rs := store.NewMemRecordStore()
	require.NoError(t, repo.NewUsers(rs).EnsureSeed())

	recog := &speech.ScriptedRecognizer{Script: "welcome to class"}
	app := fiber.New()
	routes.SetupRoutes(app, rs, store.NewMemBlobStore(), speech.NoSynthesizer{}, recog, cfg)
	return &testEnv{App: app, Recog: recog, Cfg: cfg}
}

func jsonReq(method, path, token string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return req
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// login authenticates one of the seeded demo accounts and returns the token.
func login(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	resp, err := env.App.Test(jsonReq("POST", "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "1234",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	token, _ := decodeMap(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createCourse(t *testing.T, env *testEnv, token, title, description string) string {
	t.Helper()
	resp, err := env.App.Test(jsonReq("POST", "/api/teacher/courses", token, fiber.Map{
		"title":       title,
		"description": description,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	course := decodeMap(t, resp)["course"].(map[string]interface{})
	id, _ := course["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// uploadResource posts a multipart file with an explicit MIME type, the way
// a browser labels the part, and returns the stored resource.
func uploadResource(t *testing.T, env *testEnv, token, courseID, filename, mime string, payload []byte) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", mime)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/teacher/courses/"+courseID+"/resources", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", token)

	resp, err := env.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return decodeMap(t, resp)["resource"].(map[string]interface{})
}

func joinAndOpen(t *testing.T, env *testEnv, token, courseID string) {
	t.Helper()
	resp, err := env.App.Test(jsonReq("POST", "/api/courses/"+courseID+"/join", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = env.App.Test(jsonReq("POST", "/api/courses/"+courseID+"/open", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
