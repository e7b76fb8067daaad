package routes

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"classmanager_backend/internals/configs"
	database "classmanager_backend/internals/databases"
	authHelper "classmanager_backend/internals/features/users/auth/helper"
	helper "classmanager_backend/internals/helpers"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	authHelper.BcryptCost = bcrypt.MinCost

	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := configs.Config{CORSOrigins: "*", RequestTimeout: 5 * time.Second}
	return NewApp(cfg, Deps{
		DB:     db,
		Log:    log,
		Tokens: helper.NewTokenIssuer("test-secret", time.Hour),
	})
}

type result struct {
	status int
	body   map[string]any
	raw    string
}

func call(t *testing.T, app *fiber.App, method, path, token string, payload any) result {
	t.Helper()
	var rdr io.Reader
	if payload != nil {
		b, err := sonic.Marshal(payload)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := result{status: resp.StatusCode, raw: string(raw), body: map[string]any{}}
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, sonic.Unmarshal(raw, &out.body), string(raw))
	}
	return out
}

func register(t *testing.T, app *fiber.App, username, fullName, role string) (token string, userID uint) {
	t.Helper()
	res := call(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": username,
		"password": "pw123456",
		"email":    username + "@example.com",
		"fullName": fullName,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, res.status, res.raw)
	assert.Equal(t, "User registered successfully", res.body["message"])
	return res.body["token"].(string), uint(res.body["userId"].(float64))
}

func TestRootAndHealth(t *testing.T) {
	app := newTestApp(t)

	res := call(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "ClassManager API is running", res.body["message"])

	res = call(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "OK", res.body["status"])

	res = call(t, app, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.raw, "classmanager_requests_total")
}

func TestTeacherCreatesAndListsClass(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "t1", "Tina Teacher", "teacher")

	login := call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{"username": "t1", "password": "pw123456"})
	require.Equal(t, http.StatusOK, login.status, login.raw)
	assert.Equal(t, "Login successful", login.body["message"])
	token := login.body["token"].(string)
	require.NotEmpty(t, token)

	created := call(t, app, http.MethodPost, "/api/classes", token, fiber.Map{"name": "Algebra", "description": "Intro"})
	require.Equal(t, http.StatusCreated, created.status, created.raw)
	assert.Equal(t, "Class created successfully", created.body["message"])
	assert.NotZero(t, created.body["classId"])

	list := call(t, app, http.MethodGet, "/api/classes", token, nil)
	require.Equal(t, http.StatusOK, list.status, list.raw)
	classes := list.body["classes"].([]any)
	require.Len(t, classes, 1)
	first := classes[0].(map[string]any)
	assert.Equal(t, "Algebra", first["name"])
	assert.Equal(t, float64(0), first["student_count"])

	me := call(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, me.status, me.raw)
	user := me.body["user"].(map[string]any)
	assert.Equal(t, "t1", user["username"])
	assert.Equal(t, "teacher", user["role"])
	assert.NotContains(t, me.raw, "password")
}

func TestAuthErrors(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "t1", "Tina Teacher", "teacher")

	res := call(t, app, http.MethodGet, "/api/classes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.status)
	assert.Equal(t, "No token, authorization denied", res.body["message"])

	res = call(t, app, http.MethodGet, "/api/classes", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, res.status)
	assert.Equal(t, "Token is not valid", res.body["message"])

	res = call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{"username": "t1", "password": "wrong-pass"})
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Invalid credentials", res.body["message"])

	res = call(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "t1", "password": "pw123456", "email": "new@example.com", "fullName": "Dup", "role": "teacher",
	})
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Username already exists", res.body["message"])

	res = call(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "x1", "password": "pw123456", "email": "x1@example.com", "fullName": "X", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Role must be either teacher or student", res.body["message"])
}

func TestRosterFlow(t *testing.T) {
	app := newTestApp(t)
	teacher, _ := register(t, app, "t1", "Tina Teacher", "teacher")
	other, _ := register(t, app, "t2", "Theo Teacher", "teacher")
	student, _ := register(t, app, "s1", "Sam Student", "student")

	created := call(t, app, http.MethodPost, "/api/classes", teacher, fiber.Map{"name": "Algebra"})
	require.Equal(t, http.StatusCreated, created.status, created.raw)
	classID := uint(created.body["classId"].(float64))
	classPath := fmt.Sprintf("/api/classes/%d", classID)

	// students tidak boleh membuat kelas
	res := call(t, app, http.MethodPost, "/api/classes", student, fiber.Map{"name": "Hack"})
	assert.Equal(t, http.StatusForbidden, res.status)

	// guru lain tidak boleh mengubah
	res = call(t, app, http.MethodPut, classPath, other, fiber.Map{"name": "Mine now"})
	assert.Equal(t, http.StatusForbidden, res.status)
	assert.Equal(t, "You can only update your own classes", res.body["message"])

	// siswa belum terdaftar
	res = call(t, app, http.MethodGet, classPath, student, nil)
	assert.Equal(t, http.StatusForbidden, res.status)
	res = call(t, app, http.MethodGet, classPath+"/students", student, nil)
	assert.Equal(t, http.StatusForbidden, res.status)

	// guru mencari Student id lewat direktori
	dir := call(t, app, http.MethodGet, "/api/students?q=sam", teacher, nil)
	require.Equal(t, http.StatusOK, dir.status, dir.raw)
	rows := dir.body["students"].([]any)
	require.Len(t, rows, 1)
	studentID := uint(rows[0].(map[string]any)["id"].(float64))
	assert.NotNil(t, dir.body["pagination"])

	res = call(t, app, http.MethodGet, "/api/students", student, nil)
	assert.Equal(t, http.StatusForbidden, res.status)

	add := call(t, app, http.MethodPost, classPath+"/students", teacher, fiber.Map{"studentId": studentID})
	require.Equal(t, http.StatusCreated, add.status, add.raw)
	assert.Equal(t, "Student added to class successfully", add.body["message"])
	assert.NotZero(t, add.body["enrollmentId"])

	dup := call(t, app, http.MethodPost, classPath+"/students", teacher, fiber.Map{"studentId": studentID})
	assert.Equal(t, http.StatusConflict, dup.status)

	missing := call(t, app, http.MethodPost, classPath+"/students", teacher, fiber.Map{"studentId": 9999})
	assert.Equal(t, http.StatusNotFound, missing.status)
	assert.Equal(t, "Student not found", missing.body["message"])

	// sekarang siswa boleh melihat, lewat header x-auth-token
	req := httptest.NewRequest(http.MethodGet, classPath+"/students", nil)
	req.Header.Set("x-auth-token", student)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	view := call(t, app, http.MethodGet, classPath, student, nil)
	require.Equal(t, http.StatusOK, view.status, view.raw)
	class := view.body["class"].(map[string]any)
	assert.Equal(t, "Tina Teacher", class["teacher_name"])

	removePath := fmt.Sprintf("/api/classes/%d/students/%d", classID, studentID)
	res = call(t, app, http.MethodDelete, removePath, teacher, nil)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Student removed from class successfully", res.body["message"])

	res = call(t, app, http.MethodDelete, removePath, teacher, nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Student was not enrolled in this class", res.body["message"])

	res = call(t, app, http.MethodDelete, classPath, teacher, nil)
	assert.Equal(t, http.StatusOK, res.status)
	res = call(t, app, http.MethodGet, classPath, teacher, nil)
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "Class not found", res.body["message"])
}

func TestInvalidIDParam(t *testing.T) {
	app := newTestApp(t)
	teacher, _ := register(t, app, "t1", "Tina Teacher", "teacher")

	res := call(t, app, http.MethodGet, "/api/classes/abc", teacher, nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestUnknownRouteUsesJSONErrorShape(t *testing.T) {
	app := newTestApp(t)

	res := call(t, app, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "NOT_FOUND", res.body["error_code"])
}
