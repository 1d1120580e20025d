package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-class-reports/internal/adapter"
	"github.com/MKhiriev/go-class-reports/internal/utils"
	"github.com/MKhiriev/go-class-reports/models"
)

var testBuildInfo = models.NewAppBuildInfo("v0.3.0", "2026-10-01", "abc123")

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CLIENT_ADDRESS", "")
	t.Setenv("CLIENT_TOKEN", "")

	var out bytes.Buffer
	cmd := NewRootCmd(testBuildInfo)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeEnvelope(w http.ResponseWriter, status int, data models.ResponseData) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Response{Data: data})
}

func TestClassesCreate_SendsOnlySetFlags(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classes", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeEnvelope(w, http.StatusCreated, models.ResponseData{Success: true, ClassID: 12})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--address", srv.URL, "--token", "tok", "classes", "create", "--name", "Choir", "--age-group", "10-12")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Choir", "ageGroup": "10-12"}, body)
	assert.Contains(t, out, "Class created with ID 12")
}

func TestClassesCreate_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, models.ResponseData{
			Message: "Validation failed!",
			Errors:  []string{"Class name is not defined!"},
		})
	}))
	defer srv.Close()

	_, err := runCLI(t, "--address", srv.URL, "classes", "create")

	require.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Contains(t, err.Error(), "Class name is not defined!")
}

func TestClassesList_JSON(t *testing.T) {
	classes := []models.Class{{ID: 1, Name: "Choir", AgeGroup: "10-12"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, models.ResponseData{Success: true, Classes: classes, Count: 1})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--address", srv.URL, "-o", "json", "classes", "list")

	require.NoError(t, err)
	var got classList
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, classList{Classes: classes, Count: 1}, got)
}

func TestClassesList_Table(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, models.ResponseData{
			Success: true,
			Classes: []models.Class{{ID: 1, Name: "Choir", AgeGroup: "10-12"}},
			Count:   1,
		})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--address", srv.URL, "classes", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "AGE GROUP")
	assert.Contains(t, out, "Choir")
	assert.Contains(t, out, "Total: 1")
}

func TestClassesGet_InvalidID(t *testing.T) {
	_, err := runCLI(t, "--address", "http://127.0.0.1:1", "classes", "get", "abc")

	assert.ErrorContains(t, err, "must be a positive integer")
}

func TestLogin_PrintsTokenAndClaims(t *testing.T) {
	token, err := utils.GenerateJWTToken("go-class-reports", 7, 2, time.Hour, "sign-key")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/login", r.URL.Path)
		w.Header().Set("auth-token", token.SignedString)
		writeEnvelope(w, http.StatusOK, models.ResponseData{Success: true, UserID: 7})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--address", srv.URL, "-o", "yaml", "login", "-u", "alice", "-p", "secret123")

	require.NoError(t, err)
	var got loginResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, int64(2), got.RoleID)
	assert.Equal(t, token.SignedString, got.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, time.Minute)
}

func TestReportEntitiesCreate(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeEnvelope(w, http.StatusCreated, models.ResponseData{Success: true, ReportEntityID: 9})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--address", srv.URL, "report-entities", "create",
		"--class-id", "3", "--class-role-id", "4", "--date", "2026-03-01", "--hours-spend", "1.5")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"classId":     "3",
		"classRoleId": "4",
		"date":        "2026-03-01",
		"hoursSpend":  "1.5",
	}, body)
	assert.Contains(t, out, "Report entity created with ID 9")
}

func TestClassRolesCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/class-roles", r.URL.Path)
		writeEnvelope(w, http.StatusCreated, models.ResponseData{Success: true, ClassRoleID: 4})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--address", srv.URL, "class-roles", "create", "--name", "Instructor", "--payment-per-hour", "25.5")

	require.NoError(t, err)
	assert.Contains(t, out, "Class role created with ID 4")
}

func TestVersion_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	out, err := runCLI(t, "--address", srv.URL, "-o", "json", "version")

	require.NoError(t, err)
	var got versionResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, testBuildInfo, got.Client)
	assert.Nil(t, got.Server)
}

func TestUnsupportedOutputFormat(t *testing.T) {
	_, err := runCLI(t, "--address", "http://127.0.0.1:1", "-o", "xml", "classes", "list")

	assert.ErrorContains(t, err, "unsupported output format")
}
