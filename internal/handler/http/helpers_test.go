package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/mock"
	"github.com/MKhiriev/go-class-reports/internal/service"
	"github.com/MKhiriev/go-class-reports/models"
)

const (
	employeeRoleID = 2
	adminRoleID    = 1
)

type testServices struct {
	auth           *mock.MockAuthService
	classes        *mock.MockClassService
	classRoles     *mock.MockClassRoleService
	reportEntities *mock.MockReportEntityService
	appInfo        *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:           mock.NewMockAuthService(ctrl),
		classes:        mock.NewMockClassService(ctrl),
		classRoles:     mock.NewMockClassRoleService(ctrl),
		reportEntities: mock.NewMockReportEntityService(ctrl),
		appInfo:        mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:         mocks.auth,
		ClassService:        mocks.classes,
		ClassRoleService:    mocks.classRoles,
		ReportEntityService: mocks.reportEntities,
		AppInfoService:      mocks.appInfo,
	}

	cfg := &config.StructuredConfig{
		App:    config.App{EmployeeRoleID: employeeRoleID},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}

	return NewHandler(services, cfg, logger.Nop()), mocks
}

// expectToken makes tokenString a valid token of user 1 with roleID.
func (m *testServices) expectToken(tokenString string, roleID int64) {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), tokenString).
		Return(models.Token{UserID: 1, RoleID: roleID}, nil).
		AnyTimes()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return serve(h, req)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ResponseData {
	t.Helper()

	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Data
}
