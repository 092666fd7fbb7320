package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trinextgen/site-api/internal/middleware"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
)

func TestAdminHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockAuthService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful registration",
			body: `{"username":"owner","email":"owner@example.com","password":"secret123"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Register", mock.Anything, service.RegisterInput{
					Username: "owner",
					Email:    "owner@example.com",
					Password: "secret123",
				}).Return(&model.Admin{ID: uuid.New(), Username: "owner", Email: "owner@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "admin registered",
		},
		{
			name:           "invalid email",
			body:           `{"username":"owner","email":"not-an-email","password":"secret123"}`,
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "parameter error",
		},
		{
			name:           "short password",
			body:           `{"username":"owner","email":"owner@example.com","password":"123"}`,
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "parameter error",
		},
		{
			name: "duplicate admin",
			body: `{"username":"owner","email":"owner@example.com","password":"secret123"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrAdminExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "admin already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &MockAuthService{}
			tt.setup(auth)

			h := NewAdminHandler(auth, &MockContactService{})
			router := setupRouter()
			router.POST("/admin/register", h.Register)

			req := httptest.NewRequest("POST", "/admin/register", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp serializer.Response
			require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp.Msg)
			auth.AssertExpectations(t)
		})
	}
}

func TestAdminHandler_Login(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC()

	tests := []struct {
		name           string
		body           string
		setup          func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "login by identifier",
			body: `{"identifier":"owner","password":"secret123"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "owner", "secret123").
					Return(&service.LoginOutput{Token: "tok", ExpiresAt: expires}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "email accepted as alias",
			body: `{"email":"owner@example.com","password":"secret123"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "owner@example.com", "secret123").
					Return(&service.LoginOutput{Token: "tok", ExpiresAt: expires}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"identifier":"owner","password":"nope"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "owner", "nope").Return(nil, service.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           `{"identifier":"owner"}`,
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &MockAuthService{}
			tt.setup(auth)

			h := NewAdminHandler(auth, &MockContactService{})
			router := setupRouter()
			router.POST("/admin/login", h.Login)

			req := httptest.NewRequest("POST", "/admin/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Data service.LoginOutput `json:"data"`
				}
				require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "tok", resp.Data.Token)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAdminAuth_GuardsAdminRoutes(t *testing.T) {
	admin := &model.Admin{ID: uuid.New(), Username: "owner"}

	tests := []struct {
		name           string
		header         string
		setup          func(*MockAuthService, *MockClientService)
		expectedStatus int
	}{
		{
			name:           "missing header",
			header:         "",
			setup:          func(a *MockAuthService, c *MockClientService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer token",
			header:         "Basic b3duZXI6c2VjcmV0",
			setup:          func(a *MockAuthService, c *MockClientService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown token",
			header: "Bearer forged",
			setup: func(a *MockAuthService, c *MockClientService) {
				a.On("Resolve", mock.Anything, "forged").Return(nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(a *MockAuthService, c *MockClientService) {
				a.On("Resolve", mock.Anything, "good").Return(admin)
				c.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &MockAuthService{}
			clients := &MockClientService{}
			tt.setup(auth, clients)

			h := NewClientHandler(clients, &MockClientProjectService{}, &MockPaymentService{})
			router := setupRouter()
			router.POST("/clients", middleware.AdminAuth(auth), h.CreateClient)

			req := httptest.NewRequest("POST", "/clients", bytes.NewBufferString(`{"name":"Acme"}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				var resp serializer.Response
				require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Unauthorized", resp.Msg)
				clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			auth.AssertExpectations(t)
			clients.AssertExpectations(t)
		})
	}
}

func TestAdminHandler_ListContacts(t *testing.T) {
	contacts := &MockContactService{}
	contacts.On("List", mock.Anything).Return([]model.Contact{
		{ID: uuid.New(), Name: "Jane", Email: "jane@example.com", Message: "hi"},
	}, nil)

	h := NewAdminHandler(&MockAuthService{}, contacts)
	router := setupRouter()
	router.GET("/admin/contacts", h.ListContacts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin/contacts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []model.Contact `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	contacts.AssertExpectations(t)
}

func TestWriteErr_InternalErrorsStay500(t *testing.T) {
	contacts := &MockContactService{}
	contacts.On("List", mock.Anything).Return(nil, fmt.Errorf("list contacts: %w", errors.New("connection reset")))

	h := NewAdminHandler(&MockAuthService{}, contacts)
	router := setupRouter()
	router.GET("/admin/contacts", h.ListContacts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin/contacts", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp serializer.Response
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "database error", resp.Msg)
}
