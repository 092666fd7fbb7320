package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/service"
)

func newSiteRouter(contacts *MockContactService, catalog *MockCatalogService, pages *MockPageService) http.Handler {
	h := NewSiteHandler(contacts, catalog, pages)
	router := setupRouter()
	router.POST("/contact", h.SubmitContact)
	router.GET("/services", h.ListServices)
	router.POST("/services", h.CreateService)
	router.GET("/pages/:page", h.GetPage)
	return router
}

func TestSiteHandler_SubmitContact(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockContactService)
		expectedStatus int
	}{
		{
			name: "message stored",
			body: `{"name":"Jane","email":"jane@example.com","message":"Need a website"}`,
			setup: func(svc *MockContactService) {
				svc.On("Submit", mock.Anything, mock.MatchedBy(func(c *model.Contact) bool {
					return c.Name == "Jane" && c.Message == "Need a website"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			body:           `{"name":"Jane","email":"jane","message":"Hi"}`,
			setup:          func(svc *MockContactService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing message",
			body:           `{"name":"Jane","email":"jane@example.com"}`,
			setup:          func(svc *MockContactService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := &MockContactService{}
			tt.setup(contacts)

			w := doJSON(newSiteRouter(contacts, &MockCatalogService{}, &MockPageService{}), "POST", "/contact", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			contacts.AssertExpectations(t)
		})
	}
}

func TestSiteHandler_Services(t *testing.T) {
	catalog := &MockCatalogService{}
	catalog.On("List", mock.Anything).Return([]model.Service{{ID: uuid.New(), Title: "Web"}}, nil)
	catalog.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Service) bool {
		return s.Title == "Cloud" && len(s.Features) == 1
	})).Return(nil)

	router := newSiteRouter(&MockContactService{}, catalog, &MockPageService{})

	w := doJSON(router, "GET", "/services", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/services", `{"title":"Cloud","description":"Hosting","icon":"cloud","features":["k8s"]}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	catalog.AssertExpectations(t)
}

func TestSiteHandler_GetPage(t *testing.T) {
	tests := []struct {
		name           string
		page           string
		setup          func(*MockPageService)
		expectedStatus int
	}{
		{
			name: "known page",
			page: "Services",
			setup: func(svc *MockPageService) {
				svc.On("Get", "Services").Return(map[string]interface{}{"badge": "What we do"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown page",
			page: "pricing",
			setup: func(svc *MockPageService) {
				svc.On("Get", "pricing").Return(nil, fmt.Errorf("page %w", service.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := &MockPageService{}
			tt.setup(pages)

			w := doJSON(newSiteRouter(&MockContactService{}, &MockCatalogService{}, pages), "GET", "/pages/"+tt.page, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			pages.AssertExpectations(t)
		})
	}
}

func TestShowcaseHandler(t *testing.T) {
	id := uuid.New()

	t.Run("list filtered by status", func(t *testing.T) {
		svc := &MockShowcaseService{}
		svc.On("List", mock.Anything, "Active").Return([]model.ShowcaseProject{{ID: id, Title: "Portal", Status: "Active"}}, nil)

		h := NewShowcaseHandler(svc)
		router := setupRouter()
		router.GET("/projects", h.ListShowcase)

		w := doJSON(router, "GET", "/projects?status=Active", "")
		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []model.ShowcaseProject `json:"data"`
		}
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 1)
		svc.AssertExpectations(t)
	})

	t.Run("create rejects unknown category", func(t *testing.T) {
		svc := &MockShowcaseService{}
		h := NewShowcaseHandler(svc)
		router := setupRouter()
		router.POST("/projects", h.CreateShowcase)

		w := doJSON(router, "POST", "/projects", `{"title":"Portal","description":"d","category":"Desktop","icon":"i"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("update partial", func(t *testing.T) {
		svc := &MockShowcaseService{}
		svc.On("Update", mock.Anything, id, mock.MatchedBy(func(in service.ShowcaseUpdate) bool {
			return in.Status != nil && *in.Status == "Completed" && in.Title == nil
		})).Return(&model.ShowcaseProject{ID: id, Status: "Completed"}, nil)

		h := NewShowcaseHandler(svc)
		router := setupRouter()
		router.PUT("/projects/:id", h.UpdateShowcase)

		w := doJSON(router, "PUT", "/projects/"+id.String(), `{"status":"Completed"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("get missing", func(t *testing.T) {
		svc := &MockShowcaseService{}
		svc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound)

		h := NewShowcaseHandler(svc)
		router := setupRouter()
		router.GET("/projects/:id", h.GetShowcase)

		w := doJSON(router, "GET", "/projects/"+id.String(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestAttachmentHandler_GetURL(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setup          func(*MockAttachmentService)
		expectedStatus int
	}{
		{
			name: "presigned",
			path: "/attachments/url?key=resumes/2025/03/01/a.pdf",
			setup: func(svc *MockAttachmentService) {
				svc.On("URL", mock.Anything, "resumes/2025/03/01/a.pdf").Return("https://blob.example/a.pdf?sig=1", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key",
			path:           "/attachments/url",
			setup:          func(svc *MockAttachmentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			path: "/attachments/url?key=x",
			setup: func(svc *MockAttachmentService) {
				svc.On("URL", mock.Anything, "x").Return("", errors.New("presign failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAttachmentService{}
			tt.setup(svc)

			h := NewAttachmentHandler(svc)
			router := setupRouter()
			router.GET("/attachments/url", h.GetURL)

			w := doJSON(router, "GET", tt.path, "")
			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
