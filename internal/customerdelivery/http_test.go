package customerdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-petr/teller-bank/internal/domain"
	"github.com/go-petr/teller-bank/pkg/errorspkg"
	"github.com/go-petr/teller-bank/pkg/randompkg"
	"github.com/go-petr/teller-bank/pkg/web"
	"github.com/golang/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func randomCustomer(t *testing.T) *domain.Customer {
	t.Helper()

	customer, err := domain.NewCustomer(
		domain.NewSequence("CUST", 1000),
		randompkg.FirstName(),
		randompkg.LastName(),
		randompkg.Email(),
	)
	if err != nil {
		t.Fatalf("domain.NewCustomer() returned error: %v", err)
	}

	return customer
}

func TestCreate(t *testing.T) {
	customer := randomCustomer(t)
	info := customer.Info()

	type requestBody struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(customerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			requestBody: requestBody{
				FirstName: info.FirstName,
				LastName:  info.LastName,
				Email:     info.Email,
			},
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Eq(info.FirstName), gomock.Eq(info.LastName), gomock.Eq(info.Email)).
					Times(1).
					Return(info, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Customer domain.CustomerInfo `json:"customer"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareJoinedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(info, got.Customer, compareJoinedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "MissingFirstName",
			requestBody: requestBody{
				LastName: info.LastName,
				Email:    info.Email,
			},
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "FirstName is required",
		},
		{
			name: "InvalidEmail",
			requestBody: requestBody{
				FirstName: info.FirstName,
				LastName:  info.LastName,
				Email:     "not-an-email",
			},
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Eq(info.FirstName), gomock.Eq(info.LastName), gomock.Eq("not-an-email")).
					Times(1).
					Return(domain.CustomerInfo{}, &domain.InvalidAccountError{Reason: "Valid email address is required"})
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Valid email address is required",
		},
		{
			name: "DuplicateEmail",
			requestBody: requestBody{
				FirstName: info.FirstName,
				LastName:  info.LastName,
				Email:     info.Email,
			},
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Eq(info.FirstName), gomock.Eq(info.LastName), gomock.Eq(info.Email)).
					Times(1).
					Return(domain.CustomerInfo{}, &domain.InvalidAccountError{
						Reason: "Customer with email " + info.Email + " already exists",
					})
			},
			wantStatusCode: http.StatusConflict,
			wantError:      "Customer with email " + customer.Email() + " already exists",
		},
		{
			name: "InternalError",
			requestBody: requestBody{
				FirstName: info.FirstName,
				LastName:  info.LastName,
				Email:     info.Email,
			},
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Eq(info.FirstName), gomock.Eq(info.LastName), gomock.Eq(info.Email)).
					Times(1).
					Return(domain.CustomerInfo{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			customerService := NewMockService(ctrl)
			customerHandler := NewHandler(customerService)

			server := gin.New()
			server.POST("/customers", customerHandler.Create)

			tc.buildStubs(customerService)

			// Send request
			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Customer domain.CustomerInfo `json:"customer"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := randomCustomer(t).Info()

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(customerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			id:   info.ID,
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					GetCustomer(gomock.Any(), gomock.Eq(info.ID)).
					Times(1).
					Return(info, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Customer domain.CustomerInfo `json:"customer"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareJoinedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(info, got.Customer, compareJoinedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "NotFound",
			id:   "CUST9999",
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					GetCustomer(gomock.Any(), gomock.Eq("CUST9999")).
					Times(1).
					Return(domain.CustomerInfo{}, &domain.CustomerNotFoundError{ID: "CUST9999"})
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      "Customer not found: CUST9999",
		},
		{
			name: "InternalError",
			id:   info.ID,
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					GetCustomer(gomock.Any(), gomock.Eq(info.ID)).
					Times(1).
					Return(domain.CustomerInfo{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			customerService := NewMockService(ctrl)
			customerHandler := NewHandler(customerService)

			server := gin.New()
			server.GET("/customers/:id", customerHandler.Get)

			tc.buildStubs(customerService)

			// Send request
			url := fmt.Sprintf("/customers/%s", tc.id)
			req, err := http.NewRequest(http.MethodGet, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Customer domain.CustomerInfo `json:"customer"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestList(t *testing.T) {
	first := randomCustomer(t)
	second := randomCustomer(t)
	second.Deactivate()

	all := []domain.CustomerInfo{first.Info(), second.Info()}
	active := []domain.CustomerInfo{first.Info()}

	testCases := []struct {
		name       string
		query      string
		buildStubs func(customerService *MockService)
		checkData  func(data any)
	}{
		{
			name:  "OK",
			query: "",
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					ListCustomers(gomock.Any()).
					Times(1).
					Return(all)
			},
			checkData: func(data any) {
				got, ok := data.(*struct {
					Customers []domain.CustomerInfo `json:"customers"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareJoinedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(all, got.Customers, compareJoinedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "OKActiveOnly",
			query: "?active=true",
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					ListActiveCustomers(gomock.Any()).
					Times(1).
					Return(active)
			},
			checkData: func(data any) {
				got, ok := data.(*struct {
					Customers []domain.CustomerInfo `json:"customers"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareJoinedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(active, got.Customers, compareJoinedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			customerService := NewMockService(ctrl)
			customerHandler := NewHandler(customerService)

			server := gin.New()
			server.GET("/customers", customerHandler.List)

			tc.buildStubs(customerService)

			// Send request
			req, err := http.NewRequest(http.MethodGet, "/customers"+tc.query, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != http.StatusOK {
				t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
			}

			res := web.Response{
				Data: &struct {
					Customers []domain.CustomerInfo `json:"customers"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			tc.checkData(res.Data)
		})
	}
}

func TestUpdate(t *testing.T) {
	customer := randomCustomer(t)
	phone := randompkg.Phone()
	address := randompkg.Address()

	customer.SetPhoneNumber(phone)
	customer.SetAddress(address)
	info := customer.Info()

	type requestBody struct {
		FirstName   *string `json:"first_name,omitempty"`
		LastName    *string `json:"last_name,omitempty"`
		Email       *string `json:"email,omitempty"`
		PhoneNumber *string `json:"phone_number,omitempty"`
		Address     *string `json:"address,omitempty"`
	}

	testCases := []struct {
		name           string
		id             string
		requestBody    requestBody
		buildStubs     func(customerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			id:   info.ID,
			requestBody: requestBody{
				PhoneNumber: &phone,
				Address:     &address,
			},
			buildStubs: func(customerService *MockService) {
				arg := domain.UpdateCustomerParams{
					PhoneNumber: &phone,
					Address:     &address,
				}

				customerService.EXPECT().
					UpdateCustomer(gomock.Any(), gomock.Eq(info.ID), gomock.Eq(arg)).
					Times(1).
					Return(info, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Customer domain.CustomerInfo `json:"customer"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareJoinedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(info, got.Customer, compareJoinedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "EmptyFirstName",
			id:   info.ID,
			requestBody: requestBody{
				FirstName: strPtr("   "),
			},
			buildStubs: func(customerService *MockService) {
				arg := domain.UpdateCustomerParams{
					FirstName: strPtr("   "),
				}

				customerService.EXPECT().
					UpdateCustomer(gomock.Any(), gomock.Eq(info.ID), gomock.Eq(arg)).
					Times(1).
					Return(domain.CustomerInfo{}, &domain.InvalidAccountError{Reason: "First name cannot be empty"})
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "First name cannot be empty",
		},
		{
			name: "NotFound",
			id:   "CUST9999",
			requestBody: requestBody{
				PhoneNumber: &phone,
			},
			buildStubs: func(customerService *MockService) {
				arg := domain.UpdateCustomerParams{
					PhoneNumber: &phone,
				}

				customerService.EXPECT().
					UpdateCustomer(gomock.Any(), gomock.Eq("CUST9999"), gomock.Eq(arg)).
					Times(1).
					Return(domain.CustomerInfo{}, &domain.CustomerNotFoundError{ID: "CUST9999"})
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      "Customer not found: CUST9999",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			customerService := NewMockService(ctrl)
			customerHandler := NewHandler(customerService)

			server := gin.New()
			server.PATCH("/customers/:id", customerHandler.Update)

			tc.buildStubs(customerService)

			// Send request
			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			url := fmt.Sprintf("/customers/%s", tc.id)
			req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Customer domain.CustomerInfo `json:"customer"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}

func TestDeactivate(t *testing.T) {
	customer := randomCustomer(t)
	customer.Deactivate()
	info := customer.Info()

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(customerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			id:   info.ID,
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					DeactivateCustomer(gomock.Any(), gomock.Eq(info.ID)).
					Times(1).
					Return(info, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Customer domain.CustomerInfo `json:"customer"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if got.Customer.IsActive {
					t.Errorf("res.Data.Customer.IsActive=true, want false")
				}
			},
		},
		{
			name: "NotFound",
			id:   "CUST9999",
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					DeactivateCustomer(gomock.Any(), gomock.Eq("CUST9999")).
					Times(1).
					Return(domain.CustomerInfo{}, &domain.CustomerNotFoundError{ID: "CUST9999"})
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      "Customer not found: CUST9999",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			customerService := NewMockService(ctrl)
			customerHandler := NewHandler(customerService)

			server := gin.New()
			server.POST("/customers/:id/deactivate", customerHandler.Deactivate)

			tc.buildStubs(customerService)

			// Send request
			url := fmt.Sprintf("/customers/%s/deactivate", tc.id)
			req, err := http.NewRequest(http.MethodPost, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Customer domain.CustomerInfo `json:"customer"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestActivate(t *testing.T) {
	info := randomCustomer(t).Info()

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(customerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			id:   info.ID,
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					ActivateCustomer(gomock.Any(), gomock.Eq(info.ID)).
					Times(1).
					Return(info, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Customer domain.CustomerInfo `json:"customer"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if !got.Customer.IsActive {
					t.Errorf("res.Data.Customer.IsActive=false, want true")
				}
			},
		},
		{
			name: "NotFound",
			id:   "CUST9999",
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					ActivateCustomer(gomock.Any(), gomock.Eq("CUST9999")).
					Times(1).
					Return(domain.CustomerInfo{}, &domain.CustomerNotFoundError{ID: "CUST9999"})
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      "Customer not found: CUST9999",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			customerService := NewMockService(ctrl)
			customerHandler := NewHandler(customerService)

			server := gin.New()
			server.POST("/customers/:id/activate", customerHandler.Activate)

			tc.buildStubs(customerService)

			// Send request
			url := fmt.Sprintf("/customers/%s/activate", tc.id)
			req, err := http.NewRequest(http.MethodPost, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Customer domain.CustomerInfo `json:"customer"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	customer := randomCustomer(t)
	summary := customer.Summary()

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(customerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			id:   customer.ID(),
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					CustomerSummary(gomock.Any(), gomock.Eq(customer.ID())).
					Times(1).
					Return(summary, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Summary string `json:"summary"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if got.Summary != summary {
					t.Errorf("res.Data.Summary=%q, want %q", got.Summary, summary)
				}
			},
		},
		{
			name: "NotFound",
			id:   "CUST9999",
			buildStubs: func(customerService *MockService) {
				customerService.EXPECT().
					CustomerSummary(gomock.Any(), gomock.Eq("CUST9999")).
					Times(1).
					Return("", &domain.CustomerNotFoundError{ID: "CUST9999"})
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      "Customer not found: CUST9999",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			customerService := NewMockService(ctrl)
			customerHandler := NewHandler(customerService)

			server := gin.New()
			server.GET("/customers/:id/summary", customerHandler.Summary)

			tc.buildStubs(customerService)

			// Send request
			url := fmt.Sprintf("/customers/%s/summary", tc.id)
			req, err := http.NewRequest(http.MethodGet, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Summary string `json:"summary"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}
