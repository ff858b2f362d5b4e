package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylique/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validOrderBody = `{
	"email": "ada@example.com",
	"idempotencyKey": "key-1",
	"customerName": "Ada",
	"totalPrice": 60,
	"cartItems": [{"productId": "P001", "name": "Blue Shirt", "count": 2, "price": 30}]
}`

func TestOrderHandler_Checkout(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockResult     *model.InsertResult
		mockError      error
		expectService  bool
		expectedStatus int
		expectedBody   string
		expectedError  string
	}{
		{
			name:           "Order placed",
			body:           validOrderBody,
			mockResult:     &model.InsertResult{Acknowledged: true, InsertedID: "0b4f3a52-5f0c-4c6e-9a59-1d0f4c9e3b11"},
			expectService:  true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"acknowledged":true,"insertedId":"0b4f3a52-5f0c-4c6e-9a59-1d0f4c9e3b11"}`,
		},
		{
			name:           "Stock not available",
			body:           validOrderBody,
			mockError:      &model.StockError{ProductID: "P001", Name: "Blue Shirt"},
			expectService:  true,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Stock not available","productId":"P001","name":"Blue Shirt"}`,
		},
		{
			name:           "Wrapped stock error",
			body:           validOrderBody,
			mockError:      fmt.Errorf("checkout: %w", &model.StockError{ProductID: "P002"}),
			expectService:  true,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Stock not available","productId":"P002","name":""}`,
		},
		{
			name:           "Duplicate order",
			body:           validOrderBody,
			mockError:      model.ErrDuplicateOrder,
			expectService:  true,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Duplicate order"}`,
		},
		{
			name:           "Service validation error",
			body:           validOrderBody,
			mockError:      model.NewValidationError("cartItems", "is required"),
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.MsgInvalidBody,
		},
		{
			name:           "Storage failure",
			body:           validOrderBody,
			mockError:      errors.New("connection refused"),
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to post order","details":"connection refused"}`,
		},
		{
			name:           "Malformed JSON",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.MsgInvalidBody,
		},
		{
			name:           "Unknown field",
			body:           `{"email":"ada@example.com","idempotencyKey":"k","cartItems":[{"productId":"P001","count":1}],"coupon":"X"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.MsgInvalidBody,
		},
		{
			name:           "Missing email",
			body:           `{"idempotencyKey":"k","cartItems":[{"productId":"P001","count":1}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body","details":"email is required"}`,
		},
		{
			name:           "Empty cart",
			body:           `{"email":"ada@example.com","idempotencyKey":"k","cartItems":[]}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body","details":"cartItems must contain at least 1 item(s)"}`,
		},
		{
			name:           "Zero count",
			body:           `{"email":"ada@example.com","idempotencyKey":"k","cartItems":[{"productId":"P001","count":0}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body","details":"cartItems[0].count must be greater than 0"}`,
		},
		{
			name:           "Trailing data",
			body:           validOrderBody + `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.MsgInvalidBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			if tt.expectService {
				if tt.mockError != nil {
					svc.On("Checkout", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).Return(nil, tt.mockError)
				} else {
					svc.On("Checkout", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).Return(tt.mockResult, nil)
				}
			}

			h := NewOrderHandler(svc, zerolog.Nop())
			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.Checkout(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				assert.NotEmpty(t, resp.Details)
			}

			if tt.expectService {
				svc.AssertExpectations(t)
			} else {
				svc.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderHandler_Checkout_PassesDecodedRequest(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("Checkout", mock.Anything, mock.MatchedBy(func(req *model.OrderRequest) bool {
		return req.Email == "ada@example.com" &&
			req.IdempotencyKey == "key-1" &&
			len(req.CartItems) == 1 &&
			req.CartItems[0].ProductID == "P001" &&
			req.CartItems[0].Count == 2
	})).Return(&model.InsertResult{Acknowledged: true, InsertedID: "id"}, nil)

	h := NewOrderHandler(svc, zerolog.Nop())
	w := httptest.NewRecorder()

	h.Checkout(w, httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(validOrderBody)))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestOrderHandler_ByEmail(t *testing.T) {
	tests := []struct {
		name           string
		mockReturn     []model.Order
		mockError      error
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "Orders found",
			mockReturn: []model.Order{
				{ID: "o2", Email: "ada@example.com", IdempotencyKey: "k2", CartItems: []model.CartItem{{ProductID: "P001", Count: 1}}},
				{ID: "o1", Email: "ada@example.com", IdempotencyKey: "k1", CartItems: []model.CartItem{{ProductID: "P002", Count: 3}}},
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:           "No orders",
			mockReturn:     []model.Order{},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "Service error",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			if tt.mockError != nil {
				svc.On("ByEmail", mock.Anything, "ada@example.com").Return(nil, tt.mockError)
			} else {
				svc.On("ByEmail", mock.Anything, "ada@example.com").Return(tt.mockReturn, nil)
			}

			h := NewOrderHandler(svc, zerolog.Nop())
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/checkout/ada@example.com", nil), "email", "ada@example.com")
			w := httptest.NewRecorder()

			h.ByEmail(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mockError == nil {
				var orders []model.Order
				require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
				assert.Len(t, orders, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, "o2", orders[0].ID)
				}
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_ByEmail_EscapedParam(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("ByEmail", mock.Anything, "ada@example.com").Return([]model.Order{{ID: "o1", Email: "ada@example.com"}}, nil)

	h := NewOrderHandler(svc, zerolog.Nop())
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/checkout/ada%40example.com", nil), "email", "ada%40example.com")
	w := httptest.NewRecorder()

	h.ByEmail(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var orders []model.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
	svc.AssertExpectations(t)
}
