package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/mocks"
	"github.com/rescuedao/rescuedao-api/libs/go/services"
	"github.com/rescuedao/rescuedao-api/libs/go/types/api/responses"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	// Initialize logger for tests to avoid panic
	logger.Log = zap.NewNop()
}

const (
	testShelter = "0x925d17c8ebb340f04dda7545ad6f193b353b29f3"
	testAdmin   = "0x16b67e7cdc48ea1e9acb44965f26ddc6a1107c65"
)

type handlerFixture struct {
	orchestrator *mocks.MockDonationOrchestrator
	roles        *mocks.MockRoleStore
	resolver     *mocks.MockRoleResolver
	router       *gin.Engine
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		orchestrator: mocks.NewMockDonationOrchestratorForTest(t),
		roles:        mocks.NewMockRoleStoreForTest(t),
		resolver:     mocks.NewMockRoleResolverForTest(t),
		router:       gin.New(),
	}
	common := NewCommonServices(CommonServicesConfig{
		Orchestrator: f.orchestrator,
		Roles:        f.roles,
		Resolver:     f.resolver,
	})
	donations := NewDonationHandler(common)
	roles := NewRoleHandler(common)

	r := f.router
	r.GET("/state", donations.GetState)
	r.POST("/shelters", donations.AddShelter)
	r.POST("/animals", donations.AddAnimal)
	r.GET("/animals/:animal_id", donations.GetAnimal)
	r.POST("/donations", donations.Donate)
	r.POST("/donations/recurring", donations.DonateRecurring)
	r.GET("/donations/recurring", donations.ListRecurring)
	r.POST("/withdrawals", donations.Withdraw)
	r.POST("/withdrawals/spent", donations.MarkSpent)
	r.GET("/operations/:operation_id", donations.GetOperation)
	r.GET("/roles", roles.GetRoles)
	r.PUT("/roles/admin", roles.SetAdmin)
	r.POST("/roles/shelters", roles.AddShelter)
	r.DELETE("/roles/shelters/:address", roles.RemoveShelter)
	r.POST("/roles/donors", roles.AddDonor)
	r.DELETE("/roles/donors/:address", roles.RemoveDonor)
	r.DELETE("/roles", roles.ClearRoles)
	r.GET("/roles/resolve/:address", roles.ResolveRole)
	return f
}

func (f *handlerFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func newMockOperation(t *testing.T, kind business.OperationKind) (*mocks.MockOperation, business.OperationSnapshot) {
	t.Helper()
	snapshot := business.OperationSnapshot{
		ID:        uuid.New(),
		Kind:      kind,
		Mode:      "simulation",
		Status:    business.StatusSubmitting,
		Message:   "Processing donation...",
		StartedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	op := mocks.NewMockOperation(gomock.NewController(t))
	op.EXPECT().Snapshot().Return(snapshot).AnyTimes()
	return op, snapshot
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) responses.ErrorResponse {
	t.Helper()
	var resp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDonationHandler_Actions(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   interface{}
		kind   business.OperationKind
		expect func(o *mocks.MockDonationOrchestrator, op *mocks.MockOperation)
	}{
		{
			name: "add shelter",
			path: "/shelters",
			body: map[string]string{"address": testShelter, "name": "Protectora"},
			kind: business.OperationAddShelter,
			expect: func(o *mocks.MockDonationOrchestrator, op *mocks.MockOperation) {
				o.EXPECT().AddShelter(gomock.Any(), testShelter, "Protectora").Return(op, nil)
			},
		},
		{
			name: "add animal",
			path: "/animals",
			body: map[string]string{"name": "Luna", "species": "Dog"},
			kind: business.OperationAddAnimal,
			expect: func(o *mocks.MockDonationOrchestrator, op *mocks.MockOperation) {
				o.EXPECT().AddAnimal(gomock.Any(), "Luna", "Dog").Return(op, nil)
			},
		},
		{
			name: "donate",
			path: "/donations",
			body: map[string]string{"amount": "0.5", "shelter_address": testShelter},
			kind: business.OperationDonate,
			expect: func(o *mocks.MockDonationOrchestrator, op *mocks.MockOperation) {
				o.EXPECT().Donate(gomock.Any(), "0.5", testShelter).Return(op, nil)
			},
		},
		{
			name: "donate recurring",
			path: "/donations/recurring",
			body: map[string]interface{}{"amount": "10", "frequency": "monthly", "occurrences": 12, "shelter_address": testShelter},
			kind: business.OperationDonateRecurring,
			expect: func(o *mocks.MockDonationOrchestrator, op *mocks.MockOperation) {
				o.EXPECT().DonateRecurring(gomock.Any(), "10", "monthly", 12, testShelter).Return(op, nil)
			},
		},
		{
			name: "withdraw",
			path: "/withdrawals",
			body: map[string]string{"amount": "5", "destination_address": testAdmin},
			kind: business.OperationWithdraw,
			expect: func(o *mocks.MockDonationOrchestrator, op *mocks.MockOperation) {
				o.EXPECT().Withdraw(gomock.Any(), "5", testAdmin).Return(op, nil)
			},
		},
		{
			name: "mark spent",
			path: "/withdrawals/spent",
			body: map[string]string{"amount": "2"},
			kind: business.OperationMarkSpent,
			expect: func(o *mocks.MockDonationOrchestrator, op *mocks.MockOperation) {
				o.EXPECT().MarkSpent(gomock.Any(), "2").Return(op, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			op, snapshot := newMockOperation(t, tt.kind)
			tt.expect(f.orchestrator, op)

			w := f.do(http.MethodPost, tt.path, tt.body)

			require.Equal(t, http.StatusAccepted, w.Code)
			var resp responses.OperationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "operation", resp.Object)
			assert.Equal(t, snapshot.ID, resp.Operation.ID)
			assert.Equal(t, tt.kind, resp.Operation.Kind)
			assert.Equal(t, business.StatusSubmitting, resp.Operation.Status)
		})
	}
}

func TestDonationHandler_Rejections(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
		expectedField  string
	}{
		{
			name:           "validation",
			err:            &services.ValidationError{Field: "amount", Message: "please enter a valid amount"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "please enter a valid amount",
			expectedField:  "amount",
		},
		{
			name:           "wallet not connected",
			err:            services.ErrWalletNotConnected,
			expectedStatus: http.StatusConflict,
			expectedError:  "Wallet not connected",
		},
		{
			name:           "contract unavailable",
			err:            services.ErrContractUnavailable,
			expectedStatus: http.StatusConflict,
			expectedError:  "Contract unavailable or wallet not connected",
		},
		{
			name:           "insufficient funds",
			err:            services.ErrInsufficientFunds,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "Insufficient funds in pool",
		},
		{
			name:           "provider unavailable",
			err:            services.ErrProviderUnavailable,
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "Service unavailable",
		},
		{
			name:           "closed",
			err:            services.ErrOrchestratorClosed,
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "Service unavailable",
		},
		{
			name:           "unexpected",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.orchestrator.EXPECT().Donate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := f.do(http.MethodPost, "/donations", map[string]string{"amount": "x"})

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedField, resp.Field)
		})
	}
}

func TestDonationHandler_InvalidJSON(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodPost, "/donations/recurring", `{"occurrences":"twelve"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, w).Error)
}

func TestDonationHandler_GetState(t *testing.T) {
	f := newHandlerFixture(t)
	f.orchestrator.EXPECT().State().Return(business.DonationState{
		Mode:        "simulation",
		Role:        business.RoleAdmin,
		RoleFlags:   business.RoleFlags{IsAdmin: true},
		Pool:        "12.5",
		AnimalIDs:   []uint64{},
		IsConnected: true,
		UserAddress: testAdmin,
	})

	w := f.do(http.MethodGet, "/state", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "state", body["object"])
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, true, body["is_admin"])
	assert.Equal(t, "12.5", body["pool"])
	assert.Equal(t, testAdmin, body["user_address"])
}

func TestDonationHandler_GetAnimal(t *testing.T) {
	registered := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.orchestrator.EXPECT().FetchAnimal(gomock.Any(), uint64(7)).Return(&business.Animal{
			ID:           7,
			Shelter:      testShelter,
			Name:         "Luna",
			Species:      "Dog",
			Balance:      big.NewInt(2_500_000),
			Active:       true,
			RegisteredAt: registered,
		})

		w := f.do(http.MethodGet, "/animals/7", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp responses.AnimalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Luna", resp.Name)
		assert.Equal(t, "2.5", resp.Balance)
		assert.True(t, resp.RegisteredAt.Equal(registered))
	})

	t.Run("not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.orchestrator.EXPECT().FetchAnimal(gomock.Any(), uint64(99)).Return(nil)

		w := f.do(http.MethodGet, "/animals/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(http.MethodGet, "/animals/-1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDonationHandler_GetOperation(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newHandlerFixture(t)
		op, snapshot := newMockOperation(t, business.OperationWithdraw)
		f.orchestrator.EXPECT().Operation(snapshot.ID).Return(op, true)

		w := f.do(http.MethodGet, "/operations/"+snapshot.ID.String(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp responses.OperationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, snapshot.ID, resp.Operation.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.orchestrator.EXPECT().Operation(gomock.Any()).Return(nil, false)

		w := f.do(http.MethodGet, "/operations/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(http.MethodGet, "/operations/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDonationHandler_ListRecurring(t *testing.T) {
	f := newHandlerFixture(t)
	f.orchestrator.EXPECT().Schedules().Return([]business.RecurringSchedule{
		{ID: uuid.New(), Amount: "10.000000", Frequency: "monthly", Occurrences: 12, Total: "120.000000"},
	})

	w := f.do(http.MethodGet, "/donations/recurring", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Object string                       `json:"object"`
		Data   []business.RecurringSchedule `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp.Object)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "120.000000", resp.Data[0].Total)
}

func TestRoleHandler(t *testing.T) {
	cfg := business.DefaultRoleConfig()

	t.Run("get roles", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.roles.EXPECT().Snapshot().Return(cfg)

		w := f.do(http.MethodGet, "/roles", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp responses.RoleConfigResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testAdmin, resp.Admin)
		assert.Equal(t, []business.RoleListing{{Address: testShelter, Name: "Protectora"}}, resp.Shelters)
	})

	t.Run("add shelter", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.roles.EXPECT().AddShelter(gomock.Any(), testShelter, "Refugio").Return(nil)
		f.roles.EXPECT().Snapshot().Return(cfg)

		w := f.do(http.MethodPost, "/roles/shelters", map[string]string{"address": testShelter, "name": "Refugio"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("add donor", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.roles.EXPECT().AddDonor(gomock.Any(), testAdmin, "Ana").Return(nil)
		f.roles.EXPECT().Snapshot().Return(cfg)

		w := f.do(http.MethodPost, "/roles/donors", map[string]string{"address": testAdmin, "name": "Ana"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("set admin validation error", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.roles.EXPECT().SetAdmin(gomock.Any(), "0x12").
			Return(&services.ValidationError{Field: "address", Message: "invalid address format"})

		w := f.do(http.MethodPut, "/roles/admin", map[string]string{"address": "0x12"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "address", resp.Field)
		assert.Equal(t, "invalid address format", resp.Error)
	})

	t.Run("set admin requires address", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(http.MethodPut, "/roles/admin", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("remove shelter and donor", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.roles.EXPECT().RemoveShelter(gomock.Any(), testShelter).Return(nil)
		f.roles.EXPECT().RemoveDonor(gomock.Any(), testAdmin).Return(nil)
		f.roles.EXPECT().Snapshot().Return(business.NewRoleConfig()).Times(2)

		assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/roles/shelters/"+testShelter, nil).Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/roles/donors/"+testAdmin, nil).Code)
	})

	t.Run("clear", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.roles.EXPECT().Clear(gomock.Any()).Return(nil)

		w := f.do(http.MethodDelete, "/roles", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Role configuration cleared"}`, w.Body.String())
	})

	t.Run("backend failure", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.roles.EXPECT().Clear(gomock.Any()).Return(errors.New("redis down"))

		w := f.do(http.MethodDelete, "/roles", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("resolve", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.resolver.EXPECT().Resolve(gomock.Any(), "0x925D17C8EBB340F04DDA7545AD6F193B353B29F3").
			Return(business.RoleFlags{IsShelter: true})

		w := f.do(http.MethodGet, "/roles/resolve/0x925D17C8EBB340F04DDA7545AD6F193B353B29F3", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp responses.ResolvedRoleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testShelter, resp.Address)
		assert.Equal(t, business.RoleShelter, resp.Role)
		assert.True(t, resp.IsShelter)
	})
}

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler("simulation")

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		t.Run(method, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(method, "/health", nil)

			handler.Health(c)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, HealthResponse{Status: "ok", Mode: "simulation"}, resp)
		})
	}
}
