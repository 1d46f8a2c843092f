package salarymaster_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrms/internal/salarymaster"
	salarymastererrors "go-hrms/internal/salarymaster/errors"
	salarymasterMock "go-hrms/internal/salarymaster/mock"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *salarymasterMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := salarymasterMock.NewMockService(gomock.NewController(t))
	r := gin.New()
	salarymaster.RegisterRoutes(r.Group("/api/v1"), salarymaster.NewHandler(svc, zap.NewNop()), nil)
	return r, svc
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error.Code
}

func TestSalaryMasterHandler_Create(t *testing.T) {
	body := `{"employeeCode":1234,"basic":15000,"hra":3000,"conveyance":1000}`

	t.Run("201 with computed figures as decimals", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req salarymaster.CreateSalaryMasterRequest) (salarymaster.SalaryMasterResponse, error) {
				assertMoney(t, "15000", *req.Basic)
				assert.Nil(t, req.OtherAllowance)
				f := salarymaster.Compute(req.Earnings())
				return salarymaster.SalaryMasterResponse{EmployeeCode: req.EmployeeCode, NetSalary: f.Net, CTC: f.CTC}, nil
			})

		rec := doRequest(r, http.MethodPost, "/api/v1/salary-master", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"netSalary":17057.5`)
		assert.Contains(t, rec.Body.String(), `"ctc":21417.5`)
	})

	t.Run("zero basic is allowed by binding", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(salarymaster.SalaryMasterResponse{}, nil)

		rec := doRequest(r, http.MethodPost, "/api/v1/salary-master",
			`{"employeeCode":1234,"basic":0,"hra":0,"conveyance":0}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("400 when basic is missing", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		rec := doRequest(r, http.MethodPost, "/api/v1/salary-master", `{"employeeCode":1234,"hra":3000,"conveyance":1000}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Basic is required")
	})

	t.Run("400 on three decimals", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		rec := doRequest(r, http.MethodPost, "/api/v1/salary-master",
			`{"employeeCode":1234,"basic":100.005,"hra":0,"conveyance":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperror.CodeInvalidInput, errorCode(t, rec))
	})

	t.Run("400 when an amount exceeds the cap", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		rec := doRequest(r, http.MethodPost, "/api/v1/salary-master",
			`{"employeeCode":1234,"basic":10000000000000000,"hra":0,"conveyance":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), salarymaster.ErrMoneyOutOfRange.Error())
	})

	t.Run("409 when a record exists", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(salarymaster.SalaryMasterResponse{}, salarymastererrors.ErrSalaryMasterAlreadyExists)

		rec := doRequest(r, http.MethodPost, "/api/v1/salary-master", body)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"details":{"field":"employeeCode"}`)
	})

	t.Run("400 for unknown employee", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(salarymaster.SalaryMasterResponse{}, salarymastererrors.ErrEmployeeNotFound)

		rec := doRequest(r, http.MethodPost, "/api/v1/salary-master", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperror.CodeInvalidInput, errorCode(t, rec))
	})
}

func TestSalaryMasterHandler_List(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().GetAll(gomock.Any(), 1, 5).
		Return([]salarymaster.SalaryMasterResponse{{EmployeeCode: 1000}}, int64(11), nil)

	rec := doRequest(r, http.MethodGet, "/api/v1/salary-master", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["currentPage"])
	assert.Equal(t, float64(3), body["totalPages"])
	assert.Equal(t, float64(11), body["totalSalaries"])
}

func TestSalaryMasterHandler_ListClampsLimit(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().GetAll(gomock.Any(), 1, 100).
		Return([]salarymaster.SalaryMasterResponse{}, int64(0), nil)

	rec := doRequest(r, http.MethodGet, "/api/v1/salary-master?limit=500", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSalaryMasterHandler_ByEmployeeCode(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().GetByEmployeeCode(gomock.Any(), 1234).Return(salarymaster.SalaryMasterResponse{EmployeeCode: 1234}, nil)

		rec := doRequest(r, http.MethodGet, "/api/v1/salary-master/employee/1234", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get 404", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().GetByEmployeeCode(gomock.Any(), 1234).
			Return(salarymaster.SalaryMasterResponse{}, salarymastererrors.ErrSalaryMasterNotFound)

		rec := doRequest(r, http.MethodGet, "/api/v1/salary-master/employee/1234", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad code", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		rec := doRequest(r, http.MethodDelete, "/api/v1/salary-master/employee/x1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().UpdateByEmployeeCode(gomock.Any(), 1234, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, req salarymaster.UpdateSalaryMasterRequest) (salarymaster.SalaryMasterResponse, error) {
				require.NotNil(t, req.HRA)
				assertMoney(t, "4500.25", *req.HRA)
				assert.Nil(t, req.Basic)
				return salarymaster.SalaryMasterResponse{EmployeeCode: 1234}, nil
			})

		rec := doRequest(r, http.MethodPut, "/api/v1/salary-master/employee/1234", `{"hra":4500.25}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSalaryMasterHandler_ByID(t *testing.T) {
	id := uuid.NewString()

	t.Run("update negative", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(salarymaster.SalaryMasterResponse{}, salarymastererrors.ErrNegativeEarnings)

		rec := doRequest(r, http.MethodPut, "/api/v1/salary-master/"+id, `{"basic":-1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := doRequest(r, http.MethodDelete, "/api/v1/salary-master/"+id, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("payslip", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Payslip(gomock.Any(), id).Return([]byte("%PDF-1.3 test"), nil)

		rec := doRequest(r, http.MethodGet, "/api/v1/salary-master/"+id+"/payslip", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip-"+id+".pdf")
	})
}

func TestRenderPayslip_RemovedEmployee(t *testing.T) {
	var buf bytes.Buffer

	err := salarymaster.RenderPayslip(&buf, salarymaster.Payslip{
		Record:      salarymaster.SalaryMaster{EmployeeCode: 1234, NetSalary: rs("57000")},
		GeneratedAt: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
