package salarymaster

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	salarymastererrors "go-hrms/internal/salarymaster/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("salarymaster.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarymaster.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("salary master request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	} else {
		h.logger.Warn("salary master request rejected",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		h.writeServiceError(c, err)
		return
	}
	msg := apperror.ErrInvalidInput.Message
	switch {
	case errors.Is(err, ErrInvalidMoney):
		msg = ErrInvalidMoney.Error()
	case errors.Is(err, ErrMoneyOutOfRange):
		msg = ErrMoneyOutOfRange.Error()
	}
	h.writeServiceError(c, apperror.Wrap(err, apperror.CodeInvalidInput, msg, http.StatusBadRequest))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSalaryMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	page, limit := response.PageQuery(c, DefaultPageLimit)

	resp, total, err := h.service.GetAll(c.Request.Context(), page, limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Page(c, http.StatusOK, resp, response.NewPaginationMeta(total, page, limit), "totalSalaries")
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByEmployeeCode(c *gin.Context) {
	code, ok := h.codeParam(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByEmployeeCode(c.Request.Context(), code)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSalaryMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) UpdateByEmployeeCode(c *gin.Context) {
	code, ok := h.codeParam(c)
	if !ok {
		return
	}

	var req UpdateSalaryMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.UpdateByEmployeeCode(c.Request.Context(), code, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) DeleteByEmployeeCode(c *gin.Context) {
	code, ok := h.codeParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByEmployeeCode(c.Request.Context(), code); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Payslip(c *gin.Context) {
	id := c.Param("id")
	pdf, err := h.service.Payslip(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) codeParam(c *gin.Context) (int, bool) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		h.writeServiceError(c, salarymastererrors.ErrInvalidEmployeeCode)
		return 0, false
	}
	return code, true
}
