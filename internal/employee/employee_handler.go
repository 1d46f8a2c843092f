package employee

import (
	"errors"
	"net/http"
	"strconv"

	employeeerrors "go-hrms/internal/employee/errors"
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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("employee request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
	} else {
		h.logger.Warn("employee request rejected",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// writeBindError turns a ShouldBindJSON failure into a 400. Malformed JSON has
// no field detail, so it gets the generic invalid input message.
func (h *Handler) writeBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		h.writeServiceError(c, err)
		return
	}
	h.writeServiceError(c, apperror.Wrap(err, apperror.CodeInvalidInput, apperror.ErrInvalidInput.Message, http.StatusBadRequest))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Onboard(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// GetAll serves the paginated list, or the name+code summary when
// dropdown=true.
func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("dropdown") == "true" {
		resp, err := h.service.GetSummary(ctx)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp)
		return
	}

	page, limit := response.PageQuery(c, DefaultPageLimit)
	h.logger.Debug("http get all employees", zap.Int("page", page), zap.Int("limit", limit))

	resp, total, err := h.service.GetAll(ctx, page, limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Page(c, http.StatusOK, resp, response.NewPaginationMeta(total, page, limit), "totalEmployees")
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByCode(c *gin.Context) {
	code, ok := h.codeParam(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) CheckCode(c *gin.Context) {
	code, ok := h.codeParam(c)
	if !ok {
		return
	}

	exists, err := h.service.CodeExists(c.Request.Context(), code)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CodeExistsResponse{Exists: exists})
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", id))

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) UpdateByCode(c *gin.Context) {
	code, ok := h.codeParam(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.UpdateByCode(c.Request.Context(), code, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) DeleteByCode(c *gin.Context) {
	code, ok := h.codeParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByCode(c.Request.Context(), code); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) codeParam(c *gin.Context) (int, bool) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeCode)
		return 0, false
	}
	return code, true
}
