package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataResponse writes the API envelope with statusCode as the HTTP status.
func DataResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, APIResponse{
		Status:  statusCode,
		Message: http.StatusText(statusCode),
		Data:    data,
	})
}

// SuccessResponse writes a 200 envelope.
func SuccessResponse(c echo.Context, data interface{}) error {
	return DataResponse(c, http.StatusOK, data)
}

// RawResponse writes data as the whole body, without the envelope.
func RawResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// RawJSONResponse writes pre-encoded JSON as the whole body.
func RawJSONResponse(c echo.Context, b []byte) error {
	return c.JSONBlob(http.StatusOK, b)
}

// AttachmentResponse streams r as a download named filename.
func AttachmentResponse(c echo.Context, filename, contentType string, r io.Reader) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Stream(http.StatusOK, contentType, r)
}

// BadRequestResponse writes validation details with a 400 envelope.
func BadRequestResponse(c echo.Context, data interface{}) error {
	return DataResponse(c, http.StatusBadRequest, data)
}

// InternalServerErrorResponse writes a generic 500 envelope.
func InternalServerErrorResponse(c echo.Context) error {
	return DataResponse(c, http.StatusInternalServerError, "Something went wrong")
}

// AppErrorResponse writes err with its own status, or a generic 500 if err is not an AppError.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return DataResponse(c, StatusOf(appErr), []*AppError{appErr})
	}
	return InternalServerErrorResponse(c)
}
