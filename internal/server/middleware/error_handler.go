package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TransparentErrorHandler writes every handler error as {"error": "<message>"}.
// Query errors keep the status their gRPC code maps to.
func TransparentErrorHandler(err error, c echo.Context) {
	code, message := ExtractError(err)

	if c.Response().Committed {
		return
	}
	_ = c.JSON(code, map[string]interface{}{"error": message})
}

func ExtractError(err error) (int, interface{}) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Message != nil {
			return he.Code, he.Message
		}
		return he.Code, err.Error()
	}

	if st, ok := status.FromError(err); ok {
		return httpStatus(st.Code()), st.Message()
	}
	return http.StatusInternalServerError, err.Error()
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
