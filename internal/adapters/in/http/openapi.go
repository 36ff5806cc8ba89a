package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openAPISpec []byte

// RequestValidator validates HTTP requests against the embedded OpenAPI contract.
type RequestValidator struct {
	router routers.Router
}

// NewRequestValidator loads and validates the embedded contract.
func NewRequestValidator() (*RequestValidator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	return &RequestValidator{router: router}, nil
}

// Middleware rejects requests that break the contract with 400.
// Requests for routes the contract does not describe are passed through untouched.
func (v *RequestValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := v.router.FindRoute(req)
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				return next(c)
			}
			if err != nil {
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid request: " + validationMessage(err),
				})
			}

			return next(c)
		}
	}
}

// validationMessage renders err on one line: the failing parameter or body
// followed by the short reason, without the schema dump.
func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if !errors.As(err, &requestErr) {
		return singleLine(err.Error())
	}

	reason := requestErr.Reason
	var schemaErr *openapi3.SchemaError
	switch {
	case errors.As(requestErr.Err, &schemaErr):
		reason = joinReasons(reason, schemaErr.Reason)
		if path := schemaErr.JSONPointer(); len(path) > 0 {
			reason = fmt.Sprintf("%s at %q", reason, strings.Join(path, "/"))
		}
	case requestErr.Err != nil:
		reason = joinReasons(reason, requestErr.Err.Error())
	}
	reason = singleLine(reason)

	switch {
	case requestErr.Parameter != nil:
		return fmt.Sprintf("parameter %q in %s: %s", requestErr.Parameter.Name, requestErr.Parameter.In, reason)
	case requestErr.RequestBody != nil:
		return "request body: " + reason
	default:
		return reason
	}
}

func joinReasons(outer, inner string) string {
	switch {
	case outer == "", outer == inner:
		return inner
	case inner == "":
		return outer
	default:
		return outer + ": " + inner
	}
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
