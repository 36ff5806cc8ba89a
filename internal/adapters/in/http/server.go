package http

import (
	"errors"
	"net/http"

	"sorting/internal/core/application/usecases/queries"
	"sorting/internal/core/domain/model/kernel"
	"sorting/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server handles the package sorting endpoints.
// It translates HTTP requests into SortPackageQuery and renders results and errors.
type Server struct {
	sortPackageHandler queries.SortPackageQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(sortPackageHandler queries.SortPackageQueryHandler) *Server {
	return &Server{
		sortPackageHandler: sortPackageHandler,
	}
}

// SortPackage handles POST /api/v1/packages/sort.
//
//	@Summary	Sort a package given as JSON body
//	@Tags		packages
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SortPackageRequest	true	"Package measurements"
//	@Success	200		{object}	SortPackageResponse
//	@Failure	400		{object}	Error
//	@Router		/packages/sort [post]
func (s *Server) SortPackage(ctx echo.Context) error {
	var request SortPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	return s.sort(ctx, request)
}

// GetSortPackage handles GET /api/v1/packages/sort?width=&height=&length=&mass=.
//
//	@Summary	Sort a package given as query parameters
//	@Tags		packages
//	@Produce	json
//	@Param		width	query		int	true	"Width"		minimum(0)	format(uint64)
//	@Param		height	query		int	true	"Height"	minimum(0)	format(uint64)
//	@Param		length	query		int	true	"Length"	minimum(0)	format(uint64)
//	@Param		mass	query		int	true	"Mass"		minimum(0)	format(uint64)
//	@Success	200		{object}	SortPackageResponse
//	@Failure	400		{object}	Error
//	@Router		/packages/sort [get]
func (s *Server) GetSortPackage(ctx echo.Context) error {
	var request SortPackageRequest
	params := ctx.QueryParams()

	for _, p := range []struct {
		name string
		dest *uint
	}{
		{"width", &request.Width},
		{"height", &request.Height},
		{"length", &request.Length},
		{"mass", &request.Mass},
	} {
		if err := runtime.BindQueryParameter("form", true, true, p.name, params, p.dest); err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid format for parameter " + p.name + ": " + err.Error(),
			})
		}
	}

	return s.sort(ctx, request)
}

func (s *Server) sort(ctx echo.Context, request SortPackageRequest) error {
	query, err := queries.NewSortPackageQuery(
		requestID(ctx),
		request.Width,
		request.Height,
		request.Length,
		request.Mass,
	)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create sort query",
		})
	}

	result, err := s.sortPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var sortErr *services.SortError
		if errors.As(err, &sortErr) {
			value := sortErr.Value
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: sortErr.Error(),
				Field:   sortErr.Field.String(),
				Value:   &value,
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to sort package",
		})
	}

	return ctx.JSON(http.StatusOK, SortPackageResponse{Result: result.String()})
}

// requestID reuses the X-Request-ID set by the request ID middleware when it is a UUID.
func requestID(ctx echo.Context) kernel.RequestID {
	header := ctx.Response().Header().Get(echo.HeaderXRequestID)
	if id, err := kernel.RequestIDFromString(header); err == nil {
		return id
	}
	return kernel.NewRequestID()
}
