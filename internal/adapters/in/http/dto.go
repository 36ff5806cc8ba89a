package http

// SortPackageRequest is the JSON body of POST /api/v1/packages/sort.
type SortPackageRequest struct {
	Width  uint `json:"width" example:"148"`
	Height uint `json:"height" example:"1"`
	Length uint `json:"length" example:"1"`
	Mass   uint `json:"mass" example:"20"`
}

// SortPackageResponse carries the lowercase sort result.
type SortPackageResponse struct {
	Result string `json:"result" example:"rejected" enums:"standard,special,rejected"`
}

// Error is the body of every non-2xx response.
// Field and Value are set when a measurement failed validation.
type Error struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Invalid width: expecting a value of 1 or more, but got 0"`
	Field   string `json:"field,omitempty" example:"width"`
	Value   *uint  `json:"value,omitempty" example:"0"`
}
