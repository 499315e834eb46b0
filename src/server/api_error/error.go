package api_error

// JSONAPIError is what clients see of a failure. Internal diagnostics stay in the logs.
type JSONAPIError struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
