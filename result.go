package barnode

import "fmt"

// Result is the uniform outcome of a generation call. A zero Code pairs
// with a nil Message; a non-zero Code pairs with a non-empty Message and
// nil Data.
type Result struct {
	Code    int     `json:"code"`
	Data    *string `json:"data"`
	Message *string `json:"message"`
}

// NewResult builds the Result for an outcome. data is ignored when err is
// non-nil.
func NewResult(data *string, err error) Result {
	if err == nil {
		return Result{Code: CodeOK, Data: data}
	}
	msg := err.Error()
	if msg == "" {
		msg = CategoryOf(err).String() + " failure"
	}
	return Result{Code: Code(err), Message: &msg}
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Code == CodeOK
}

// Err returns the failure message as an error, or nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("code %d: %s", r.Code, *r.Message)
}
