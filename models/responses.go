package models

// Response is the envelope of every JSON body written by the HTTP layer:
//
//	{"data": {"success": false, "message": "...", "errors": ["..."]}}
type Response struct {
	Data ResponseData `json:"data"`
}

// ResponseData carries the outcome of a request. Errors lists the failing
// validation messages in field-declaration order and is always present,
// empty on success.
type ResponseData struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`

	// Identifiers of created entities, set by the matching endpoint only.
	ClassID        int64 `json:"classId,omitempty"`
	ClassRoleID    int64 `json:"classRoleId,omitempty"`
	ReportEntityID int64 `json:"reportEntityId,omitempty"`
	UserID         int64 `json:"userId,omitempty"`

	// Payloads of read endpoints.
	Class   *Class  `json:"class,omitempty"`
	Classes []Class `json:"classes,omitempty"`
	Count   int     `json:"count,omitempty"`
}

// NewSuccessResponse builds a successful envelope with the given message.
func NewSuccessResponse(message string) Response {
	return Response{Data: ResponseData{Success: true, Message: message, Errors: []string{}}}
}

// NewErrorResponse builds a failed envelope. A nil errs is normalized to an
// empty list so clients can always rely on the "errors" array.
func NewErrorResponse(message string, errs []string) Response {
	if errs == nil {
		errs = []string{}
	}
	return Response{Data: ResponseData{Success: false, Message: message, Errors: errs}}
}
