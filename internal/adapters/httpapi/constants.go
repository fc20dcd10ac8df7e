package httpapi

const (
	FormFieldFiles      = "files"
	HeaderContentType   = "Content-Type"
	LogRequestSent      = "Request sent"
	LogResponseReceived = "Response received"
)
