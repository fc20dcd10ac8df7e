package domain

const (
	PathEmpty        = ""
	PathSeparator    = "/"
	HiddenFilePrefix = "."
	MIMEJSON         = "application/json"
)

// Operation names, used in log fields and notifications.
const (
	OperationUpload          = "upload"
	OperationCreateDirectory = "create_directory"
	OperationMove            = "move"
	OperationDelete          = "delete"
	OperationList            = "list"
)
