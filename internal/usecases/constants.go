package usecases

const (
	LogNothingSelected  = "No files selected, nothing sent"
	LogPromptCancelled  = "Prompt cancelled, nothing sent"
	LogPromptFailed     = "Prompt failed, nothing sent"
	LogDeleteDeclined   = "Delete declined, nothing sent"
	LogOperationOK      = "Operation succeeded"
	LogOperationRefused = "Operation refused by server"
	LogTransportError   = "Transport error"
)
