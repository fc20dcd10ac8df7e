package usecases

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fileboard-client/internal/config"
	"fileboard-client/internal/domain"
)

// Ports are the user-facing capabilities the operations need.
type Ports struct {
	Prompter  domain.TextPrompter
	Confirmer domain.Confirmer
	Notifier  domain.Notifier
	Refresher domain.Refresher
}

// FileOpsUseCase turns user intents into single requests against the file API.
// It holds no mutable state, so concurrent calls are independent.
type FileOpsUseCase struct {
	api   domain.FileAPI
	ports Ports
	cfg   *config.Config
}

var _ domain.FileOps = (*FileOpsUseCase)(nil)

func NewFileOpsUseCase(api domain.FileAPI, ports Ports, cfg *config.Config) *FileOpsUseCase {
	return &FileOpsUseCase{
		api:   api,
		ports: ports,
		cfg:   cfg,
	}
}

func (uc *FileOpsUseCase) Upload(ctx context.Context, files domain.FileSelection) domain.Outcome {
	log := operationLogger(domain.OperationUpload).WithField("files", len(files))
	if files.Empty() {
		log.Debug(LogNothingSelected)
		return domain.Aborted()
	}

	resp, err := uc.api.Upload(ctx, files)
	return uc.complete(ctx, log, domain.OperationUpload, resp, err, "")
}

func (uc *FileOpsUseCase) CreateDirectory(ctx context.Context, currentPath string) domain.Outcome {
	log := operationLogger(domain.OperationCreateDirectory).WithField("current_path", currentPath)

	name, ok := uc.promptText(ctx, log, uc.cfg.Prompts.FolderName, "")
	if !ok {
		return domain.Aborted()
	}

	log = log.WithField("path", name)
	resp, err := uc.api.CreateDirectory(ctx, name)
	return uc.complete(ctx, log, domain.OperationCreateDirectory, resp, err, "")
}

func (uc *FileOpsUseCase) Move(ctx context.Context, currentPath, fileName string) domain.Outcome {
	log := operationLogger(domain.OperationMove).WithField("path", fileName)

	suggestion := currentPath + domain.PathSeparator + fileName
	destination, ok := uc.promptText(ctx, log, uc.cfg.Prompts.MoveTo, suggestion)
	if !ok {
		return domain.Aborted()
	}

	req := domain.MoveRequest{Source: fileName, Destination: destination}
	if err := req.Validate(); err != nil {
		log.Debug(LogPromptCancelled)
		return domain.Aborted()
	}

	log = log.WithField("destination", destination)
	resp, err := uc.api.Move(ctx, req)
	return uc.complete(ctx, log, domain.OperationMove, resp, err, uc.cfg.Messages.Moved)
}

func (uc *FileOpsUseCase) Delete(ctx context.Context, fileName string) domain.Outcome {
	log := operationLogger(domain.OperationDelete).WithField("path", fileName)

	confirmed, err := uc.ports.Confirmer.ConfirmAction(ctx, uc.deleteQuestion(fileName))
	if err != nil {
		log.WithError(err).Warn(LogPromptFailed)
		return domain.Aborted()
	}
	if !confirmed {
		log.Debug(LogDeleteDeclined)
		return domain.Aborted()
	}

	resp, err := uc.api.Delete(ctx, fileName)
	return uc.complete(ctx, log, domain.OperationDelete, resp, err, "")
}

// promptText returns ok=false when the prompt was dismissed or left empty.
func (uc *FileOpsUseCase) promptText(ctx context.Context, log *logrus.Entry, label, defaultValue string) (string, bool) {
	value, ok, err := uc.ports.Prompter.PromptForText(ctx, label, defaultValue)
	switch {
	case errors.Is(err, domain.ErrPromptCancelled):
		log.Debug(LogPromptCancelled)
		return "", false
	case err != nil:
		log.WithError(err).Warn(LogPromptFailed)
		return "", false
	case !ok || strings.TrimSpace(value) == domain.PathEmpty:
		log.Debug(LogPromptCancelled)
		return "", false
	}
	return strings.TrimSpace(value), true
}

func (uc *FileOpsUseCase) deleteQuestion(fileName string) string {
	question := uc.cfg.Prompts.ConfirmDelete
	if strings.Contains(question, "%s") {
		return strings.Replace(question, "%s", fileName, 1)
	}
	return question + " " + fileName
}

// complete notifies every sent request and refreshes only on a confirmed success.
func (uc *FileOpsUseCase) complete(
	ctx context.Context,
	log *logrus.Entry,
	operation string,
	resp domain.Response,
	err error,
	successMessage string,
) domain.Outcome {
	var outcome domain.Outcome

	switch {
	case err != nil:
		log.Errorf("%s: %v", LogTransportError, err)
		outcome = domain.TransportError(transportMessage(err))
	case resp.OK():
		log.WithField("status", resp.StatusCode).Info(LogOperationOK)
		if successMessage == "" {
			successMessage = resp.Body
		}
		outcome = domain.Success(successMessage)
	default:
		log.WithField("status", resp.StatusCode).Warn(LogOperationRefused)
		outcome = domain.Failure(resp.Body)
	}

	uc.ports.Notifier.Notify(operation, outcome)
	if outcome.IsSuccess() {
		uc.ports.Refresher.OnMutationComplete(ctx, operation)
	}
	return outcome
}

// transportMessage strips the method and URL net/http puts in front of the cause.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func operationLogger(operation string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"operation": operation,
		"op_id":     uuid.NewString(),
	})
}
