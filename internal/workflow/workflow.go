package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/services"
	"github.com/ewalker/reportfill/internal/shared"
)

// DownloadFilename is the suggested filename for the transformed report.
const DownloadFilename = "report_with_names.html"

// User-facing messages for the submission error taxonomy.
const (
	msgMissingFiles   = "Please upload both files"
	msgSessionExpired = "Session expired. Please log in again."
	msgProcessFailed  = "Failed to process files. Check server logs."
)

// ProcessClient performs the protected processing call.
// Implemented by [services.Client]; abstracted for testing.
type ProcessClient interface {
	ProcessFiles(ctx context.Context, sel models.FileSelection) (*services.ProcessResult, error)
}

// AuthSink receives the authorization-lost event.
// Implemented by the auth controller.
type AuthSink interface {
	AuthorizationLost()
}

// SubmissionController owns the file selection and submission result and
// drives the upload workflow.
type SubmissionController struct {
	mu        sync.Mutex
	client    ProcessClient
	store     *Store
	sink      AuthSink
	logger    *log.Logger
	selection models.FileSelection
	result    models.SubmissionResult
}

// NewSubmissionController creates a controller over the given client and sink.
func NewSubmissionController(client ProcessClient, sink AuthSink, logger *log.Logger) *SubmissionController {
	return &SubmissionController{
		client: client,
		store:  NewStore(),
		sink:   sink,
		logger: logger,
	}
}

// Store returns the artifact store holding processed results.
func (c *SubmissionController) Store() *Store {
	return c.store
}

// Selection returns the current file selection.
func (c *SubmissionController) Selection() models.FileSelection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Result returns the current submission result.
func (c *SubmissionController) Result() models.SubmissionResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// SelectHTML reads the HTML report at path into the selection.
// Only the extension is filtered; content is never inspected.
func (c *SubmissionController) SelectHTML(path string) error {
	if err := shared.VerifyExtension(path, ".html"); err != nil {
		return err
	}
	data, err := shared.VerifyAndReadFile(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.HTMLPath = path
	c.selection.HTMLData = data
	return nil
}

// SelectExcel reads the names spreadsheet at path into the selection.
func (c *SubmissionController) SelectExcel(path string) error {
	if err := shared.VerifyExtension(path, ".xlsx"); err != nil {
		return err
	}
	data, err := shared.VerifyAndReadFile(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.ExcelPath = path
	c.selection.ExcelData = data
	return nil
}

// Submit runs one submission attempt end to end and returns the terminal result.
//
// Preconditions are checked before any network call: a missing file yields a
// validation error locally. A 401 from the processing endpoint demotes the
// session through the sink; any other failure surfaces the generic message.
// The loading flag is cleared on every exit path. Files remain selected after
// a submission, successful or not.
func (c *SubmissionController) Submit(ctx context.Context) models.SubmissionResult {
	c.mu.Lock()
	if c.result.State == models.ResultLoading {
		// advisory guard: a submission is already in flight
		result := c.result
		c.mu.Unlock()
		return result
	}

	// reset the previous outcome before a new attempt
	if c.result.ArtifactRef != "" {
		c.store.Revoke(c.result.ArtifactRef)
	}
	c.result = models.SubmissionResult{}

	if !c.selection.Complete() {
		c.result = models.SubmissionResult{State: models.ResultError, Message: msgMissingFiles}
		result := c.result
		c.mu.Unlock()
		return result
	}

	c.result.State = models.ResultLoading
	sel := c.selection
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.result.State == models.ResultLoading {
			c.result = models.SubmissionResult{State: models.ResultError, Message: msgProcessFailed}
		}
		c.mu.Unlock()
	}()

	processed, err := c.client.ProcessFiles(ctx, sel)
	if err != nil {
		return c.fail(err)
	}

	ref := c.store.Put(processed.Data, processed.ContentType)
	c.logger.Info("report processed", "bytes", len(processed.Data), "ref", ref)

	c.mu.Lock()
	c.result = models.SubmissionResult{State: models.ResultSuccess, ArtifactRef: ref}
	result := c.result
	c.mu.Unlock()
	return result
}

func (c *SubmissionController) fail(err error) models.SubmissionResult {
	message := msgProcessFailed
	if errors.Is(err, shared.ErrSessionExpired) {
		message = msgSessionExpired
		if c.sink != nil {
			c.sink.AuthorizationLost()
		}
	}
	c.logger.Error("submission failed", "error", err)

	c.mu.Lock()
	c.result = models.SubmissionResult{State: models.ResultError, Message: message}
	result := c.result
	c.mu.Unlock()
	return result
}

// Reset clears the selection, the result, and every stored artifact.
// Registered as the auth controller's logout hook.
func (c *SubmissionController) Reset() {
	c.mu.Lock()
	c.selection = models.FileSelection{}
	c.result = models.SubmissionResult{}
	c.mu.Unlock()

	c.store.RevokeAll()
}

// SaveResult writes the current successful artifact to path.
func (c *SubmissionController) SaveResult(path string) error {
	c.mu.Lock()
	result := c.result
	c.mu.Unlock()

	if result.State != models.ResultSuccess {
		return fmt.Errorf("%w: no processed report to save", shared.ErrInvalidInput)
	}

	artifact, err := c.store.Open(result.ArtifactRef)
	if err != nil {
		return err
	}
	return artifact.SaveTo(path)
}
