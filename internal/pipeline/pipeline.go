package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cyberbull/startupdocs/internal/document"
	"github.com/cyberbull/startupdocs/internal/engine"
	"github.com/cyberbull/startupdocs/internal/prompt"
	"github.com/cyberbull/startupdocs/internal/schema"
	"github.com/cyberbull/startupdocs/internal/session"
	"github.com/cyberbull/startupdocs/internal/template"
)

// FailureKind classifies generation failures.
type FailureKind string

const (
	// ValidationError: required fields were empty; the model was never
	// called.
	ValidationError FailureKind = "validation_error"
	// TemplateError: a registry/composer invariant was violated. A
	// configuration defect, not a user error.
	TemplateError FailureKind = "template_error"
	// ModelError: the adapter failed or returned nothing usable.
	ModelError FailureKind = "model_error"
)

// User-facing messages. Validation and generation failures must stay
// distinguishable to the user.
const (
	msgValidation = "Please fill in all the required fields."
	msgGeneric    = "Failed to generate the document. Please try again."
)

// Failure is the typed result for an unsuccessful generation. Callers of
// Generate always receive either a document or a Failure, never a raised
// fault.
type Failure struct {
	Kind    FailureKind
	Message string
	Missing []string
	err     error
}

func (f *Failure) Error() string {
	if f.err != nil {
		return string(f.Kind) + ": " + f.err.Error()
	}
	return string(f.Kind)
}

func (f *Failure) Unwrap() error { return f.err }

// Pipeline orchestrates one end-to-end generation:
// validate -> resolve template -> compose -> invoke -> record.
type Pipeline struct {
	registry *template.Registry
	adapter  engine.Adapter
	timeout  time.Duration
	log      *logrus.Logger
}

// New builds a pipeline. timeout bounds the model call; zero means no
// deadline.
func New(registry *template.Registry, adapter engine.Adapter, timeout time.Duration, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{registry: registry, adapter: adapter, timeout: timeout, log: log}
}

// Generate runs one generation against the given session. The model is
// invoked exactly once, synchronously, with the context narrative and the
// composed prompt as two separate inputs. On success the document is
// appended to the session history; on any failure the history is left
// untouched and no retry is attempted.
func (p *Pipeline) Generate(ctx context.Context, req document.PromptRequest, values map[string]string, sess *session.Session) (*document.GeneratedDocument, *Failure) {
	docType := document.Normalize(req.DocumentType)
	tone := document.Normalize(req.Tone)

	if missing := schema.Validate(docType, values); len(missing) > 0 {
		return nil, &Failure{Kind: ValidationError, Message: msgValidation, Missing: missing}
	}

	body := p.registry.Lookup(docType, tone)
	composed, err := prompt.Compose(body, req.Query, req.Language, tone)
	if err != nil {
		// A composer fault means the registry shipped a corrupt template.
		// Log the specifics, surface only the generic message.
		p.log.WithError(err).WithFields(logrus.Fields{
			"document_type": docType,
			"tone":          tone,
		}).Error("prompt composition failed")
		return nil, &Failure{Kind: TemplateError, Message: msgGeneric, err: err}
	}

	contextText := schema.BuildContext(docType, values)

	invokeCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		invokeCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	content, err := p.adapter.Invoke(invokeCtx, contextText, composed.String())
	if err != nil {
		p.log.WithError(err).WithField("engine", p.adapter.Name()).Warn("model invocation failed")
		return nil, &Failure{Kind: ModelError, Message: msgGeneric, err: err}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &Failure{Kind: ModelError, Message: msgGeneric, err: engine.ErrEmptyResult}
	}

	doc := document.GeneratedDocument{
		DocumentType: docType,
		Content:      content,
		CreatedAt:    time.Now(),
	}
	if err := sess.History().Append(doc); err != nil {
		p.log.WithError(err).WithField("session", sess.ID).Error("failed to record generated document")
		return nil, &Failure{Kind: ModelError, Message: msgGeneric, err: err}
	}
	return &doc, nil
}

// IsTemplateError reports whether err is a composer invariant violation.
func IsTemplateError(err error) bool {
	var te *prompt.TemplateError
	return errors.As(err, &te)
}
