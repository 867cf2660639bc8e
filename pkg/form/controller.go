package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-feconfig/pkg/chip"
	"github.com/goliatone/go-feconfig/pkg/model"
	"github.com/goliatone/go-feconfig/pkg/render/template"
	"github.com/goliatone/go-feconfig/pkg/store"
)

// State is the controller lifecycle state.
type State int

const (
	// StateIdle waits for input or a submission.
	StateIdle State = iota
	// StateSubmitting is held for the duration of Submit.
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result describes a successful submission.
type Result struct {
	Path     string
	Config   chip.Config
	Document chip.Document
}

// Option customises the controller configuration.
type Option func(*Controller)

// WithForm replaces the chip form model. Mostly useful in tests.
func WithForm(form model.FormModel) Option {
	return func(c *Controller) {
		c.form = form
	}
}

// WithOutputPath overrides the document path (default Chip.txt).
func WithOutputPath(path string) Option {
	return func(c *Controller) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			c.outputPath = trimmed
		}
	}
}

// WithStore injects the store documents are written through.
func WithStore(s *store.Store) Option {
	return func(c *Controller) {
		c.store = s
	}
}

// WithNotifier injects the notifier submissions report to.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithTemplateRenderer injects the renderer used for the FE document.
func WithTemplateRenderer(r template.TemplateRenderer) Option {
	return func(c *Controller) {
		c.renderer = r
	}
}

// WithTemplateDir searches dir for a chip.tpl override before the embedded
// template. Ignored when WithTemplateRenderer is also given.
func WithTemplateDir(dir string) Option {
	return func(c *Controller) {
		c.templateDir = strings.TrimSpace(dir)
	}
}

// WithLogger sets the logger submissions are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller owns the form fields and runs submissions. It is driven from a
// single goroutine and is not safe for concurrent use.
type Controller struct {
	form        model.FormModel
	values      chip.Values
	state       State
	outputPath  string
	store       *store.Store
	notifier    Notifier
	renderer    template.TemplateRenderer
	templateDir string
	logger      zerolog.Logger
	initErr     error
}

// New constructs a Controller. Missing dependencies fall back to the chip
// form, the OS filesystem, the embedded template and a silent notifier.
func New(options ...Option) *Controller {
	c := &Controller{
		outputPath: store.DefaultPath,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.applyDefaults()
	return c
}

func (c *Controller) applyDefaults() {
	if len(c.form.Fields) == 0 {
		c.form = chip.DefaultForm()
	}
	c.values = chip.Defaults(c.form)
	if c.store == nil {
		c.store = store.NewOS()
	}
	if c.notifier == nil {
		c.notifier = NotifierFuncs{}
	}
	if c.renderer == nil {
		renderer, err := chip.NewRenderer(c.templateDir)
		if err != nil {
			c.initErr = fmt.Errorf("form: template renderer: %w", err)
			return
		}
		c.renderer = renderer
	}
}

// Form returns the form model the controller was built with.
func (c *Controller) Form() model.FormModel {
	return c.form
}

// State reports the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// OutputPath reports where successful submissions are written.
func (c *Controller) OutputPath() string {
	return c.outputPath
}

// SetField stores the raw text for label. Text is not validated here, except
// that selector fields only accept their options.
func (c *Controller) SetField(label, text string) error {
	field, err := c.checkField(label, text)
	if err != nil {
		return err
	}
	c.values[field.Label] = text
	return nil
}

// SetFields applies several fields at once. Every label is checked before any
// field changes, so a bad entry leaves the form untouched.
func (c *Controller) SetFields(values chip.Values) error {
	for label, text := range values {
		if _, err := c.checkField(label, text); err != nil {
			return err
		}
	}
	for label, text := range values {
		field, _ := c.form.Field(label)
		c.values[field.Label] = text
	}
	return nil
}

func (c *Controller) checkField(label, text string) (model.Field, error) {
	field, ok := c.form.Field(label)
	if !ok {
		return model.Field{}, fmt.Errorf("%w: %q", ErrUnknownField, label)
	}
	if field.Type == model.FieldTypeEnum && !field.HasOption(text) {
		return model.Field{}, fmt.Errorf("%w: %s must be one of %s, got %q",
			ErrInvalidOption, field.Label, strings.Join(field.Enum, ", "), text)
	}
	return field, nil
}

// Field returns the raw text for label.
func (c *Controller) Field(label string) (string, bool) {
	field, ok := c.form.Field(label)
	if !ok {
		return "", false
	}
	return c.values[field.Label], true
}

// Values returns a copy of every field's raw text.
func (c *Controller) Values() chip.Values {
	return c.values.Clone()
}

// Reset restores every field to its default.
func (c *Controller) Reset() {
	c.values = chip.Defaults(c.form)
}

// Submit converts the fields, renders the FE document and writes it to the
// output path. Conversion runs before anything touches the filesystem, so a
// rejected submission leaves any existing file as it was. Exactly one
// notification is sent per call, a nil ctx included, and the controller is
// back to StateIdle when Submit returns.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	notifyCtx := ctx
	if notifyCtx == nil {
		notifyCtx = context.Background()
	}

	c.state = StateSubmitting
	defer func() { c.state = StateIdle }()

	logger := c.logger.With().Str("form", c.form.ID).Str("path", c.outputPath).Logger()
	logger.Debug().Msg("submitting form")

	result, err := c.submit(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("submission rejected")
		if nerr := c.notifier.Failure(notifyCtx, TitleError, FailureMessage(err)); nerr != nil {
			logger.Error().Err(nerr).Msg("failure notification")
		}
		return Result{}, err
	}

	logger.Info().Int("bytes", len(result.Document)).Msg("FE configuration saved")
	if nerr := c.notifier.Success(notifyCtx, TitleSuccess, SuccessMessage(result.Path)); nerr != nil {
		logger.Error().Err(nerr).Msg("success notification")
	}
	return result, nil
}

func (c *Controller) submit(ctx context.Context) (Result, error) {
	if ctx == nil {
		return Result{}, ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if c.initErr != nil {
		return Result{}, c.initErr
	}

	cfg, err := chip.Convert(c.values)
	if err != nil {
		return Result{}, err
	}
	doc, err := chip.Render(c.renderer, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("form: render document: %w", err)
	}
	if err := c.store.Write(ctx, c.outputPath, doc); err != nil {
		return Result{}, err
	}

	return Result{
		Path:     c.outputPath,
		Config:   cfg,
		Document: doc,
	}, nil
}
