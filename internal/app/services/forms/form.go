package forms

import (
	"context"
	"errors"
	"medicare-frontend/internal/pkg/exceptions"
	"sync"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldTel      FieldType = "tel"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
	FieldTime     FieldType = "time"
)

type Option struct {
	Value string
	Label string
}

type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Required    bool
	Placeholder string
	Options     []Option
}

// Form is a controlled input set with a single submit action. Submit
// reports failures through Error as well as its return value.
type Form interface {
	Title() string
	Fields() []Field
	Set(name, value string) error
	Submit(ctx context.Context) error
	Error() string
	Loading() bool
}

var errSubmitInFlight = errors.New("submit already in progress")

type baseForm struct {
	mu      sync.Mutex
	title   string
	fields  []Field
	values  map[string]string
	err     string
	loading bool
}

func newBaseForm(title string, fields []Field, values map[string]string) *baseForm {
	if values == nil {
		values = map[string]string{}
	}
	return &baseForm{title: title, fields: fields, values: values}
}

func (f *baseForm) Title() string {
	return f.title
}

func (f *baseForm) Fields() []Field {
	f.mu.Lock()
	defer f.mu.Unlock()

	fields := make([]Field, len(f.fields))
	for i, field := range f.fields {
		field.Value = f.values[field.Name]
		fields[i] = field
	}
	return fields
}

func (f *baseForm) Set(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, field := range f.fields {
		if field.Name == name {
			f.values[name] = value
			return nil
		}
	}
	return exceptions.ErrUnknownFormField(name)
}

func (f *baseForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *baseForm) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *baseForm) value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

func (f *baseForm) setError(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = message
}

func (f *baseForm) setFields(fields []Field) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// run clears the previous error, marks the form loading for the duration of
// op and records op's failure as the inline message.
func (f *baseForm) run(ctx context.Context, op func(ctx context.Context) error) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return errSubmitInFlight
	}
	f.loading = true
	f.err = ""
	f.mu.Unlock()

	err := op(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.err = exceptions.ClientMessage(err)
	}
	return err
}
