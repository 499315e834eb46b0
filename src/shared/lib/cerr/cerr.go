package cerr

import (
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
)

// F is a set of context fields attached to an error
type F map[string]any

type Context struct {
	fields F
}

type Wrapper struct {
	context Context
	cause   error
}

var _ error = &fieldsError{}

type fieldsError struct {
	cause  error
	fields F
}

func (f *fieldsError) Error() string {
	return f.cause.Error()
}

func (f *fieldsError) Unwrap() error {
	return f.cause
}

func Field(key string, value any) Context {
	return Context{}.Field(key, value)
}

func Fields(fields F) Context {
	return Context{}.Fields(fields)
}

func Wrap(err error) Wrapper {
	return Context{}.Wrap(err)
}

func Error(msg string) error {
	return Context{}.newError(msg)
}

func (c Context) Field(key string, value any) Context {
	return c.Fields(F{key: value})
}

func (c Context) Fields(fields F) Context {
	merged := make(F, len(c.fields)+len(fields))
	for k, v := range c.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return Context{fields: merged}
}

func (c Context) Wrap(err error) Wrapper {
	return Wrapper{
		context: c,
		cause:   err,
	}
}

func (c Context) Error(msg string) error {
	return c.newError(msg)
}

func (c Context) newError(msg string) error {
	return c.attach(errors.NewWithDepth(2, msg))
}

func (c Context) attach(err error) error {
	if len(c.fields) == 0 {
		return err
	}

	return &fieldsError{
		cause:  err,
		fields: c.fields,
	}
}

func (w Wrapper) Error(msg string) error {
	if w.cause == nil {
		return w.context.attach(errors.NewWithDepth(1, msg))
	}

	return w.context.attach(errors.WrapWithDepth(1, w.cause, msg))
}

// CollectFields gathers every field on the error chain.
// Fields closer to the root cause lose to the outer ones on key collision.
func CollectFields(err error) F {
	collected := F{}
	var chain []*fieldsError

	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		if fe, ok := e.(*fieldsError); ok {
			chain = append(chain, fe)
		}
	}

	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].fields {
			collected[k] = v
		}
	}

	return collected
}

func Log(err error) {
	if err == nil {
		return
	}

	log.WithFields(log.Fields(CollectFields(err))).
		WithError(err).
		Error(err.Error())
}
