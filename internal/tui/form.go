package tui

import (
	"strings"

	"github.com/jask/teakit/viewmodel"
)

// profileForm is the demo's editable record. It rides on viewmodel.Base so
// commits surface through change events rather than direct app calls.
type profileForm struct {
	*viewmodel.Base

	name  string
	email string
}

func newProfileForm() *profileForm {
	f := &profileForm{name: "Ada Lovelace", email: "ada@example.org"}
	f.Base = viewmodel.New(f)
	return f
}

func (f *profileForm) Name() string  { return f.name }
func (f *profileForm) Email() string { return f.email }

func (f *profileForm) SetName(v string) error {
	if err := f.EnsureOpen(); err != nil {
		return err
	}
	viewmodel.Set(f.Base, &f.name, strings.TrimSpace(v), "Name")
	return nil
}

func (f *profileForm) SetEmail(v string) error {
	if err := f.EnsureOpen(); err != nil {
		return err
	}
	viewmodel.Set(f.Base, &f.email, strings.TrimSpace(v), "Email")
	return nil
}
