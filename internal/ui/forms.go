package ui

import (
	"fmt"
	"strconv"
	"strings"

	"anirex/internal/apperr"
	"anirex/internal/profile"
	"anirex/internal/review"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a small stack of text inputs with a focused field.
type form struct {
	fields []textinput.Model
	focus  int
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	return in
}

func (f *form) open() tea.Cmd { return f.fill() }

// fill sets the fields in order, clears the rest and focuses the first.
func (f *form) fill(values ...string) tea.Cmd {
	for i := range f.fields {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		f.fields[i].SetValue(v)
		f.fields[i].Blur()
	}
	f.focus = 0
	return f.fields[0].Focus()
}

func (f *form) next() tea.Cmd {
	f.fields[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	return f.fields[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].Value())
}

func (f *form) view(labels ...string) string {
	var b strings.Builder
	for i, in := range f.fields {
		if i < len(labels) {
			b.WriteString(FormLabel.Render(labels[i]))
			b.WriteString("\n")
		}
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}

func newReviewForm() form {
	return form{fields: []textinput.Model{
		newInput("What did you think?", 5000),
		newInput("1-10", 4),
	}}
}

func newLoginForm() form {
	password := newInput("password", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	return form{fields: []textinput.Model{
		newInput("email", 254),
		password,
	}}
}

func newProfileForm() form {
	return form{fields: []textinput.Model{
		newInput("display name", profile.MaxNameLength),
		newInput("a few words about you", 1000),
		newInput("phone", profile.MaxPhoneLength),
	}}
}

// parseProfile builds a full patch from the profile form.
func parseProfile(name, bio, phone string) (profile.UpdateCommand, error) {
	cmd := profile.UpdateCommand{Name: &name, Bio: &bio, Phone: &phone}
	if err := cmd.Normalize(); err != nil {
		return profile.UpdateCommand{}, err
	}
	return cmd, nil
}

// parseReview checks a review form before anything is sent.
func parseReview(text, rating string) (string, float64, error) {
	if strings.TrimSpace(text) == "" {
		return "", 0, fmt.Errorf("review text is required: %w", apperr.ErrValidation)
	}
	if rating == "" {
		return "", 0, fmt.Errorf("rating is required: %w", apperr.ErrValidation)
	}
	r, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return "", 0, fmt.Errorf("rating must be a number: %w", apperr.ErrValidation)
	}
	if err := review.ValidateRating(r); err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(text), r, nil
}
