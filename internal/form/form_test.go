package form_test

import (
	"testing"

	"go-vedascholars-backend/internal/domain"
	"go-vedascholars-backend/internal/form"

	"github.com/stretchr/testify/assert"
)

func TestFormDefaults(t *testing.T) {
	f := form.New()
	sub := f.Submission()

	assert.Equal(t, domain.InterestGeneral, sub.Interest)
	assert.Empty(t, sub.Name)
	assert.Empty(t, sub.Email)
	assert.Empty(t, sub.Phone)
}

func TestSetField(t *testing.T) {
	f := form.New()
	f.SetField(form.FieldName, "Asha")
	f.SetField(form.FieldEmail, "a@x.com")
	f.SetField(form.FieldPhone, "123")
	f.SetField(form.FieldInterest, domain.InterestStudent)

	sub := f.Submission()
	assert.Equal(t, "Asha", sub.Name)
	assert.Equal(t, "a@x.com", sub.Email)
	assert.Equal(t, "123", sub.Phone)
	assert.Equal(t, domain.InterestStudent, sub.Interest)

	// Replacing a value keeps the others intact.
	f.SetField(form.FieldName, "Asha K")
	assert.Equal(t, "Asha K", f.Submission().Name)
	assert.Equal(t, "a@x.com", f.Submission().Email)

	// Unknown fields are ignored.
	f.SetField(form.Field("subject"), "hello")
	assert.Equal(t, "Asha K", f.Submission().Name)
}

func TestSeedFromType(t *testing.T) {
	t.Run("Should pre-select the matching interest", func(t *testing.T) {
		f := form.New()
		f.SeedFromType("student")
		assert.Equal(t, domain.InterestStudent, f.Submission().Interest)
	})

	t.Run("Should leave the default for unrecognized indicators", func(t *testing.T) {
		f := form.New()
		f.SeedFromType("alumni")
		assert.Equal(t, domain.InterestGeneral, f.Submission().Interest)

		f = form.New()
		f.SeedFromType("")
		assert.Equal(t, domain.InterestGeneral, f.Submission().Interest)
	})

	t.Run("Should seed at most once so user edits survive a re-read", func(t *testing.T) {
		f := form.New()
		f.SeedFromType("student")
		f.SetField(form.FieldInterest, domain.InterestUniversity)

		f.SeedFromType("student")
		assert.Equal(t, domain.InterestUniversity, f.Submission().Interest)
	})

	t.Run("Should not seed after an unrecognized first read", func(t *testing.T) {
		f := form.New()
		f.SeedFromType("alumni")
		f.SeedFromType("student")
		assert.Equal(t, domain.InterestGeneral, f.Submission().Interest)
	})
}
