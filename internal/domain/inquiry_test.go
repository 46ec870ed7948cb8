package domain_test

import (
	"testing"

	"go-vedascholars-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCategoryRoundTrip(t *testing.T) {
	// Seeding followed by the redirect mapping must be the identity on the
	// recognized inquiry types.
	for _, inquiryType := range []string{domain.TypeStudent, domain.TypePartner, domain.TypeRecruiter} {
		interest := domain.InterestForType(inquiryType)
		assert.NotEmpty(t, interest, inquiryType)
		assert.Equal(t, inquiryType, domain.TypeForInterest(interest))
	}
}

func TestInterestForType(t *testing.T) {
	assert.Equal(t, domain.InterestStudent, domain.InterestForType("student"))
	assert.Equal(t, domain.InterestUniversity, domain.InterestForType("partner"))
	assert.Equal(t, domain.InterestRecruitment, domain.InterestForType("recruiter"))

	// Unrecognized or absent indicators leave the form default untouched.
	assert.Empty(t, domain.InterestForType(""))
	assert.Empty(t, domain.InterestForType("alumni"))
	assert.Empty(t, domain.InterestForType("Student Counselling"))
}

func TestTypeForInterest(t *testing.T) {
	assert.Equal(t, domain.TypeGeneral, domain.TypeForInterest(domain.InterestGeneral))
	assert.Equal(t, domain.TypeStudent, domain.TypeForInterest(domain.InterestStudent))

	// Anything outside the enumerated categories collapses to general.
	assert.Equal(t, domain.TypeGeneral, domain.TypeForInterest(""))
	assert.Equal(t, domain.TypeGeneral, domain.TypeForInterest("Something Else"))
}

func TestKnownInterest(t *testing.T) {
	for _, interest := range []string{
		domain.InterestGeneral,
		domain.InterestStudent,
		domain.InterestUniversity,
		domain.InterestRecruitment,
	} {
		assert.True(t, domain.KnownInterest(interest), interest)
	}
	assert.False(t, domain.KnownInterest(""))
	assert.False(t, domain.KnownInterest("student"))
}

func TestConfirmationMessage(t *testing.T) {
	assert.Contains(t, domain.ConfirmationMessage(domain.TypeStudent), "counsellors")
	assert.Contains(t, domain.ConfirmationMessage(domain.TypePartner), "partnering")
	assert.Contains(t, domain.ConfirmationMessage(domain.TypeRecruiter), "hiring")

	general := domain.ConfirmationMessage(domain.TypeGeneral)
	assert.Equal(t, general, domain.ConfirmationMessage("unknown"))
	assert.Equal(t, general, domain.ConfirmationMessage(""))
}
