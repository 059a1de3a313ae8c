package bio

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleBio() *Bio {
	b := Default()
	b.Education = Education{
		Degree:      "BSc Computer Science",
		Institution: "Punjab University",
		StartDate:   "2020",
		EndDate:     "2024",
	}
	b.WorkExperience = []WorkExperience{
		{JobTitle: "Developer", Company: "Acme", Responsibilities: []string{"ship code"}},
	}
	b.Certifications = []Certification{{Title: "AWS CCP", Image: "https://img/aws.png"}}
	return b
}

func TestApply_TopLevelFieldOnly(t *testing.T) {
	b := sampleBio()
	before := *b

	b.Apply(Patch{Title: strPtr("Go Developer")})

	assert.Equal(t, "Go Developer", b.Title)
	assert.Equal(t, before.Name, b.Name)
	assert.Equal(t, before.Bio, b.Bio)
	assert.Equal(t, before.Skills, b.Skills)
	assert.Equal(t, before.Education, b.Education, "nested education must be untouched")
	assert.Equal(t, before.WorkExperience, b.WorkExperience)
	assert.Equal(t, before.Certifications, b.Certifications)
}

func TestApply_EducationMergesSubFields(t *testing.T) {
	b := sampleBio()

	b.Apply(Patch{Education: &EducationPatch{Degree: strPtr("MSc Software Engineering")}})

	assert.Equal(t, "MSc Software Engineering", b.Education.Degree)
	assert.Equal(t, "Punjab University", b.Education.Institution, "unspecified sub-fields keep prior values")
	assert.Equal(t, "2020", b.Education.StartDate)
}

func TestApply_WorkExperienceReplacesWholesale(t *testing.T) {
	b := sampleBio()

	replacement := []WorkExperience{
		{JobTitle: "Lead", Company: "Initech"},
		{JobTitle: "Intern", Company: "Hooli"},
	}
	b.Apply(Patch{WorkExperience: &replacement})

	require.Len(t, b.WorkExperience, 2)
	assert.Equal(t, "Initech", b.WorkExperience[0].Company)
}

func TestApply_CertificationsReplaceWholesale(t *testing.T) {
	b := sampleBio()

	empty := []Certification{}
	b.Apply(Patch{Certifications: &empty})

	assert.Empty(t, b.Certifications)
}

func TestApply_EmptyPatchIsNoop(t *testing.T) {
	b := sampleBio()
	before := *b

	b.Apply(Patch{})

	assert.Equal(t, before, *b)
}

func TestApply_SupportsClearingOptionalFields(t *testing.T) {
	b := sampleBio()
	b.CVLink = "https://cv.example.com/old.pdf"

	b.Apply(Patch{CVLink: strPtr("")})

	assert.Empty(t, b.CVLink)
}

func TestDefault(t *testing.T) {
	b := Default()

	require.NotNil(t, b)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, "Umer Aziz", b.Name)
	assert.Equal(t, "MERN Stack Developer", b.Title)
	assert.NotEmpty(t, b.Skills)
	assert.NotNil(t, b.WorkExperience)
	assert.NotNil(t, b.Certifications)
}
