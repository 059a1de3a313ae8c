package bio

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Field names on the wire stay camelCase so the existing site frontend keeps
// working against this API unchanged.

type Education struct {
	Degree              string `json:"degree"`
	Institution         string `json:"institution"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	IsCurrentlyPursuing bool   `json:"isCurrentlyPursuing"`
	CurrentSemester     string `json:"currentSemester"`
	Description         string `json:"description"`
}

type WorkExperience struct {
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	IsCurrentJob     bool     `json:"isCurrentJob"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

type Certification struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// Bio is the site owner's profile document. The collection holds at most one
// of these; a default one is created lazily on first read.
type Bio struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Title          string           `json:"title"`
	Bio            string           `json:"bio"`
	Skills         []string         `json:"skills"`
	Email          string           `json:"email"`
	Github         string           `json:"github"`
	Linkedin       string           `json:"linkedin"`
	CVLink         string           `json:"cvLink"`
	ImageURL       string           `json:"imageUrl"`
	Education      Education        `json:"education"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Certifications []Certification  `json:"certifications"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// EducationPatch carries a partial education update. Nil fields are "not
// supplied" and keep their prior values.
type EducationPatch struct {
	Degree              *string `json:"degree"`
	Institution         *string `json:"institution"`
	StartDate           *string `json:"startDate"`
	EndDate             *string `json:"endDate"`
	IsCurrentlyPursuing *bool   `json:"isCurrentlyPursuing"`
	CurrentSemester     *string `json:"currentSemester"`
	Description         *string `json:"description"`
}

// Patch carries a partial Bio update. Top-level fields merge over the existing
// document; education merges sub-field-wise; workExperience and certifications
// replace the stored list wholesale when supplied.
type Patch struct {
	Name           *string           `json:"name"`
	Title          *string           `json:"title"`
	Bio            *string           `json:"bio"`
	Skills         *[]string         `json:"skills"`
	Email          *string           `json:"email"`
	Github         *string           `json:"github"`
	Linkedin       *string           `json:"linkedin"`
	CVLink         *string           `json:"cvLink"`
	ImageURL       *string           `json:"imageUrl"`
	Education      *EducationPatch   `json:"education"`
	WorkExperience *[]WorkExperience `json:"workExperience"`
	Certifications *[]Certification  `json:"certifications"`
}

// Apply merges p into b. Pure so merge semantics are testable without a database.
func (b *Bio) Apply(p Patch) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Bio != nil {
		b.Bio = *p.Bio
	}
	if p.Skills != nil {
		b.Skills = *p.Skills
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	if p.Github != nil {
		b.Github = *p.Github
	}
	if p.Linkedin != nil {
		b.Linkedin = *p.Linkedin
	}
	if p.CVLink != nil {
		b.CVLink = *p.CVLink
	}
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
	if p.Education != nil {
		b.Education.apply(*p.Education)
	}
	if p.WorkExperience != nil {
		b.WorkExperience = *p.WorkExperience
	}
	if p.Certifications != nil {
		b.Certifications = *p.Certifications
	}
}

func (e *Education) apply(p EducationPatch) {
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.Institution != nil {
		e.Institution = *p.Institution
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.IsCurrentlyPursuing != nil {
		e.IsCurrentlyPursuing = *p.IsCurrentlyPursuing
	}
	if p.CurrentSemester != nil {
		e.CurrentSemester = *p.CurrentSemester
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
}

// Default returns the bio created on first read of an empty store.
func Default() *Bio {
	now := time.Now().UTC()
	return &Bio{
		ID:    uuid.New(),
		Name:  "Umer Aziz",
		Title: "MERN Stack Developer",
		Bio: "Passionate MERN Stack Developer with expertise in building full-stack web applications. " +
			"Experienced in creating scalable solutions using MongoDB, Express.js, React, and Node.js " +
			"with a focus on clean code and best practices.",
		Skills:         []string{"MERN Stack", "REST APIs", "MongoDB", "SQL", "JavaScript", "Python", "Java", "Git & GitHub"},
		Email:          "umerazizgujjar009@gmail.com",
		Github:         "https://github.com/umeraziz",
		Linkedin:       "https://linkedin.com/in/umeraziz",
		WorkExperience: []WorkExperience{},
		Certifications: []Certification{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type Repository interface {
	// FindSingleton returns the one bio document, or a not-found error when
	// the collection is empty.
	FindSingleton(ctx context.Context) (*Bio, error)
	Save(ctx context.Context, b *Bio) error
	Update(ctx context.Context, b *Bio) error
}
