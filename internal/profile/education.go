package profile

import (
	"errors"
	"fmt"
	"strings"
)

// Education is one of the fixed educational background categories.
type Education string

const (
	ComputerScience        Education = "Computer Science"
	Engineering            Education = "Engineering"
	BusinessAdministration Education = "Business Administration"
	LifeSciences           Education = "Life Sciences"
	SocialSciences         Education = "Social Sciences"
	ArtsAndHumanities      Education = "Arts and Humanities"
	Mathematics            Education = "Mathematics"
	PhysicalSciences       Education = "Physical Sciences"
	Law                    Education = "Law"
	EducationStudies       Education = "Education"
	MedicalSciences        Education = "Medical Sciences"
	Other                  Education = "Other"
)

var ErrUnknownEducation = errors.New("unknown educational background")

// Educations lists the categories in the order they are offered to the user.
var Educations = []Education{
	ComputerScience,
	Engineering,
	BusinessAdministration,
	LifeSciences,
	SocialSciences,
	ArtsAndHumanities,
	Mathematics,
	PhysicalSciences,
	Law,
	EducationStudies,
	MedicalSciences,
	Other,
}

// ParseEducation matches s against the known categories ignoring case and
// surrounding whitespace.
func ParseEducation(s string) (Education, error) {
	s = strings.TrimSpace(s)
	for _, e := range Educations {
		if strings.EqualFold(string(e), s) {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEducation, s)
}

// EducationLabels returns the categories as plain strings for select prompts.
func EducationLabels() []string {
	labels := make([]string, 0, len(Educations))
	for _, e := range Educations {
		labels = append(labels, string(e))
	}
	return labels
}

func (e Education) Lower() string {
	return strings.ToLower(string(e))
}

// Words returns the whitespace separated words of the lowercased category.
func (e Education) Words() []string {
	return strings.Fields(e.Lower())
}
