package cmd

import (
	"fmt"
	"io"

	"github.com/spigell/career-compass/internal/export"
	"github.com/spigell/career-compass/internal/recommend"
)

const (
	msgJobsFallback = "No specific job recommendations found matching your profile.\nHere are some general job recommendations:"
	msgNoJobs       = "The jobs dataset is empty, there is nothing to recommend."

	msgCoursesFallback = "No specific course recommendations found matching your interests.\nHere are some general course recommendations aligned with your profile:"
	msgNoCourses       = "Consider exploring courses in fields related to your educational background or technical skills."
)

// render prints the report the way a person reads it in a terminal.
func render(w io.Writer, r *export.Report) {
	fmt.Fprintln(w, "Job Recommendations")
	switch r.Jobs.Outcome {
	case recommend.OutcomeEmpty:
		fmt.Fprintln(w, msgNoJobs)
	case recommend.OutcomeFallback:
		fmt.Fprintln(w, msgJobsFallback)
		fallthrough
	default:
		for i, job := range r.Jobs.Jobs {
			fmt.Fprintf(w, "%d. %s\n", i+1, job.Title)
			if job.Description != "" {
				fmt.Fprintf(w, "   %s\n", job.Description)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recommended Courses")
	switch r.Courses.Outcome {
	case recommend.OutcomeEmpty:
		fmt.Fprintln(w, msgCoursesFallback)
		fmt.Fprintln(w, msgNoCourses)
	case recommend.OutcomeFallback:
		fmt.Fprintln(w, msgCoursesFallback)
		fallthrough
	default:
		for _, course := range r.Courses.Courses {
			if course.Link == "" {
				fmt.Fprintf(w, "- %s\n", course.Name)
				continue
			}
			fmt.Fprintf(w, "- %s (%s)\n", course.Name, course.Link)
		}
	}

	if r.Advice != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Advice")
		fmt.Fprintln(w, r.Advice)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Universities")
	fmt.Fprintf(w, "For further education, you can explore the top universities worldwide: %s\n", r.UniversitiesURL)
}
