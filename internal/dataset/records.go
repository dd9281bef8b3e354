package dataset

const (
	ColumnJobTitle       = "Job Title"
	ColumnJobDescription = "Job Description"
	ColumnQualifications = "Qualifications"
	ColumnSkills         = "skills"
	ColumnRole           = "Role"

	ColumnCourseName = "Course Name"
	ColumnCourseLink = "Links"
)

// JobRecord is one row of the job postings dataset.
type JobRecord struct {
	Title          string `column:"Job Title" json:"title"`
	Description    string `column:"Job Description" json:"description"`
	Qualifications string `column:"Qualifications" json:"qualifications"`
	Skills         string `column:"skills" json:"skills"`
	Role           string `column:"Role" json:"role"`
}

// CourseRecord is one row of the courses dataset.
type CourseRecord struct {
	Name string `column:"Course Name" json:"name"`
	Link string `column:"Links" json:"link"`
}

var (
	jobColumns    = []string{ColumnJobTitle, ColumnJobDescription, ColumnQualifications, ColumnSkills, ColumnRole}
	courseColumns = []string{ColumnCourseName, ColumnCourseLink}
)

type Jobs struct {
	Items []JobRecord
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

// Titles returns the job titles in dataset order, duplicates included.
func (j *Jobs) Titles() []string {
	titles := make([]string, 0, len(j.Items))
	for _, job := range j.Items {
		titles = append(titles, job.Title)
	}
	return titles
}

type Courses struct {
	Items []CourseRecord
}

func (c *Courses) Len() int {
	return len(c.Items)
}

func (c *Courses) Names() []string {
	names := make([]string, 0, len(c.Items))
	for _, course := range c.Items {
		names = append(names, course.Name)
	}
	return names
}
