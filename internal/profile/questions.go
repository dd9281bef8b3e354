package profile

// UniversitiesURL points to the world university rankings suggested for further education.
const UniversitiesURL = "https://www.4icu.org/top-universities-world/"

// AdditionalQuestions are asked when the user wants a more accurate analysis.
var AdditionalQuestions = []string{
	"What subjects do you enjoy learning about the most, and why?",
	"What activities or hobbies do you find most engaging and meaningful outside of school?",
	"Can you describe a perfect day in your dream career? What tasks would you be doing?",
	"Are you more inclined towards working independently or as part of a team?",
	"Do you prefer structured schedules or flexibility in your work?",
	"What values are most important to you in a career (e.g., creativity, stability, helping others)?",
	"How important is financial stability to you in your future career?",
	"Are you interested in pursuing a career that involves working with people, technology, or the environment?",
	"Would you prefer a career with a clear progression path or one with more entrepreneurial freedom?",
	"What problems or challenges do you want to solve or address through your career?",
}
