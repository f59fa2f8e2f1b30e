package domain

// Score holds the four judging criteria, each worth up to MaxCriterionScore points.
type Score struct {
	Innovation   int `json:"innovation"`
	Technical    int `json:"technical"`
	Presentation int `json:"presentation"`
	Impact       int `json:"impact"`
}

// MaxCriterionScore is the upper bound of every criterion.
const MaxCriterionScore = 25

// Project is a team's submission as seen by a judge.
type Project struct {
	ID           EntityID `json:"id"`
	TeamName     string   `json:"teamName"`
	ProjectName  string   `json:"projectName"`
	Description  string   `json:"description"`
	GithubRepo   string   `json:"githubRepo"`
	DemoLink     string   `json:"demoLink"`
	Presentation string   `json:"presentation"`
	Scores       Score    `json:"scores"`
	Feedback     string   `json:"feedback"`
}

// ScoreSubmission is the body of POST /api/projects/:id/scores.
type ScoreSubmission struct {
	Scores   Score  `json:"scores"`
	Total    int    `json:"total"`
	Feedback string `json:"feedback"`
}

// ProjectSubmission is a participant's project hand-in.
type ProjectSubmission struct {
	Description  string `json:"description"`
	GithubRepo   string `json:"githubRepo"`
	DemoLink     string `json:"demoLink"`
	Presentation string `json:"presentation"`
}
