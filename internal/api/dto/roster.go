package dto

type EngineerResponse struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

type ListEngineersResponse struct {
	Engineers []EngineerResponse `json:"engineers"`
}

type JobResponse struct {
	ID             int      `json:"id"`
	Location       string   `json:"location"`
	Time           string   `json:"time"`
	RequiredSkills []string `json:"required_skills"`
}

type ListJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}
