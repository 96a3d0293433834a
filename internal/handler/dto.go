package handler

type ArticleResponse struct {
	ID        string  `json:"id,omitempty"`
	Title     string  `json:"title"`
	Link      string  `json:"link"`
	Summary   string  `json:"summary"`
	Published *string `json:"published"`
	Source    string  `json:"source"`
}

type TrendResponse struct {
	TrendName        string            `json:"trend_name"`
	Explanation      string            `json:"explanation"`
	RelevantArticles []ArticleResponse `json:"relevant_articles"`
}

type TrendsResponse struct {
	Trends           []TrendResponse `json:"trends"`
	ArticleCount     int             `json:"article_count"`
	PreliminaryCount int             `json:"preliminary_count"`
	HoursBack        int             `json:"hours_back"`
	BatchSize        int             `json:"batch_size"`
	GeneratedAt      string          `json:"generated_at"`
}

type RunResponse struct {
	ID               int64  `json:"id"`
	HoursBack        int    `json:"hours_back"`
	BatchSize        int    `json:"batch_size"`
	ArticleCount     int    `json:"article_count"`
	BatchCount       int    `json:"batch_count"`
	PreliminaryCount int    `json:"preliminary_count"`
	TrendCount       int    `json:"trend_count"`
	Status           string `json:"status"`
	ErrorMessage     string `json:"error_message,omitempty"`
	DurationMS       int64  `json:"duration_ms"`
	CreatedAt        string `json:"created_at"`
}

type RunsResponse struct {
	Runs   []RunResponse `json:"runs"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
