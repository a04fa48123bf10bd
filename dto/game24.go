package dto

type NewGameRequest struct {
	Mode         string `json:"mode"` // "24" 或 "60"，默认 "24"
	OnlySolvable bool   `json:"only_solvable"`
}

type NewGameResponse struct {
	GameID      string   `json:"game_id"`
	Mode        string   `json:"mode"`
	Cards       []string `json:"cards"`
	Target      int      `json:"target"`
	HasSolution bool     `json:"has_solution"`
	Solutions   []string `json:"solutions"`
}

type VerifyRequest struct {
	Expression string   `json:"expression" binding:"required"`
	GameID     string   `json:"game_id"`
	Cards      []string `json:"cards"`
	Target     int      `json:"target"`
}

type VerifyResponse struct {
	Correct    bool     `json:"correct"`
	Expression string   `json:"expression"`
	Cards      []string `json:"cards"`
	Target     int      `json:"target"`
}

type SolutionsRequest struct {
	Cards  []string `json:"cards" binding:"required"`
	Target int      `json:"target" binding:"required"`
}

type SolutionsResponse struct {
	Solutions   []string `json:"solutions"`
	HasSolution bool     `json:"has_solution"`
}

type GameInfo struct {
	GameID    string   `json:"game_id"`
	Mode      string   `json:"mode"`
	Cards     []string `json:"cards"`
	Target    int      `json:"target"`
	CreatedAt int64    `json:"created_at"`
}
