package responses

type Citizenship struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
	From        string `json:"from"`
	Through     string `json:"through"`
}
