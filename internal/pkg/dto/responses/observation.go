package responses

import "time"

type Observation struct {
	ID        string    `json:"id"`
	System    string    `json:"system"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Value     float64   `json:"value"`
	Effective time.Time `json:"effective"`
}
