package entity

import (
	"encoding/json"
)

type SearchHistoryItem struct {
	ID        string `json:"id"`
	Keyword   string `json:"keyword"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds, last use
}

// SearchHistory is the durable form of the history list, newest first.
type SearchHistory []SearchHistoryItem

// Для сериализации в Redis
func (h SearchHistory) MarshalBinary() ([]byte, error) {
	return json.Marshal(h)
}

func (h *SearchHistory) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, h)
}

type AddHistoryRequest struct {
	Keyword string `json:"keyword"`
}

type HistoryResponse struct {
	Items []SearchHistoryItem `json:"items"`
	Total int                 `json:"total"`
}
