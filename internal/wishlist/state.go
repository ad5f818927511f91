package wishlist

import (
	"encoding/json"

	"github.com/sagarmatha/storefront/internal/catalog"
)

// persistedState is the document written to the durable slot:
// the membership ids and the ordered product snapshots, together.
type persistedState struct {
	IDs   []int             `json:"ids"`
	Items []catalog.Product `json:"items"`
}

func encodeState(ids []int, items []catalog.Product) (string, error) {
	if ids == nil {
		ids = []int{}
	}
	if items == nil {
		items = []catalog.Product{}
	}
	data, err := json.Marshal(persistedState{IDs: ids, Items: items})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeState(raw string) (persistedState, error) {
	var state persistedState
	err := json.Unmarshal([]byte(raw), &state)
	return state, err
}
