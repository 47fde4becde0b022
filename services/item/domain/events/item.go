// Package events defines the messages the item context publishes.
package events

// TopicItemCreated carries ItemCreatedEvent messages.
const TopicItemCreated = "item.created"

// ItemCreatedEvent is published after a new item row is committed. The
// worker uses it to warm the item cache.
type ItemCreatedEvent struct {
	EventID     string `json:"event_id"`
	ItemID      int64  `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	RequestID   *int64 `json:"request_id,omitempty"`
}
