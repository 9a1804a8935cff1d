package chathub

import (
	"encoding/json"
	"log"

	"agrismart/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// RunRedisBridge pipes chat notices published on Redis back into the
// hub for local fan-out. Every server instance runs one bridge, so a
// message published by any instance reaches members everywhere.
// Blocks until the subscription channel closes.
func RunRedisBridge(sub *redis.PubSub, hub *Hub) {
	for msg := range sub.Channel() {
		var notice models.Notice
		if err := json.Unmarshal([]byte(msg.Payload), &notice); err != nil {
			log.Printf("Error unmarshalling pub/sub payload: %v", err)
			continue
		}
		hub.PubSubCh <- notice
	}
}
