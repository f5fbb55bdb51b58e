package redis

import (
	"fmt"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
)

// Key prefix for all save data
const keyPrefix = "norigin"

// accountsKey returns the Redis key for the full account set
func accountsKey() string {
	return fmt.Sprintf("%s:accounts", keyPrefix)
}

// profileKey returns the Redis key for a player's profile
func profileKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}
