package redis

import (
	"fmt"

	"github.com/mkondo/goban/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "goban"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// openGamesIndexKey returns the Redis key for the SET of games awaiting an opponent
func openGamesIndexKey() string {
	return fmt.Sprintf("%s:idx:open_games", keyPrefix)
}
