package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	RoomCodeLength   = 4
)

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateGameID - generates a room code players can read out to each other.
// Look-alike characters (0/O, 1/I) are left out of the alphabet.
func GenerateGameID() (string, error) {
	code := make([]byte, RoomCodeLength)
	limit := big.NewInt(int64(len(roomCodeAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}

		code[i] = roomCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}

// IsRoomCode reports whether value could have been produced by GenerateGameID.
func IsRoomCode(value string) bool {
	if len(value) != RoomCodeLength {
		return false
	}

	for i := range len(value) {
		if !containsByte(roomCodeAlphabet, value[i]) {
			return false
		}
	}

	return true
}

func containsByte(s string, b byte) bool {
	for i := range len(s) {
		if s[i] == b {
			return true
		}
	}

	return false
}
