package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var avatarColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// GenerateAvatarWithInitials returns a DiceBear avatar URL seeded with
// the user's initials on a random background color.
func GenerateAvatarWithInitials(initials string) string {
	colorIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(avatarColors))))
	color := avatarColors[colorIndex.Int64()]

	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s&backgroundColor=%s",
		initials, color)
}

// GetInitialsFromName extracts up to two initials from a full name.
func GetInitialsFromName(name string) string {
	if name == "" {
		return "U"
	}

	runes := []rune(name)
	initials := string(runes[0])

	for i, char := range runes {
		if char == ' ' && i+1 < len(runes) {
			initials += string(runes[i+1])
			break
		}
	}

	if len([]rune(initials)) == 1 {
		initials += initials
	}

	return initials
}
