package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// randomHex returns uppercase hex from a random UUID, version nibble excluded.
func randomHex(n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:n])
}

// NewConfirmationID produces ids like RES3F9A0C2E1.
func NewConfirmationID() string {
	return "RES" + randomHex(9)
}

// NewOrderNumber produces ids like ORD482913A7F2: the last six digits of the
// millisecond clock followed by four random hex characters.
func NewOrderNumber() string {
	millis := fmt.Sprintf("%06d", time.Now().UnixMilli()%1_000_000)
	return "ORD" + millis + randomHex(4)
}
