package ticket

import (
	"fmt"
	"strings"
)

const recallPrefix = "Panggilan ulang, "

// AnnouncementText is what gets spoken when a ticket is called to a counter.
// The number is spelled out one character at a time.
func AnnouncementText(displayNumber string, counter int, recall bool) string {
	spelled := strings.Join(strings.Split(displayNumber, ""), " ")
	text := fmt.Sprintf("Nomor Antrian %s, silakan menuju ke loket %d", spelled, counter)
	if recall {
		return recallPrefix + text
	}
	return text
}
