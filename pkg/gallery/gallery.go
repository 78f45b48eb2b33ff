package gallery

import "time"

// Photo is gallery metadata only; the image bytes live in external storage
// addressed by Url.
type Photo struct {
	Id        int
	WeddingId int
	// SubEventId ties the photo to one celebration, 0 for the whole wedding.
	SubEventId int
	Url        string
	Caption    string
	UploadedAt time.Time
}
