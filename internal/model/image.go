package model

// Image is a stored raster image. Width, Height and NumberOfChannels are
// measured from the decoded file content, never taken from the client.
type Image struct {
	ID               int64  `json:"id"`
	Location         string `json:"location"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	NumberOfChannels int    `json:"number_of_channels"`
}

func (Image) Kind() string { return "images" }
func (Image) record()      {}
