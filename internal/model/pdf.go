package model

// PDF is a stored PDF document. Width and Height come from the media box of
// the first page.
type PDF struct {
	ID            int64   `json:"id"`
	Location      string  `json:"location"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	NumberOfPages int     `json:"number_of_pages"`
}

func (PDF) Kind() string { return "pdfs" }
func (PDF) record()      {}
