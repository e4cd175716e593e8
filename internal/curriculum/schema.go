package curriculum

// Document is the top-level JSON curriculum structure. Starter entries are
// numbered 1-7; month entries carry absolute day numbers.
type Document struct {
	StarterPack map[string][]Entry `json:"starter_pack"`
	Month1      SharedMonth        `json:"month_1"`
	Month2      Month2Tracks       `json:"month_2"`
	Month3      OrderTracks        `json:"month_3"`
	Month4      OrderTracks        `json:"month_4"`
}

type Entry struct {
	Day       int    `json:"day"`
	Scripture string `json:"scripture,omitempty"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	Challenge string `json:"challenge,omitempty"`
	URL       string `json:"url,omitempty"`
}

type SharedMonth struct {
	Days []Entry `json:"days"`
}

// Month2Tracks splits month 2 into the Aaronic "gatekeeper" and the
// Melchizedek "healer" specializations.
type Month2Tracks struct {
	Gatekeeper []Entry `json:"gatekeeper"`
	Healer     []Entry `json:"healer"`
}

type OrderTracks struct {
	Aaronic     []Entry `json:"aaronic"`
	Melchizedek []Entry `json:"melchizedek"`
}
