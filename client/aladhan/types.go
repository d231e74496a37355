package aladhan

// calendarResponse is the top-level envelope of the calendarByAddress
// endpoint: one data object per day of the requested month.
type calendarResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   []Day  `json:"data"`
}

// Day holds one day's worth of calendar data.
//
// Timings is kept as a plain map rather than a struct: the API returns more
// keys than we consume (Sunset, Imsak, Midnight, thirds of the night), and a
// missing key needs to stay distinguishable from an empty value downstream.
type Day struct {
	Timings map[string]string `json:"timings"`
	Date    DateInfo          `json:"date"`
	Meta    Meta              `json:"meta"`
}

type DateInfo struct {
	Readable  string        `json:"readable"` // e.g. "01 Jan 2024"
	Gregorian GregorianDate `json:"gregorian"`
}

type GregorianDate struct {
	Date string `json:"date"` // e.g. "01-01-2024"
}

// Meta echoes back the resolved location and calculation method.
type Meta struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}
