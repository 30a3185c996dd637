package models

// OMDbSearchResult represents an OMDb search response.
// Response is "True" on a hit and "False" on a miss.
type OMDbSearchResult struct {
	Search       []OMDbMatch `json:"Search"`
	TotalResults string      `json:"totalResults"`
	Response     string      `json:"Response"`
	Error        string      `json:"Error"`
}

// OMDbMatch is a single candidate from an OMDb search
type OMDbMatch struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// OMDbSeries is the full OMDb detail record for a series.
// Numeric fields arrive as strings and use the literal "N/A" for
// missing values.
type OMDbSeries struct {
	Title        string       `json:"Title"`
	Year         string       `json:"Year"`
	Rated        string       `json:"Rated"`
	Released     string       `json:"Released"`
	Runtime      string       `json:"Runtime"`
	Genre        string       `json:"Genre"`
	Plot         string       `json:"Plot"`
	Country      string       `json:"Country"`
	Awards       string       `json:"Awards"`
	Poster       string       `json:"Poster"`
	Ratings      []OMDbRating `json:"Ratings"`
	Metascore    string       `json:"Metascore"`
	IMDBRating   string       `json:"imdbRating"`
	IMDBVotes    string       `json:"imdbVotes"`
	IMDBID       string       `json:"imdbID"`
	Type         string       `json:"Type"`
	TotalSeasons string       `json:"totalSeasons"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

// OMDbRating is one entry of the named rating sources list
// (e.g. "Internet Movie Database", "Rotten Tomatoes")
type OMDbRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}
