package seo

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	Locale      string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}
