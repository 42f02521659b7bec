package model

import (
	"regexp"
	"strconv"
)

type ListItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ListPage struct {
	Count   int        `json:"count"`
	Results []ListItem `json:"results"`
}

var trailingID = regexp.MustCompile(`/(\d+)/$`)

// IDFromURL extracts the numeric id PokeAPI puts at the end of resource urls, or 0.
func IDFromURL(url string) int {
	matches := trailingID.FindStringSubmatch(url)
	if matches == nil {
		return 0
	}

	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}

	return id
}

func (item ListItem) ID() int {
	return IDFromURL(item.URL)
}

func (item ListItem) DisplayName() string {
	return DisplayName(item.Name)
}
