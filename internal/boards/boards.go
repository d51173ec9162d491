// Package boards builds direct search URLs for each job board's native
// search interface, as a complement to the Google X-ray queries.
package boards

import (
	"fmt"
	"net/url"
	"strconv"
)

const defaultRadius = 50

// Link is a direct link to a job board search.
type Link struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func Dice(title string, location string) Link {
	values := url.Values{}
	values.Set("q", title+" c2c")
	values.Set("location", location)
	values.Set("radius", strconv.Itoa(defaultRadius))
	values.Set("filters.employmentType", "CONTRACT")
	return Link{
		Platform:    "Dice",
		URL:         "https://www.dice.com/jobs?" + values.Encode(),
		Description: fmt.Sprintf("Dice: %s C2C near %s", title, location),
	}
}

func Indeed(title string, location string) Link {
	values := url.Values{}
	values.Set("q", title+" c2c corp to corp")
	values.Set("l", location)
	values.Set("radius", strconv.Itoa(defaultRadius))
	values.Set("jt", "contract")
	return Link{
		Platform:    "Indeed",
		URL:         "https://www.indeed.com/jobs?" + values.Encode(),
		Description: fmt.Sprintf("Indeed: %s C2C near %s", title, location),
	}
}

func LinkedIn(title string, location string) Link {
	values := url.Values{}
	values.Set("keywords", title+" c2c corp to corp")
	values.Set("location", defaultLocation(location))
	values.Set("f_JT", "C") // contract
	return Link{
		Platform:    "LinkedIn",
		URL:         "https://www.linkedin.com/jobs/search/?" + values.Encode(),
		Description: fmt.Sprintf("LinkedIn: %s C2C", title),
	}
}

func ZipRecruiter(title string, location string) Link {
	values := url.Values{}
	values.Set("search", title+" c2c corp to corp")
	values.Set("location", defaultLocation(location))
	return Link{
		Platform:    "ZipRecruiter",
		URL:         "https://www.ziprecruiter.com/jobs/search?" + values.Encode(),
		Description: fmt.Sprintf("ZipRecruiter: %s C2C", title),
	}
}

func Monster(title string, location string) Link {
	values := url.Values{}
	values.Set("q", title+" c2c corp to corp")
	values.Set("where", defaultLocation(location))
	return Link{
		Platform:    "Monster",
		URL:         "https://www.monster.com/jobs/search/?" + values.Encode(),
		Description: fmt.Sprintf("Monster: %s C2C", title),
	}
}

func CareerBuilder(title string, location string) Link {
	values := url.Values{}
	values.Set("keywords", title+" c2c corp to corp")
	values.Set("location", location)
	return Link{
		Platform:    "CareerBuilder",
		URL:         "https://www.careerbuilder.com/jobs?" + values.Encode(),
		Description: fmt.Sprintf("CareerBuilder: %s C2C", title),
	}
}

func Glassdoor(title string, location string) Link {
	values := url.Values{}
	values.Set("sc.keyword", title+" c2c corp to corp")
	values.Set("locT", "N")
	values.Set("locKeyword", defaultLocation(location))
	return Link{
		Platform:    "Glassdoor",
		URL:         "https://www.glassdoor.com/Job/jobs.htm?" + values.Encode(),
		Description: fmt.Sprintf("Glassdoor: %s C2C", title),
	}
}

func TechFetch(title string) Link {
	values := url.Values{}
	values.Set("q", title)
	values.Set("jtype", "C2C,Contract")
	return Link{
		Platform:    "TechFetch",
		URL:         "https://www.techfetch.com/job/search?" + values.Encode(),
		Description: fmt.Sprintf("TechFetch: %s C2C/contract", title),
	}
}

// All generates search links for every supported board in display order.
func All(title string, location string) []Link {
	return []Link{
		Dice(title, location),
		Indeed(title, location),
		LinkedIn(title, location),
		ZipRecruiter(title, location),
		Monster(title, location),
		CareerBuilder(title, location),
		Glassdoor(title, location),
		TechFetch(title),
	}
}

func defaultLocation(location string) string {
	if location == "" {
		return "United States"
	}
	return location
}
