// Package store holds the five read-only collections the knowledge service
// answers from. Every collection is loaded once at startup and never mutated,
// so the query methods are safe for concurrent use without locking.
package store

import (
	"github.com/frdeange/apitoolsnetworking/internal/models"
	"github.com/frdeange/apitoolsnetworking/internal/normalize"
)

// SiteDirectory answers "sites whose location relates to X".
type SiteDirectory struct {
	sites []siteEntry
}

type siteEntry struct {
	site     models.Site
	location string // normalized once at load
	name     string // normalized site name
}

// NewSiteDirectory builds a directory over the supplied sites, preserving
// their order.
func NewSiteDirectory(sites []models.Site) *SiteDirectory {
	entries := make([]siteEntry, 0, len(sites))
	for _, s := range sites {
		entries = append(entries, siteEntry{
			site:     s,
			location: normalize.Location(s.Location),
			name:     normalize.Location(s.SiteName),
		})
	}
	return &SiteDirectory{sites: entries}
}

// Near returns sites related to the normalized query. A site matches on its
// location text or on its name: stored addresses are descriptive ("Plaza del
// Ayuntamiento, Valencia") while the name carries the district label
// ("Valencia Centro - Ayuntamiento") a short query tends to use. An empty
// query returns every site.
func (d *SiteDirectory) Near(location string) []models.Site {
	query := normalize.Location(location)
	matched := make([]models.Site, 0, len(d.sites))
	for _, entry := range d.sites {
		if normalize.Matches(entry.location, query) || normalize.Matches(entry.name, query) {
			matched = append(matched, entry.site)
		}
	}
	return matched
}

// All returns every site in load order.
func (d *SiteDirectory) All() []models.Site {
	return d.Near("")
}

// Len reports the number of sites in the directory.
func (d *SiteDirectory) Len() int { return len(d.sites) }
