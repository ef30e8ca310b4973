package company

import (
	"github.com/phrazzld/companies-api/internal/store"
)

// Field names of a company document.
const (
	FieldName              = "name"
	FieldNumberOfEmployees = "number_of_employees"
	FieldFoundedYear       = "founded_year"
	FieldIPO               = "ipo"
	FieldIPOValuation      = "ipo.valuation_amount"
)

// PathPrefix is the mount point of every company route.
const PathPrefix = "/companies"

// Route is one fixed query endpoint.
type Route struct {
	// Name identifies the route in logs and metrics.
	Name string
	// Path is relative to PathPrefix.
	Path  string
	Query store.Query
}

// FullPath returns the path including PathPrefix.
func (r Route) FullPath() string {
	return PathPrefix + r.Path
}

// Routes returns the route table. The returned slice is freshly built so
// callers may not alter the shared definitions.
func Routes() []Route {
	return []Route{
		{
			Name: "babelgum",
			Path: "/babelgum",
			Query: store.Query{
				Filter:     []store.Condition{store.Eq(FieldName, "Babelgum")},
				Projection: []string{FieldName},
			},
		},
		{
			Name: "employees-more-than-5000",
			Path: "/employees-more-than-5000",
			Query: store.Query{
				Filter: []store.Condition{store.Gt(FieldNumberOfEmployees, 5000)},
				Sort:   []store.SortKey{store.Asc(FieldNumberOfEmployees)},
				Limit:  20,
			},
		},
		{
			Name: "founded-2000-2005",
			Path: "/founded-2000-2005",
			Query: store.Query{
				Filter: []store.Condition{
					store.Gte(FieldFoundedYear, 2000),
					store.Lte(FieldFoundedYear, 2005),
				},
				Projection: []string{FieldName, FieldFoundedYear},
			},
		},
		{
			Name: "ipo-more-than-100m",
			Path: "/ipo-more-than-100m",
			Query: store.Query{
				Filter: []store.Condition{
					store.Gt(FieldIPOValuation, 100000000),
					store.Lt(FieldFoundedYear, 2010),
				},
				Projection: []string{FieldName, FieldIPO},
			},
		},
		{
			Name: "employees-less-than-1000",
			Path: "/employees-less-than-1000",
			Query: store.Query{
				Filter: []store.Condition{
					store.Lt(FieldNumberOfEmployees, 1000),
					store.Lt(FieldFoundedYear, 2005),
				},
				Sort:  []store.SortKey{store.Asc(FieldNumberOfEmployees)},
				Limit: 10,
			},
		},
	}
}

// Lookup returns the route with the given name.
func Lookup(name string) (Route, bool) {
	for _, r := range Routes() {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
