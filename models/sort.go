package models

// SortOrder is the ordering applied to the sort property of a search.
type SortOrder string

const (
	Ascending                      SortOrder = "ascending"
	Descending                     SortOrder = "descending"
	BestMatchesFirstThenAscending  SortOrder = "best_matches_first_then_ascending"
	BestMatchesFirstThenDescending SortOrder = "best_matches_first_then_descending"
)

// SortOrders lists every order accepted by the service.
var SortOrders = []SortOrder{
	Ascending,
	Descending,
	BestMatchesFirstThenAscending,
	BestMatchesFirstThenDescending,
}

// IsValid reports whether o is one of [SortOrders].
func (o SortOrder) IsValid() bool {
	for _, known := range SortOrders {
		if o == known {
			return true
		}
	}
	return false
}

// SortSpec selects the property and order used to sort search results.
// The zero value leaves ordering to the service.
type SortSpec struct {
	Property string
	Order    SortOrder
}

// IsZero reports whether no sort property was requested.
func (s SortSpec) IsZero() bool {
	return s.Property == ""
}

// String renders the spec in the "name:order" form expected by the sort_by
// parameter. An unset order defaults to ascending; a zero spec renders as "".
func (s SortSpec) String() string {
	if s.IsZero() {
		return ""
	}
	order := s.Order
	if order == "" {
		order = Ascending
	}
	return s.Property + ":" + string(order)
}
