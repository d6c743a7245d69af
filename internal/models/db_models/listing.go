package db_models

// ListingKind discriminates the two listing variants wherever a record
// points at "a venue or a service" (favorites, inquiries).
type ListingKind string

const (
	KindVenue   ListingKind = "venue"
	KindService ListingKind = "service"
)

func (k ListingKind) Valid() bool {
	return k == KindVenue || k == KindService
}

// ListingStatus is the listing lifecycle. Retired listings stay in the
// database but are excluded from public search and lists.
type ListingStatus string

const (
	StatusActive  ListingStatus = "active"
	StatusRetired ListingStatus = "retired"
)
