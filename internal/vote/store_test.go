package vote

import "testing"

// Note: These tests require a running Postgres database
// Run: docker-compose up -d postgres
// Skip tests if DATABASE_URL is not set

func TestStore_InsertAssignsSequentialIDs(t *testing.T) {
	t.Skip("Requires database - run manually with docker-compose up")

	// Insert two votes; ids must be strictly increasing so the
	// /votes.json "from" offset math holds.
}

func TestStore_StatsZeroFillsTally(t *testing.T) {
	t.Skip("Requires database - run manually with docker-compose up")

	// With votes only for editor 1, Stats must still list editor 2
	// with count 0, in directory order.
}

func TestStore_RangeFilters(t *testing.T) {
	t.Skip("Requires database - run manually with docker-compose up")

	// Range with From/To/Editor set must apply all filters and
	// return rows in ascending id order.
}
