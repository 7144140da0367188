package report

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/registry-ingest/internal/domain/registry"
	"github.com/yungbote/registry-ingest/internal/platform/dbctx"
	"github.com/yungbote/registry-ingest/internal/platform/logger"
)

// fakeStore backs the repo interfaces with in-memory slices so the builder
// can be exercised without a database.
type fakeStore struct {
	files     []*registry.FileRecord
	mains     []*registry.MainRecord
	rights    []*registry.RightRecord
	restricts []*registry.RestrictRecord
	deals     []*registry.DealRecord
	parties   []*registry.DealParty
}

func (s *fakeStore) deps() Deps {
	return Deps{
		Files:     fakeFiles{s},
		Mains:     fakeMains{s},
		Rights:    fakeRights{s},
		Restricts: fakeRestricts{s},
		Deals:     fakeDeals{s},
		Parties:   fakeParties{s},
		Log:       logger.NewNop(),
	}
}

type fakeFiles struct{ s *fakeStore }

func (f fakeFiles) Upsert(dbc dbctx.Context, row *registry.FileRecord) (*registry.FileRecord, bool, error) {
	return row, true, nil
}

func (f fakeFiles) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*registry.FileRecord, error) {
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []*registry.FileRecord
	for _, r := range f.s.files {
		if _, ok := want[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMains struct{ s *fakeStore }

func (f fakeMains) Upsert(dbc dbctx.Context, row *registry.MainRecord) (*registry.MainRecord, bool, error) {
	return row, true, nil
}

func (f fakeMains) List(dbc dbctx.Context) ([]*registry.MainRecord, error) {
	out := make([]*registry.MainRecord, len(f.s.mains))
	copy(out, f.s.mains)
	return out, nil
}

type fakeRights struct{ s *fakeStore }

func (f fakeRights) Upsert(dbc dbctx.Context, row *registry.RightRecord) (*registry.RightRecord, bool, error) {
	return row, true, nil
}

func (f fakeRights) GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*registry.RightRecord, error) {
	var out []*registry.RightRecord
	for _, r := range f.s.rights {
		if containsID(mainIDs, r.MainRecordID) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeRestricts struct{ s *fakeStore }

func (f fakeRestricts) Upsert(dbc dbctx.Context, row *registry.RestrictRecord) (*registry.RestrictRecord, bool, error) {
	return row, true, nil
}

func (f fakeRestricts) GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*registry.RestrictRecord, error) {
	var out []*registry.RestrictRecord
	for _, r := range f.s.restricts {
		if containsID(mainIDs, r.MainRecordID) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDeals struct{ s *fakeStore }

func (f fakeDeals) Upsert(dbc dbctx.Context, row *registry.DealRecord) (*registry.DealRecord, bool, error) {
	return row, true, nil
}

func (f fakeDeals) GetByMainRecordIDs(dbc dbctx.Context, mainIDs []uuid.UUID) ([]*registry.DealRecord, error) {
	var out []*registry.DealRecord
	for _, d := range f.s.deals {
		if containsID(mainIDs, d.MainRecordID) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeParties struct{ s *fakeStore }

func (f fakeParties) Upsert(dbc dbctx.Context, row *registry.DealParty) (*registry.DealParty, bool, error) {
	return row, true, nil
}

func (f fakeParties) GetByDealRecordIDs(dbc dbctx.Context, dealIDs []uuid.UUID) ([]*registry.DealParty, error) {
	var out []*registry.DealParty
	for _, p := range f.s.parties {
		if containsID(dealIDs, p.DealRecordID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// populated builds one parcel with two deals and three restrictions plus a
// second parcel with no children at all.
func populated() *fakeStore {
	file := &registry.FileRecord{ID: uuid.New(), RegistrationNumber: "99/2023/1", SourceFile: "doc_1.xml"}
	main := &registry.MainRecord{
		ID:           uuid.New(),
		FileRecordID: file.ID,
		CadNumber:    "77:01:0001001:10",
	}
	bare := &registry.MainRecord{
		ID:           uuid.New(),
		FileRecordID: file.ID,
		CadNumber:    "77:01:0001001:99",
	}

	right := &registry.RightRecord{
		ID:               uuid.New(),
		MainRecordID:     main.ID,
		RightNumber:      "77-1",
		RightType:        "Ownership",
		RegistrationDate: day(2020, 3, 15),
		Holders:          datatypes.JSON(`[{"name":"Developer LLC","inn":"7701234567"},{"name":"Developer LLC","inn":"7701234567"}]`),
	}

	dealA := &registry.DealRecord{
		ID:               uuid.New(),
		MainRecordID:     main.ID,
		DealNumber:       "deal-a",
		RegistrationDate: day(2021, 1, 10),
	}
	dealB := &registry.DealRecord{
		ID:               uuid.New(),
		MainRecordID:     main.ID,
		DealNumber:       "deal-b",
		RegistrationDate: day(2021, 2, 20),
	}
	party := &registry.DealParty{
		ID:             uuid.New(),
		DealRecordID:   dealA.ID,
		PartyTypeValue: "Participant",
		PartyInfo:      "Ivanov Ivan Ivanovich",
	}

	store := &fakeStore{
		files:   []*registry.FileRecord{file},
		mains:   []*registry.MainRecord{bare, main},
		rights:  []*registry.RightRecord{right},
		deals:   []*registry.DealRecord{dealB, dealA},
		parties: []*registry.DealParty{party},
	}
	for i, num := range []string{"restr-3", "restr-1", "restr-2"} {
		store.restricts = append(store.restricts, &registry.RestrictRecord{
			ID:                uuid.New(),
			MainRecordID:      main.ID,
			RestrictionNumber: num,
			RegistrationDate:  day(2021, 6, 20+i),
		})
	}
	return store
}

func TestBuildCrossJoin(t *testing.T) {
	store := populated()
	rows, err := NewBuilder(store.deps()).Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 deals x 3 restrictions for the first parcel, one blank row for the
	// childless parcel.
	if len(rows) != 7 {
		t.Fatalf("rows: want=7 got=%d", len(rows))
	}
	for i, r := range rows {
		if r.RowNumber != i+1 {
			t.Fatalf("row %d numbered %d", i, r.RowNumber)
		}
	}

	first := rows[0]
	if first.DealNumber != "deal-a" || first.RestrictionNumber != "restr-3" {
		t.Fatalf("first row pairing: deal=%q restriction=%q", first.DealNumber, first.RestrictionNumber)
	}
	if first.DealParties != "Participant: Ivanov Ivan Ivanovich" {
		t.Fatalf("deal parties: got=%q", first.DealParties)
	}
	if first.HolderNames != "Developer LLC" || first.HolderINNs != "7701234567" {
		t.Fatalf("holder summary not deduplicated: names=%q inns=%q", first.HolderNames, first.HolderINNs)
	}
	if rows[3].DealNumber != "deal-b" {
		t.Fatalf("fourth row deal: got=%q", rows[3].DealNumber)
	}

	last := rows[6]
	if last.CadNumber != "77:01:0001001:99" {
		t.Fatalf("last row parcel: got=%q", last.CadNumber)
	}
	if last.DealNumber != "" || last.RestrictionNumber != "" {
		t.Fatalf("childless parcel row not blank: deal=%q restriction=%q", last.DealNumber, last.RestrictionNumber)
	}
}

func TestBuildRestrictionsOnly(t *testing.T) {
	store := populated()
	store.deals = nil
	store.parties = nil

	rows, err := NewBuilder(store.deps()).Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 restriction rows plus the childless parcel.
	if len(rows) != 4 {
		t.Fatalf("rows: want=4 got=%d", len(rows))
	}
	for _, r := range rows[:3] {
		if r.DealNumber != "" || r.DealParties != "" {
			t.Fatalf("deal fields not blank: %+v", r)
		}
	}
	wantOrder := []string{"restr-3", "restr-1", "restr-2"}
	for i, want := range wantOrder {
		if rows[i].RestrictionNumber != want {
			t.Fatalf("restriction order at %d: want=%q got=%q", i, want, rows[i].RestrictionNumber)
		}
	}
}

func TestBuildDealsOnly(t *testing.T) {
	store := populated()
	store.restricts = nil

	rows, err := NewBuilder(store.deps()).Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: want=3 got=%d", len(rows))
	}
	if rows[0].DealNumber != "deal-a" || rows[1].DealNumber != "deal-b" {
		t.Fatalf("deal order: got=%q,%q", rows[0].DealNumber, rows[1].DealNumber)
	}
	if rows[0].RestrictionNumber != "" {
		t.Fatalf("restriction fields not blank: %+v", rows[0])
	}
}

func TestBuildEmptyDatabase(t *testing.T) {
	rows, err := NewBuilder((&fakeStore{}).deps()).Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows: want=0 got=%d", len(rows))
	}
}

func TestBuildDeterministic(t *testing.T) {
	store := populated()
	b := NewBuilder(store.deps())

	first, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("consecutive builds over the same data differ")
	}
}
