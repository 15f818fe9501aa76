package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ammusto/khazain-browser/internal/fetch"
	"github.com/ammusto/khazain-browser/internal/fetch/mocks"
)

const metadataCSV = "unique_id,categories,titles,author,shuhras,death_date,century\n" +
	`1001,"[""fiqh""]","[""Kitab A""]",Author A,"[]",1054,11th` + "\n" +
	`1002,"[""hadith""]","[""Kitab B""]",Author B,"[]",,` + "\n"

func TestStore_ManuscriptsMemoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFetcher := mocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchText(gomock.Any(), "manuscript_metadata.csv").
		Return(metadataCSV, nil).
		Times(1)

	store := NewStore(mockFetcher, discardLogger())
	ctx := context.Background()

	first, err := store.Manuscripts(ctx)
	if err != nil {
		t.Fatalf("Manuscripts() error = %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("Manuscripts() returned %d records, want 2", len(first))
	}

	// Second call must come from cache; the mock enforces a single fetch.
	second, err := store.Manuscripts(ctx)
	if err != nil {
		t.Fatalf("Manuscripts() second call error = %v", err)
	}
	if &first[0] != &second[0] {
		t.Error("Manuscripts() did not return the cached slice")
	}
}

func TestStore_ManuscriptsLoadFailureNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFetcher := mocks.NewMockFetcher(ctrl)
	gomock.InOrder(
		mockFetcher.EXPECT().
			FetchText(gomock.Any(), "manuscript_metadata.csv").
			Return("", errors.New("transport down")),
		mockFetcher.EXPECT().
			FetchText(gomock.Any(), "manuscript_metadata.csv").
			Return(metadataCSV, nil),
	)

	store := NewStore(mockFetcher, discardLogger())
	ctx := context.Background()

	if _, err := store.Manuscripts(ctx); err == nil {
		t.Fatal("Manuscripts() expected error on failed fetch, got nil")
	}

	// A failed load caches nothing; the retry reaches the fetcher again.
	ms, err := store.Manuscripts(ctx)
	if err != nil {
		t.Fatalf("Manuscripts() retry error = %v", err)
	}
	if len(ms) != 2 {
		t.Errorf("Manuscripts() retry returned %d records, want 2", len(ms))
	}
}

func TestStore_MissingChunkCachedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFetcher := mocks.NewMockFetcher(ctrl)
	// The missing chunk is fetched exactly once; the empty result is a
	// permanent cache entry, not a retry loop.
	mockFetcher.EXPECT().
		FetchText(gomock.Any(), "chunks/locations_2.csv").
		Return("", fetch.ErrNotFound).
		Times(1)

	store := NewStore(mockFetcher, discardLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if got := store.Locations(ctx, "1500"); len(got) != 0 {
			t.Fatalf("Locations() = %v, want empty for missing chunk", got)
		}
	}
}

func TestStore_UnreadableChunkTreatedAsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFetcher := mocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchText(gomock.Any(), "chunks/locations_1.csv").
		Return("", errors.New("permission denied")).
		Times(1)

	store := NewStore(mockFetcher, discardLogger())

	if got := store.Locations(context.Background(), "12"); len(got) != 0 {
		t.Errorf("Locations() = %v, want empty for unreadable chunk", got)
	}
	// Cached: no second fetch expected.
	if got := store.Locations(context.Background(), "15"); len(got) != 0 {
		t.Errorf("Locations() = %v, want empty on cached chunk", got)
	}
}
