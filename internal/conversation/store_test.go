package conversation

import (
	"context"
	"testing"
	"time"

	"campaignforge/internal/campaign"
	"campaignforge/internal/composer"
	"campaignforge/internal/db"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, ok, _ := store.Get(ctx, "u1"); ok {
		t.Fatal("empty store should report absence")
	}

	sess := NewSession("u1")
	sess.Context.ProductDetails = "Handmade candles"
	if err := store.Put(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Get(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Context.ProductDetails != "Handmade candles" {
		t.Errorf("context lost: %+v", got.Context)
	}

	if err := store.Delete(ctx, "u1"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, "u1"); ok {
		t.Error("session should be gone after delete")
	}
	if err := store.Delete(ctx, "u1"); err != nil {
		t.Error("deleting an absent session must not error")
	}
}

func TestMemoryStoreSweepExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	fresh := NewSession("fresh")
	stale := NewSession("stale")
	stale.LastActivity = time.Now().Add(-3 * time.Hour)
	store.Put(ctx, fresh)
	store.Put(ctx, stale)

	n, err := store.SweepExpired(ctx, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("swept %d sessions, want 1", n)
	}
	if _, ok, _ := store.Get(ctx, "stale"); ok {
		t.Error("stale session survived the sweep")
	}
	if _, ok, _ := store.Get(ctx, "fresh"); !ok {
		t.Error("fresh session was swept")
	}
}

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewSQLiteStore(database)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	sess := NewSession("u1")
	sess.State = campaign.StateGatheringInsights
	sess.Context.TargetAudience = "Students"
	sess.Context.Competitors = []string{"Acme", "Globex"}
	sess.History = []Turn{{Role: "user", Text: "hi", Timestamp: time.Now()}}
	sess.LastDocument = composer.DefaultDocument()

	if err := store.Put(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Get(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.State != campaign.StateGatheringInsights {
		t.Errorf("state = %q", got.State)
	}
	if got.Context.TargetAudience != "Students" || len(got.Context.Competitors) != 2 {
		t.Errorf("context lost: %+v", got.Context)
	}
	if len(got.History) != 1 || got.History[0].Text != "hi" {
		t.Errorf("history lost: %+v", got.History)
	}
	if got.LastDocument == nil || got.LastDocument.CampaignStrategy.Overview == "" {
		t.Error("document lost")
	}
}

func TestSQLiteStoreUpsertAndDelete(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	sess := NewSession("u1")
	if err := store.Put(ctx, sess); err != nil {
		t.Fatal(err)
	}
	sess.State = campaign.StateReadyForCampaign
	if err := store.Put(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, ok, _ := store.Get(ctx, "u1")
	if !ok || got.State != campaign.StateReadyForCampaign {
		t.Errorf("upsert failed: %+v", got)
	}

	if err := store.Delete(ctx, "u1"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, "u1"); ok {
		t.Error("session should be gone after delete")
	}
}

func TestSQLiteStoreSweepExpired(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	stale := NewSession("stale")
	stale.LastActivity = time.Now().Add(-2 * time.Hour)
	fresh := NewSession("fresh")
	store.Put(ctx, stale)
	store.Put(ctx, fresh)

	n, err := store.SweepExpired(ctx, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("swept %d, want 1", n)
	}
	if _, ok, _ := store.Get(ctx, "fresh"); !ok {
		t.Error("fresh session was swept")
	}
}
