package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sporttracker/sporttracker/internal/domain"
)

func TestInMemorySessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	first := openTestSession(t, InMemory)
	second := openTestSession(t, InMemory)

	if _, err := first.Notes().Create(ctx, &domain.Note{DateTime: time.Now(), Comment: "only in first"}); err != nil {
		t.Fatalf("create note: %v", err)
	}

	notes, err := second.Notes().ReadAll(ctx)
	if err != nil {
		t.Fatalf("read notes from second session: %v", err)
	}
	if notes.Len() != 0 {
		t.Fatalf("expected independent in-memory stores, second session sees %d notes", notes.Len())
	}
}

func TestInMemoryHonorsRepositoryContracts(t *testing.T) {
	ctx := context.Background()
	session := openTestSession(t, InMemory)
	seedCycling(t, ctx, session)

	sportTypes, err := session.SportTypes().ReadAll(ctx)
	if err != nil {
		t.Fatalf("read sport types: %v", err)
	}
	cycling, ok := sportTypes.ByID(1)
	if !ok {
		t.Fatalf("sport type 1 missing")
	}
	subType, _ := cycling.SubTypes.ByID(1)

	_, err = session.Exercises().Create(ctx, &domain.Exercise{
		SportType:    cycling,
		SportSubType: subType,
		DateTime:     time.Now(),
		Intensity:    domain.IntensityNormal,
	})
	if err != nil {
		t.Fatalf("create exercise in memory: %v", err)
	}
	if err := session.SportTypes().Delete(ctx, 1); !errors.Is(err, domain.ErrConstraint) {
		t.Fatalf("in-memory store must enforce delete constraints, got %v", err)
	}
}

func TestTransactionRollsBackInFull(t *testing.T) {
	ctx := context.Background()
	session := openTestSession(t, InMemory)

	boom := errors.New("boom")
	err := session.InTransaction(ctx, func(ctx context.Context, repos domain.Repositories) error {
		if _, err := repos.Notes().Create(ctx, &domain.Note{ID: 1, DateTime: time.Now(), Comment: "doomed"}); err != nil {
			return err
		}
		if _, err := repos.Weights().Create(ctx, &domain.Weight{ID: 1, DateTime: time.Now(), Value: 80}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error back, got %v", err)
	}

	notes, err := session.Notes().ReadAll(ctx)
	if err != nil {
		t.Fatalf("read notes: %v", err)
	}
	weights, err := session.Weights().ReadAll(ctx)
	if err != nil {
		t.Fatalf("read weights: %v", err)
	}
	if notes.Len() != 0 || weights.Len() != 0 {
		t.Fatalf("rollback left data behind: %d notes, %d weights", notes.Len(), weights.Len())
	}
}

func TestTransactionCommitsOnNil(t *testing.T) {
	ctx := context.Background()
	session := openTestSession(t, InMemory)

	err := session.InTransaction(ctx, func(ctx context.Context, repos domain.Repositories) error {
		_, err := repos.Notes().Create(ctx, &domain.Note{ID: 1, DateTime: time.Now(), Comment: "kept"})
		return err
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}

	notes, err := session.Notes().ReadAll(ctx)
	if err != nil {
		t.Fatalf("read notes: %v", err)
	}
	if _, ok := notes.ByID(1); !ok {
		t.Fatalf("committed note missing")
	}
}

func TestNestedTransactionRejected(t *testing.T) {
	ctx := context.Background()
	session := openTestSession(t, InMemory)

	err := session.InTransaction(ctx, func(txCtx context.Context, repos domain.Repositories) error {
		return session.InTransaction(txCtx, func(context.Context, domain.Repositories) error {
			return nil
		})
	})
	if !errors.Is(err, domain.ErrNestedTransaction) {
		t.Fatalf("expected nested transaction rejection, got %v", err)
	}
}

func TestConcurrentTransactionsSerialize(t *testing.T) {
	ctx := context.Background()
	session := openTestSession(t, InMemory)

	const workers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errCh <- session.InTransaction(ctx, func(ctx context.Context, repos domain.Repositories) error {
				_, err := repos.Notes().Create(ctx, &domain.Note{
					DateTime: time.Now(),
					Comment:  fmt.Sprintf("worker %d", i),
				})
				return err
			})
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			t.Fatalf("concurrent transaction: %v", err)
		}
	}
	notes, err := session.Notes().ReadAll(ctx)
	if err != nil {
		t.Fatalf("read notes: %v", err)
	}
	if notes.Len() != workers {
		t.Fatalf("expected %d notes, got %d", workers, notes.Len())
	}
}

func TestOpenRejectsIncompatibleSchema(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "mangled.db")

	session, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if err := session.db.Exec("ALTER TABLE weight RENAME COLUMN value TO kg").Error; err != nil {
		t.Fatalf("mangle schema: %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	_, err = Open(ctx, dbPath)
	if !errors.Is(err, domain.ErrSchema) {
		t.Fatalf("expected schema error for incompatible store, got %v", err)
	}
}

func TestSessionCloseIsIdempotentForCaller(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	session, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := session.Notes().Create(ctx, &domain.Note{ID: 1, DateTime: time.Now(), Comment: "survives"}); err != nil {
		t.Fatalf("create note: %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	notes, err := reopened.Notes().ReadAll(ctx)
	if err != nil {
		t.Fatalf("read notes: %v", err)
	}
	if _, ok := notes.ByID(1); !ok {
		t.Fatalf("note lost across close and reopen")
	}
}
