package tracks

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/valeevte/PriceTracker/internal/database"
)

// testStore прогоняет общие проверки для любой реализации Store
func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("unknown email is empty", func(t *testing.T) {
		got, err := s.ListByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("ListByEmail: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("got %#v, want empty non-nil slice", got)
		}
	})

	t.Run("create sets defaults", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Second)
		tr, err := s.Create(ctx, "https://shop.example/p/1", "a@example.com", 500)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if tr.ID == "" {
			t.Error("ID is empty")
		}
		if tr.Price != 500 || tr.AlertSent {
			t.Errorf("got price=%v alertSent=%v", tr.Price, tr.AlertSent)
		}
		if tr.LastChecked.Before(before) {
			t.Errorf("LastChecked %v before %v", tr.LastChecked, before)
		}
	})

	t.Run("read back equals created", func(t *testing.T) {
		created, err := s.Create(ctx, "https://shop.example/p/9", "c@example.com", 42.5)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		got, err := s.ListByEmail(ctx, "c@example.com")
		if err != nil {
			t.Fatalf("ListByEmail: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d records, want 1", len(got))
		}
		if !got[0].LastChecked.Equal(created.LastChecked) {
			t.Errorf("LastChecked read back %v, created %v", got[0].LastChecked, created.LastChecked)
		}
		if got[0].ID != created.ID || got[0].Price != created.Price || got[0].URL != created.URL {
			t.Errorf("read back %+v, created %+v", got[0], created)
		}
		if created.LastChecked.Nanosecond()%1000 != 0 {
			t.Errorf("LastChecked %v has sub-microsecond precision", created.LastChecked)
		}
	})

	t.Run("list returns every submission in order", func(t *testing.T) {
		email := "b@example.com"
		urls := []string{"https://shop.example/p/1", "https://shop.example/p/2", "https://shop.example/p/1"}
		var ids []string
		for i, u := range urls {
			tr, err := s.Create(ctx, u, email, float64(100*(i+1)))
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			ids = append(ids, tr.ID)
		}
		if _, err := s.Create(ctx, urls[0], "other@example.com", 1); err != nil {
			t.Fatalf("Create: %v", err)
		}

		got, err := s.ListByEmail(ctx, email)
		if err != nil {
			t.Fatalf("ListByEmail: %v", err)
		}
		if len(got) != len(urls) {
			t.Fatalf("got %d records, want %d", len(got), len(urls))
		}
		for i, tr := range got {
			if tr.ID != ids[i] || tr.URL != urls[i] || tr.Email != email || tr.Price != float64(100*(i+1)) {
				t.Errorf("record %d = %+v", i, tr)
			}
			if tr.AlertSent {
				t.Errorf("record %d has alertSent", i)
			}
		}
		if got[0].ID == got[2].ID {
			t.Error("duplicate url/email should get distinct ids")
		}
	})
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStoreZeroValue(t *testing.T) {
	var m MemoryStore
	if _, err := m.Create(context.Background(), "https://shop.example/p", "z@example.com", 1); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := m.ListByEmail(context.Background(), "z@example.com")
	if err != nil || len(got) != 1 {
		t.Fatalf("got %v, %v; want one record", got, err)
	}
}

func TestGormStoreSQLite(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()
	testStore(t, s)
}

func TestRepositoryPostgres(t *testing.T) {
	cfg := database.NewDBConfigFromEnv()
	if os.Getenv("TEST_POSTGRES") == "" || cfg.Validate() != nil {
		t.Skip("set TEST_POSTGRES=1 and DB_* to run against postgres")
	}
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE track_requests`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	repo := NewRepository(pool)
	defer repo.Close()
	testStore(t, repo)
}
