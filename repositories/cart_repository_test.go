package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory stand-in for the remote collection store,
// speaking the same /cart protocol.
type fakeStore struct {
	mu     sync.Mutex
	items  map[int]models.CartItem
	nextID int
	fail   bool // respond 500 to everything
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[int]models.CartItem{}, nextID: 1}
}

func (s *fakeStore) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}

		switch r.Method {
		case http.MethodGet:
			items := []models.CartItem{}
			filter := r.URL.Query().Get("productId")
			for id := 1; id < s.nextID; id++ {
				item, ok := s.items[id]
				if !ok {
					continue
				}
				if filter != "" && strconv.Itoa(item.ProductID) != filter {
					continue
				}
				items = append(items, item)
			}
			json.NewEncoder(w).Encode(items)
		case http.MethodPost:
			var item models.CartItem
			if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			item.ID = s.nextID
			s.nextID++
			s.items[item.ID] = item
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(item)
		}
	})
	mux.HandleFunc("/cart/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}

		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/cart/"))
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		if _, ok := s.items[id]; !ok {
			http.NotFound(w, r)
			return
		}

		switch r.Method {
		case http.MethodPut:
			var item models.CartItem
			if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			item.ID = id
			s.items[id] = item
			json.NewEncoder(w).Encode(item)
		case http.MethodDelete:
			delete(s.items, id)
			w.WriteHeader(http.StatusOK)
		}
	})
	return mux
}

func setupCartRepo(t *testing.T) (*RemoteCartRepository, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	server := httptest.NewServer(store.handler())
	t.Cleanup(server.Close)
	return NewCartRepository(NewRemote(server.URL, 2*time.Second)), store
}

func TestCartRepository_CreateAssignsID(t *testing.T) {
	repo, store := setupCartRepo(t)

	item := models.CartItem{ProductID: 10, Title: "Lamp", Price: 45, Quantity: 2}
	require.NoError(t, repo.Create(context.Background(), &item))
	assert.Equal(t, 1, item.ID)
	assert.Len(t, store.items, 1)
}

func TestCartRepository_ListAndUpdate(t *testing.T) {
	repo, _ := setupCartRepo(t)

	item := models.CartItem{ProductID: 10, Title: "Lamp", Price: 45, Quantity: 2}
	require.NoError(t, repo.Create(context.Background(), &item))

	item.Quantity = 7
	require.NoError(t, repo.Update(context.Background(), item))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestCartRepository_FindByProduct(t *testing.T) {
	repo, _ := setupCartRepo(t)

	item := models.CartItem{ProductID: 10, Title: "Lamp", Price: 45, Quantity: 2}
	require.NoError(t, repo.Create(context.Background(), &item))

	found, err := repo.FindByProduct(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	_, err = repo.FindByProduct(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartRepository_DeleteMissingIsNotFound(t *testing.T) {
	repo, _ := setupCartRepo(t)

	err := repo.Delete(context.Background(), 123)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartRepository_ServerErrorSurfaces(t *testing.T) {
	repo, store := setupCartRepo(t)
	store.mu.Lock()
	store.fail = true
	store.mu.Unlock()

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
