package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"stylist-demo/internal/domain/repositories"
)

func TestNewClientPoolService_MissingKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		if _, err := NewClientPoolService(repositories.AIClientConfig{APIKey: key}); !errors.Is(err, ErrMissingCredential) {
			t.Errorf("key %q: expected ErrMissingCredential, got %v", key, err)
		}
	}
}

func TestClientPoolService_SharesClient(t *testing.T) {
	pool, err := NewClientPoolService(repositories.AIClientConfig{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClientPoolService() error = %v", err)
	}
	defer pool.Close()

	if pool.Config().APIKey != "test-key" {
		t.Errorf("Unexpected config %#v", pool.Config())
	}

	var wg sync.WaitGroup
	clients := make([]any, 8)
	for i := range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := pool.GenAIPool().GetGenAIClient(context.Background())
			if err != nil {
				t.Errorf("GetGenAIClient() error = %v", err)
				return
			}
			clients[i] = c
		}()
	}
	wg.Wait()

	for i := 1; i < len(clients); i++ {
		if clients[i] != clients[0] {
			t.Fatalf("Client %d differs from the first; the pool should create one client", i)
		}
	}

	if err := pool.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
