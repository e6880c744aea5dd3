package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	genai_std "google.golang.org/genai"

	"stylist-demo/internal/domain/repositories"
)

// ErrMissingCredential is returned when no API key was configured.
var ErrMissingCredential = errors.New("gemini API key is required")

// GenAI Client Pool実装
type genAIClientPool struct {
	config *repositories.AIClientConfig
	client *genai_std.Client
	mutex  sync.RWMutex
}

// 新しいGenAIクライアントプールを作成
func newGenAIClientPool(config *repositories.AIClientConfig) repositories.GenAIClientPool {
	return &genAIClientPool{
		config: config,
	}
}

func (p *genAIClientPool) GetGenAIClient(ctx context.Context) (*genai_std.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// ダブルチェックロッキング
	if p.client != nil {
		return p.client, nil
	}

	clientConfig := &genai_std.ClientConfig{
		APIKey:  p.config.APIKey,
		Backend: genai_std.BackendGeminiAPI,
	}
	if p.config.BaseURL != "" {
		clientConfig.HTTPOptions = genai_std.HTTPOptions{BaseURL: p.config.BaseURL}
	}

	client, err := genai_std.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	p.client = client

	return p.client, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		// GenAI Clientはリソースクリーンアップ不要
		p.client = nil
	}
	return nil
}

// Client Pool Service実装
type clientPoolService struct {
	config    *repositories.AIClientConfig
	genAIPool repositories.GenAIClientPool
}

// 新しいClient Pool Serviceを作成
// APIキーが無い場合はここで失敗させる
func NewClientPoolService(config repositories.AIClientConfig) (repositories.ClientPoolService, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, ErrMissingCredential
	}

	return &clientPoolService{
		config:    &config,
		genAIPool: newGenAIClientPool(&config),
	}, nil
}

func (s *clientPoolService) GenAIPool() repositories.GenAIClientPool {
	return s.genAIPool
}

func (s *clientPoolService) Config() *repositories.AIClientConfig {
	return s.config
}

func (s *clientPoolService) Close() error {
	if err := s.genAIPool.Close(); err != nil {
		return fmt.Errorf("GenAI pool close error: %w", err)
	}
	return nil
}
