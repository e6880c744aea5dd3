package repositories

import (
	"context"

	genai_std "google.golang.org/genai"
)

// AIクライアント共通設定
type AIClientConfig struct {
	APIKey string

	// 空の場合はSDKのデフォルトエンドポイント
	BaseURL string
}

// GenAI Client Pool Service
// Gemini API用クライアントを一度だけ生成して共有する
type GenAIClientPool interface {
	GetGenAIClient(ctx context.Context) (*genai_std.Client, error)

	// リソースのクリーンアップ
	Close() error
}

// Client Pool Service
// 全AIクライアントプールを統合管理するサービス
type ClientPoolService interface {
	GenAIPool() GenAIClientPool

	// 設定情報を取得
	Config() *AIClientConfig

	// 全リソースのクリーンアップ
	Close() error
}
