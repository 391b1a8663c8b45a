package hotel

import "context"

// Repository はホテルリポジトリのインターフェース
type Repository interface {
	// Create は新しいホテルを保存する
	Create(ctx context.Context, hotel *Hotel) error

	// GetByName は名前からホテルを取得する
	GetByName(ctx context.Context, name string) (*Hotel, error)

	// List はホテル一覧を名前順で取得する
	List(ctx context.Context) ([]*Hotel, error)

	// Update はホテルを更新する（name は更新前の名前、改名にも対応）
	Update(ctx context.Context, name string, hotel *Hotel) error

	// Delete はホテルを削除する
	Delete(ctx context.Context, name string) error
}
