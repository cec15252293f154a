package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpoolNew 用來建立連線池，測試可覆寫此變數。
var pgxpoolNew = pgxpool.New

// pgxPool 將 *pgxpool.Pool 包裝成 Pool，Acquire 回傳的
// *pgxpool.Conn 直接實作 Session。
type pgxPool struct {
	*pgxpool.Pool
}

func (p *pgxPool) Acquire(ctx context.Context) (Session, error) {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// NewPgxPool 建立並回傳 Postgres 連線池
func NewPgxPool(ctx context.Context, url string) (Pool, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return &pgxPool{pool}, nil
}
