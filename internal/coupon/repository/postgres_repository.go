package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ridloal/storefront-demo/internal/coupon/domain"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

type postgresCouponRepository struct {
	db *sql.DB
}

func NewPostgresCouponRepository(db *sql.DB) CouponRepository {
	return &postgresCouponRepository{db: db}
}

func (r *postgresCouponRepository) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	query := `SELECT name, code, discount_type, discount_value FROM coupons ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListCoupons: query failed", err)
		return nil, err
	}
	defer rows.Close()

	coupons := []domain.Coupon{}
	for rows.Next() {
		var c domain.Coupon
		if err := rows.Scan(&c.Name, &c.Code, &c.DiscountType, &c.DiscountValue); err != nil {
			logger.Error("ListCoupons: scan failed", err)
			return nil, err
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListCoupons: rows iteration error", err)
		return nil, err
	}
	return coupons, nil
}

func (r *postgresCouponRepository) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `SELECT name, code, discount_type, discount_value FROM coupons WHERE code = $1`
	var c domain.Coupon
	err := r.db.QueryRowContext(ctx, query, code).Scan(&c.Name, &c.Code, &c.DiscountType, &c.DiscountValue)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		logger.Error("GetCouponByCode: query failed", err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresCouponRepository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	query := `INSERT INTO coupons (name, code, discount_type, discount_value) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, coupon.Name, coupon.Code, coupon.DiscountType, coupon.DiscountValue)
	if err != nil {
		// Kode error '23505' adalah unique_violation (code sudah dipakai)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCouponCode
		}
		logger.Error("CreateCoupon: insert failed", err)
		return err
	}
	return nil
}

func (r *postgresCouponRepository) DeleteCoupon(ctx context.Context, code string) error {
	// Idempotent: nol baris terhapus bukan error
	_, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE code = $1`, code)
	if err != nil {
		logger.Error("DeleteCoupon: delete failed", err)
	}
	return err
}
