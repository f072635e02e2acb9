package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ridloal/storefront-demo/internal/cart/domain"
	"github.com/ridloal/storefront-demo/internal/cart/repository"
	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	catalogRepo "github.com/ridloal/storefront-demo/internal/catalog/repository"
	couponDomain "github.com/ridloal/storefront-demo/internal/coupon/domain"
	couponRepo "github.com/ridloal/storefront-demo/internal/coupon/repository"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

// Pesan user-facing; konsumen menampilkan string ini apa adanya.
const (
	MsgInsufficientStock = "Insufficient stock!"
	MsgAddedToCart       = "Added to cart."
	MsgItemNotInCart     = "Item is not in the cart."
	MsgProductNotFound   = "Product not found."
	MsgCouponNotFound    = "Coupon not found."
	MsgCouponApplied     = "Coupon applied."
	MsgAddToCartFailed   = "Failed to add to cart."
	MsgApplyCouponFailed = "Failed to apply coupon."
)

type CartService interface {
	AddToCart(ctx context.Context, productID string) domain.OpResult
	UpdateQuantity(ctx context.Context, productID string, quantity int) domain.OpResult
	RemoveFromCart(ctx context.Context, productID string)
	ApplyCoupon(ctx context.Context, code string) domain.OpResult
	ClearCoupon()
	ClearCart(ctx context.Context)

	Items() []domain.CartItem
	SelectedCoupon() *couponDomain.Coupon
	Totals() domain.CartTotal
	TotalItemCount() int
	RemainingStockFor(product catalogDomain.Product) int

	// CouponDeleted dipanggil coupon service saat kupon dihapus admin, supaya
	// kupon terpilih yang sudah tidak ada tidak ikut dihitung lagi.
	CouponDeleted(code string)

	Stop()
}

// cartServiceImpl memegang satu snapshot cart plus kupon terpilih. Semua
// perubahan state diserialisasi lewat mutex; fungsi pricing di domain tetap
// pure dan dihitung ulang di setiap query.
type cartServiceImpl struct {
	productRepo catalogRepo.ProductRepository
	couponRepo  couponRepo.CouponRepository
	cartRepo    repository.CartRepository
	scheduler   *cron.Cron

	mu             sync.Mutex
	items          []domain.CartItem
	selectedCoupon *couponDomain.Coupon
}

func NewCartService(productRepo catalogRepo.ProductRepository, cpRepo couponRepo.CouponRepository, cartRepo repository.CartRepository, flushSpec string) CartService {
	s := &cartServiceImpl{
		productRepo: productRepo,
		couponRepo:  cpRepo,
		cartRepo:    cartRepo,
	}

	items, err := cartRepo.LoadCart(context.Background())
	if err != nil {
		logger.Warn("CartService: failed to load cart snapshot, starting empty: %v", err)
		items = []domain.CartItem{}
	}
	s.items = items

	if flushSpec != "" {
		s.initFlushScheduler(flushSpec)
	}
	return s
}

func (s *cartServiceImpl) initFlushScheduler(spec string) {
	s.scheduler = cron.New()
	if _, err := s.scheduler.AddFunc(spec, s.flushSnapshot); err != nil {
		logger.Error("CartService: invalid flush spec '"+spec+"'", err)
		return
	}
	s.scheduler.Start()
	logger.Info("Cart snapshot flush scheduler initialized with spec '%s'", spec)
}

func (s *cartServiceImpl) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// flushSnapshot menulis ulang snapshot secara berkala, jaring pengaman kalau
// ada save-on-change yang gagal.
func (s *cartServiceImpl) flushSnapshot() {
	s.mu.Lock()
	snapshot := s.cloneItemsLocked()
	s.mu.Unlock()

	if err := s.cartRepo.SaveCart(context.Background(), snapshot); err != nil {
		logger.Error("CartService: periodic cart flush failed", err)
	}
}

// persistLocked menyimpan snapshot fire-and-forget; state in-memory tetap
// otoritatif, kegagalan hanya di-log.
func (s *cartServiceImpl) persistLocked() {
	snapshot := s.cloneItemsLocked()
	go func() {
		if err := s.cartRepo.SaveCart(context.Background(), snapshot); err != nil {
			logger.Error("CartService: failed to save cart snapshot", err)
		}
	}()
}

func (s *cartServiceImpl) cloneItemsLocked() []domain.CartItem {
	snapshot := make([]domain.CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *cartServiceImpl) AddToCart(ctx context.Context, productID string) domain.OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			return domain.OpResult{Success: false, Message: MsgProductNotFound}
		}
		logger.Error("CartService.AddToCart: repo error", err)
		return domain.OpResult{Success: false, Message: MsgAddToCartFailed}
	}

	if domain.RemainingStock(*product, s.items) <= 0 {
		return domain.OpResult{Success: false, Message: MsgInsufficientStock}
	}

	s.items = domain.AddItem(s.items, *product)
	s.persistLocked()
	return domain.OpResult{Success: true, Message: MsgAddedToCart}
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, productID string, quantity int) domain.OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var line *domain.CartItem
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			line = &s.items[i]
			break
		}
	}
	if line == nil {
		return domain.OpResult{Success: false, Message: MsgItemNotInCart}
	}

	if quantity > line.Product.Stock {
		return domain.OpResult{
			Success: false,
			Message: fmt.Sprintf("Only %d left in stock.", line.Product.Stock),
		}
	}

	s.items = domain.SetQuantity(s.items, productID, quantity)
	s.persistLocked()
	return domain.OpResult{Success: true}
}

func (s *cartServiceImpl) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = domain.RemoveItem(s.items, productID)
	s.persistLocked()
}

func (s *cartServiceImpl) ApplyCoupon(ctx context.Context, code string) domain.OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	coupon, err := s.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			return domain.OpResult{Success: false, Message: MsgCouponNotFound}
		}
		logger.Error("CartService.ApplyCoupon: repo error", err)
		return domain.OpResult{Success: false, Message: MsgApplyCouponFailed}
	}

	// Validasi terhadap total SETELAH diskon per-item plus kupon ini
	total := domain.ComputeCartTotal(s.items, coupon).TotalAfterDiscount
	if !couponDomain.IsCouponValid(total, *coupon) {
		return domain.OpResult{
			Success: false,
			Message: fmt.Sprintf(
				"Percentage coupons require a minimum order of ₩%s.",
				catalogDomain.FormatNumber(couponDomain.MinOrderAmountForPercentageCoupon),
			),
		}
	}

	s.selectedCoupon = coupon
	return domain.OpResult{Success: true, Message: MsgCouponApplied}
}

func (s *cartServiceImpl) ClearCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCoupon = nil
}

func (s *cartServiceImpl) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []domain.CartItem{}
	s.selectedCoupon = nil
	s.persistLocked()
}

func (s *cartServiceImpl) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneItemsLocked()
}

func (s *cartServiceImpl) SelectedCoupon() *couponDomain.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedCoupon == nil {
		return nil
	}
	coupon := *s.selectedCoupon
	return &coupon
}

func (s *cartServiceImpl) Totals() domain.CartTotal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeCartTotal(s.items, s.selectedCoupon)
}

func (s *cartServiceImpl) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *cartServiceImpl) RemainingStockFor(product catalogDomain.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.RemainingStock(product, s.items)
}

func (s *cartServiceImpl) CouponDeleted(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedCoupon != nil && s.selectedCoupon.Code == code {
		s.selectedCoupon = nil
	}
}
